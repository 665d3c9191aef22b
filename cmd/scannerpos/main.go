package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/RozimuhammadIsomiddinov/scannerPOS/db"
	"github.com/RozimuhammadIsomiddinov/scannerPOS/poslog"
	"github.com/RozimuhammadIsomiddinov/scannerPOS/seed"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/httpfs"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	_ "github.com/lib/pq" //postgres drivers for initialization
	"github.com/ninja-software/terror/v2"
	"github.com/urfave/cli/v2"
)

// Variable passed in at compile time using `-ldflags`
var (
	Version   string // -X main.Version=$(git describe --tags --abbrev=0)
	GitHash   string // -X main.GitHash=$(git rev-parse HEAD)
	GitBranch string // -X main.GitBranch=$(git rev-parse --abbrev-ref HEAD)
	BuildDate string // -X main.BuildDate=$(date -u +%Y%m%d%H%M%S)
)

const envPrefix = "SCANNERPOS"

func databaseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "database_user", Value: "scannerpos", EnvVars: []string{envPrefix + "_DATABASE_USER", "DATABASE_USER"}, Usage: "The database user"},
		&cli.StringFlag{Name: "database_pass", Value: "dev", EnvVars: []string{envPrefix + "_DATABASE_PASS", "DATABASE_PASS"}, Usage: "The database pass"},
		&cli.StringFlag{Name: "database_host", Value: "localhost", EnvVars: []string{envPrefix + "_DATABASE_HOST", "DATABASE_HOST"}, Usage: "The database host"},
		&cli.StringFlag{Name: "database_port", Value: "5432", EnvVars: []string{envPrefix + "_DATABASE_PORT", "DATABASE_PORT"}, Usage: "The database port"},
		&cli.StringFlag{Name: "database_name", Value: "scannerpos", EnvVars: []string{envPrefix + "_DATABASE_NAME", "DATABASE_NAME"}, Usage: "The database name"},
		&cli.StringFlag{Name: "database_application_name", Value: "Catalog DAL", EnvVars: []string{envPrefix + "_DATABASE_APPLICATION_NAME"}, Usage: "Postgres application name"},
		&cli.StringFlag{Name: "environment", Value: "development", DefaultText: "development", EnvVars: []string{envPrefix + "_ENVIRONMENT", "ENVIRONMENT"}, Usage: "This program environment (development, testing, training, staging, production), it sets the log levels"},
		&cli.StringFlag{Name: "log_level", Value: "InfoLevel", EnvVars: []string{envPrefix + "_LOG_LEVEL"}, Usage: "Set the log level for zerolog (Options: PanicLevel, FatalLevel, ErrorLevel, WarnLevel, InfoLevel, DebugLevel, TraceLevel"},
	}
}

func main() {
	app := &cli.App{
		Compiled: time.Now(),
		Usage:    "Database administration commands for the product catalog",
		Commands: []*cli.Command{
			{
				// This is not using the built in version so ansible can more easily read the version
				Name: "version",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "full", Usage: "Prints full version and build info", Value: false},
				},
				Action: func(c *cli.Context) error {
					if c.Bool("full") {
						fmt.Printf("Version=%s\n", Version)
						fmt.Printf("Commit=%s\n", GitHash)
						fmt.Printf("Branch=%s\n", GitBranch)
						fmt.Printf("BuildDate=%s\n", BuildDate)
						return nil
					}
					fmt.Printf("%s\n", Version)
					return nil
				},
			},
			{
				Name: "db",
				Flags: append(databaseFlags(),
					&cli.BoolFlag{Name: "seed", EnvVars: []string{envPrefix + "_DB_SEED", "DB_SEED"}, Usage: "seed the database"},
				),
				Usage: "migrate the database and optionally seed it",
				Action: func(c *cli.Context) error {
					environment := c.String("environment")
					level := c.String("log_level")
					log := poslog.New(environment, level)

					connString := buildConnString(
						c.String("database_user"),
						c.String("database_pass"),
						c.String("database_host"),
						c.String("database_port"),
						c.String("database_name"),
						"",
					)

					err := migrateUp(connString)
					if err != nil {
						return terror.Error(err, "database migration failed")
					}
					log.Info().Msg("migrations applied")

					pgxconn, err := pgxconnect(
						c.String("database_user"),
						c.String("database_pass"),
						c.String("database_host"),
						c.String("database_port"),
						c.String("database_name"),
						c.String("database_application_name"),
						Version,
					)
					if err != nil {
						return terror.Error(err)
					}
					defer pgxconn.Close()

					count := 0
					err = db.IsSchemaDirty(context.Background(), pgxconn, &count)
					if err != nil {
						return terror.Error(err, "schema check failed")
					}
					if count > 0 {
						return terror.Error(fmt.Errorf("%d dirty migrations", count), "database schema is dirty")
					}

					if c.Bool("seed") {
						seeder := seed.NewSeeder(pgxconn)
						err = seeder.Run()
						if err != nil {
							return terror.Error(err)
						}
					}
					return nil
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		terror.Echo(err)
		os.Exit(1) // so ci knows it no good
	}
}

func buildConnString(
	databaseUser string,
	databasePass string,
	databaseHost string,
	databasePort string,
	databaseName string,
	applicationName string,
) string {
	params := url.Values{}
	params.Add("sslmode", "disable")
	if applicationName != "" {
		params.Add("application_name", applicationName)
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?%s",
		databaseUser,
		databasePass,
		databaseHost,
		databasePort,
		databaseName,
		params.Encode(),
	)
}

func pgxconnect(
	databaseUser string,
	databasePass string,
	databaseHost string,
	databasePort string,
	databaseName string,
	databaseApplicationName string,
	apiVersion string,
) (*pgxpool.Pool, error) {
	appName := ""
	if databaseApplicationName != "" {
		appName = fmt.Sprintf("%s %s", databaseApplicationName, apiVersion)
	}
	connString := buildConnString(databaseUser, databasePass, databaseHost, databasePort, databaseName, appName)

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, terror.Panic(err, "could not initialise database")
	}
	poolConfig.ConnConfig.LogLevel = pgx.LogLevelWarn

	conn, err := pgxpool.ConnectConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, terror.Panic(err, "could not initialise database")
	}

	return conn, nil
}

func migrateUp(connString string) error {
	source, err := httpfs.New(http.FS(db.MigrationsFS), "migrations")
	if err != nil {
		return terror.Error(err)
	}

	mig, err := migrate.NewWithSourceInstance("embed", source, connString)
	if err != nil {
		return terror.Error(err)
	}
	err = mig.Up()
	if err != nil && err != migrate.ErrNoChange {
		return terror.Error(err)
	}
	sourceErr, dbErr := mig.Close()
	if sourceErr != nil {
		return terror.Error(sourceErr)
	}
	if dbErr != nil {
		return terror.Error(dbErr)
	}
	return nil
}
