package seed

import (
	"context"
	"fmt"

	"github.com/RozimuhammadIsomiddinov/scannerPOS/crypto"
	"github.com/RozimuhammadIsomiddinov/scannerPOS/db"
	"github.com/RozimuhammadIsomiddinov/scannerPOS/types"

	"github.com/bxcodec/faker/v3"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/ninja-software/terror/v2"
)

// MaxProducts is the default amount of products seeded per branch
const MaxProducts = 40

// MaxManagers is the default amount of manager accounts (a superadmin is always seeded)
const MaxManagers = 3

type Seeder struct {
	Conn *pgxpool.Pool
}

// NewSeeder returns a new Seeder
func NewSeeder(conn *pgxpool.Pool) *Seeder {
	s := &Seeder{conn}
	return s
}

// Run for database spinup
func (s *Seeder) Run() error {
	ctx := context.Background()

	fmt.Println("Seeding branches")
	branches, err := s.Branches(ctx)
	if err != nil {
		return terror.Error(err, "seed branches failed")
	}

	fmt.Println("Seeding admins")
	err = s.Admins(ctx)
	if err != nil {
		return terror.Error(err, "seed admins failed")
	}

	fmt.Println("Seeding products")
	err = s.Products(ctx, branches)
	if err != nil {
		return terror.Error(err, "seed products failed")
	}

	fmt.Println("Seed complete")
	return nil
}

var branchNames = []string{"Chilonzor", "Yunusobod", "Sergeli", "Mirzo Ulugbek"}

func (s *Seeder) Branches(ctx context.Context) ([]*types.Branch, error) {
	branches := []*types.Branch{}
	for _, name := range branchNames {
		branch := &types.Branch{Name: name}
		err := db.BranchCreate(ctx, s.Conn, branch)
		if err != nil {
			return nil, terror.Error(err)
		}
		branches = append(branches, branch)
	}
	return branches, nil
}

func (s *Seeder) Admins(ctx context.Context) error {
	superadmin := &types.Admin{
		Login:    "superadmin",
		Password: crypto.HashPassword("devdev"),
		Role:     types.AdminRoleSuper,
	}
	err := db.AdminCreate(ctx, s.Conn, superadmin)
	if err != nil {
		return terror.Error(err)
	}

	for i := 0; i < MaxManagers; i++ {
		admin := &types.Admin{
			Login:    faker.Username(),
			Password: crypto.HashPassword(faker.Password()),
			Role:     types.AdminRoleManager,
		}
		err := db.AdminCreate(ctx, s.Conn, admin)
		if err != nil {
			return terror.Error(err)
		}
	}
	return nil
}
