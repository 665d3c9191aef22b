package seed

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/RozimuhammadIsomiddinov/scannerPOS/db"
	"github.com/RozimuhammadIsomiddinov/scannerPOS/types"

	"github.com/bxcodec/faker/v3"
	"github.com/ninja-software/terror/v2"
	"github.com/shopspring/decimal"
)

var productTags = []string{
	string(types.ProductTagNew),
	string(types.ProductTagHit),
	string(types.ProductTagSale),
}

func (s *Seeder) Products(ctx context.Context, branches []*types.Branch) error {
	barcodes := map[string]struct{}{}

	for _, branch := range branches {
		for i := 0; i < MaxProducts; i++ {
			// Get unique barcode (EAN-13 shaped)
			var barcode string
			for {
				barcode = fmt.Sprintf("%013d", rand.Int63n(1e13))
				if _, ok := barcodes[barcode]; !ok {
					break
				}
			}
			barcodes[barcode] = struct{}{}

			price := decimal.NewFromInt(int64(rand.Intn(99000) + 1000)).Div(decimal.NewFromInt(100))
			realPrice := price.Mul(decimal.NewFromFloat(0.8)).Round(2)

			product := &types.Product{
				Barcode:    barcode,
				Name:       fmt.Sprintf("%s %s", faker.Word(), faker.Word()),
				BranchID:   branch.ID,
				Price:      price,
				RealPrice:  realPrice,
				Stock:      rand.Intn(500),
				CategoryID: rand.Intn(20) + 1,
				Tegs:       randomTags(),
				Image:      randomImages(),
			}
			if rand.Intn(3) > 0 {
				description := faker.Sentence()
				product.Description = &description
			}

			err := db.ProductCreate(ctx, s.Conn, product)
			if err != nil {
				return terror.Error(err)
			}
		}
	}
	return nil
}

// randomTags returns a random subset of the tag enum; often none, which
// the db layer stores as NULL.
func randomTags() []string {
	tags := []string{}
	for _, tag := range productTags {
		if rand.Intn(4) == 0 {
			tags = append(tags, tag)
		}
	}
	return tags
}

func randomImages() []string {
	count := rand.Intn(4)
	images := make([]string, 0, count)
	for i := 0; i < count; i++ {
		images = append(images, faker.URL())
	}
	return images
}
