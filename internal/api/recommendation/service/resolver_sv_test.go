package recommendationService_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	recommendationService "Dermalens/internal/api/recommendation/service"
	"Dermalens/internal/entity"

	"github.com/sirupsen/logrus"
)

type fakeSearch struct {
	enabled  bool
	products map[entity.Condition][]entity.ProductRecord
	err      error
	calls    int
}

func (f *fakeSearch) Enabled() bool {
	return f.enabled
}

func (f *fakeSearch) SearchProducts(_ context.Context, condition entity.Condition, _ []string) ([]entity.ProductRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.products[condition], nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestResolveProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("catalog provenance without a search client", func(t *testing.T) {
		svc := recommendationService.NewRecommendationService(testLogger(), nil)

		got, err := svc.ResolveProducts(ctx, []entity.Condition{entity.ConditionAcne}, nil)
		if err != nil {
			t.Fatalf("ResolveProducts error: %v", err)
		}
		if len(got) == 0 {
			t.Fatal("expected catalog products for acne")
		}
		for _, product := range got {
			if product.Source != entity.ProductSourceCatalog {
				t.Errorf("product %s source = %s, want catalog", product.Name, product.Source)
			}
			if product.Condition != entity.ConditionAcne {
				t.Errorf("product %s condition = %s, want acne", product.Name, product.Condition)
			}
		}
	})

	t.Run("allergy exclusion is hard", func(t *testing.T) {
		svc := recommendationService.NewRecommendationService(testLogger(), nil)
		profile := &entity.SkinProfile{Allergies: []string{"Benzoyl Peroxide"}}

		got, err := svc.ResolveProducts(ctx, []entity.Condition{entity.ConditionAcne}, profile)
		if err != nil {
			t.Fatalf("ResolveProducts error: %v", err)
		}
		if len(got) == 0 {
			t.Fatal("exclusion should not empty the result for acne")
		}
		for _, product := range got {
			for _, ingredient := range product.Ingredients {
				if strings.EqualFold(ingredient, "benzoyl peroxide") {
					t.Errorf("product %s contains the excluded allergen", product.Name)
				}
			}
		}
	})

	t.Run("search failure falls back to the catalog", func(t *testing.T) {
		client := &fakeSearch{enabled: true, err: errors.New("quota exceeded")}
		svc := recommendationService.NewRecommendationService(testLogger(), client)

		got, err := svc.ResolveProducts(ctx, []entity.Condition{entity.ConditionDrySkin}, nil)
		if err != nil {
			t.Fatalf("ResolveProducts error: %v", err)
		}
		if client.calls != 1 {
			t.Errorf("search calls = %d, want 1", client.calls)
		}
		if len(got) == 0 {
			t.Fatal("expected catalog fallback products")
		}
		for _, product := range got {
			if product.Source != entity.ProductSourceCatalog {
				t.Errorf("product %s source = %s, want catalog", product.Name, product.Source)
			}
		}
	})

	t.Run("search results pass through the allergy filter", func(t *testing.T) {
		client := &fakeSearch{
			enabled: true,
			products: map[entity.Condition][]entity.ProductRecord{
				entity.ConditionRosacea: {
					{
						Name:        "Soothing Gel",
						Category:    entity.CategorySerum,
						Ingredients: []string{"aloe"},
						Condition:   entity.ConditionRosacea,
						Source:      entity.ProductSourceSearch,
					},
					{
						Name:        "Fragrant Cream",
						Category:    entity.CategoryMoisturizer,
						Ingredients: []string{"fragrance"},
						Condition:   entity.ConditionRosacea,
						Source:      entity.ProductSourceSearch,
					},
				},
			},
		}
		svc := recommendationService.NewRecommendationService(testLogger(), client)
		profile := &entity.SkinProfile{Allergies: []string{"fragrance"}}

		got, err := svc.ResolveProducts(ctx, []entity.Condition{entity.ConditionRosacea}, profile)
		if err != nil {
			t.Fatalf("ResolveProducts error: %v", err)
		}
		if len(got) != 1 || got[0].Name != "Soothing Gel" {
			t.Errorf("products = %v, want only Soothing Gel", got)
		}
		if got[0].Source != entity.ProductSourceSearch {
			t.Errorf("source = %s, want search", got[0].Source)
		}
	})

	t.Run("duplicate names across conditions are deduped", func(t *testing.T) {
		shared := entity.ProductRecord{
			Name:     "Dual Action Serum",
			Category: entity.CategorySerum,
			Source:   entity.ProductSourceSearch,
		}
		client := &fakeSearch{
			enabled: true,
			products: map[entity.Condition][]entity.ProductRecord{
				entity.ConditionAcne:    {shared},
				entity.ConditionDrySkin: {shared},
			},
		}
		svc := recommendationService.NewRecommendationService(testLogger(), client)

		got, err := svc.ResolveProducts(ctx, []entity.Condition{entity.ConditionAcne, entity.ConditionDrySkin}, nil)
		if err != nil {
			t.Fatalf("ResolveProducts error: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("products = %d, want 1 after dedupe", len(got))
		}
	})
}
