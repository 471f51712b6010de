package recommendationService_test

import (
	"testing"

	recommendationService "Dermalens/internal/api/recommendation/service"
	"Dermalens/internal/entity"
)

func product(name string, category entity.ProductCategory, price float64) entity.ProductRecord {
	return entity.ProductRecord{Name: name, Brand: "Test Brand", Category: category, Price: price}
}

func TestComposeRoutine(t *testing.T) {
	svc := recommendationService.NewRecommendationService(testLogger(), nil)

	t.Run("empty product set", func(t *testing.T) {
		routine := svc.ComposeRoutine(nil)
		if len(routine.Morning) != 0 || len(routine.Evening) != 0 {
			t.Errorf("steps = %d morning, %d evening, want none", len(routine.Morning), len(routine.Evening))
		}
		if routine.TotalProducts != 0 || routine.EstimatedCost != 0 {
			t.Errorf("totals = %d products, %.2f cost, want zero", routine.TotalProducts, routine.EstimatedCost)
		}
	})

	t.Run("sunscreen closes the morning and skips the evening", func(t *testing.T) {
		products := []entity.ProductRecord{
			product("Wash", entity.CategoryCleanser, 10),
			product("Cream", entity.CategoryMoisturizer, 20),
			product("SPF", entity.CategorySunscreen, 15),
		}
		routine := svc.ComposeRoutine(products)

		if len(routine.Morning) != 3 {
			t.Fatalf("morning steps = %d, want 3", len(routine.Morning))
		}
		last := routine.Morning[len(routine.Morning)-1]
		if last.Category != entity.CategorySunscreen {
			t.Errorf("last morning category = %s, want sunscreen", last.Category)
		}
		for _, step := range routine.Evening {
			if step.Category == entity.CategorySunscreen {
				t.Error("evening should not carry a sunscreen step")
			}
		}
	})

	t.Run("missing categories are omitted without placeholders", func(t *testing.T) {
		routine := svc.ComposeRoutine([]entity.ProductRecord{
			product("Serum", entity.CategorySerum, 12),
		})

		if len(routine.Morning) != 1 || routine.Morning[0].Category != entity.CategorySerum {
			t.Errorf("morning = %v, want a single serum step", routine.Morning)
		}
		if routine.Morning[0].Step != 1 {
			t.Errorf("first step number = %d, want 1", routine.Morning[0].Step)
		}
	})

	t.Run("step numbers are sequential per sequence", func(t *testing.T) {
		products := []entity.ProductRecord{
			product("Wash", entity.CategoryCleanser, 10),
			product("Serum", entity.CategorySerum, 12),
			product("Cream", entity.CategoryMoisturizer, 20),
		}
		routine := svc.ComposeRoutine(products)

		for i, step := range routine.Morning {
			if step.Step != i+1 {
				t.Errorf("morning step[%d] numbered %d, want %d", i, step.Step, i+1)
			}
		}
		for i, step := range routine.Evening {
			if step.Step != i+1 {
				t.Errorf("evening step[%d] numbered %d, want %d", i, step.Step, i+1)
			}
		}
	})

	t.Run("treatments are capped at two", func(t *testing.T) {
		products := []entity.ProductRecord{
			product("Treatment A", entity.CategoryTreatment, 30),
			product("Treatment B", entity.CategoryTreatment, 25),
			product("Treatment C", entity.CategoryTreatment, 40),
		}
		routine := svc.ComposeRoutine(products)

		if len(routine.Morning) != 2 {
			t.Errorf("morning treatment steps = %d, want 2", len(routine.Morning))
		}
		if routine.Morning[0].Product != "Treatment A" || routine.Morning[1].Product != "Treatment B" {
			t.Errorf("treatment order = %s, %s, want arrival order", routine.Morning[0].Product, routine.Morning[1].Product)
		}
	})

	t.Run("totals reflect every resolved product", func(t *testing.T) {
		products := []entity.ProductRecord{
			product("Wash", entity.CategoryCleanser, 10.50),
			product("Cream", entity.CategoryMoisturizer, 19.50),
		}
		routine := svc.ComposeRoutine(products)

		if routine.TotalProducts != 2 {
			t.Errorf("total products = %d, want 2", routine.TotalProducts)
		}
		if routine.EstimatedCost != 30.0 {
			t.Errorf("estimated cost = %.2f, want 30.00", routine.EstimatedCost)
		}
	})
}
