package vision_test

import (
	"strings"
	"testing"

	"Dermalens/internal/entity"
	"Dermalens/pkg/vision"
)

func TestParseAnalysis(t *testing.T) {
	t.Run("extracts conditions in enumeration order", func(t *testing.T) {
		text := "Mild dryness across the cheeks. Some acne on the forehead and early wrinkles around the eyes."
		got := vision.ParseAnalysis("openai", text)

		want := []entity.Condition{entity.ConditionAcne, entity.ConditionWrinkles, entity.ConditionDrySkin}
		if len(got.ConditionsDetected) != len(want) {
			t.Fatalf("conditions = %v, want %v", got.ConditionsDetected, want)
		}
		for i, condition := range want {
			if got.ConditionsDetected[i] != condition {
				t.Errorf("conditions[%d] = %s, want %s", i, got.ConditionsDetected[i], condition)
			}
		}
	})

	t.Run("keeps provider and full text", func(t *testing.T) {
		got := vision.ParseAnalysis("gemini", "Normal skin overall.")
		if got.Provider != "gemini" {
			t.Errorf("provider = %s, want gemini", got.Provider)
		}
		if got.FullAnalysis != "Normal skin overall." {
			t.Errorf("full analysis was not preserved")
		}
	})

	t.Run("picks the first matching skin type", func(t *testing.T) {
		got := vision.ParseAnalysis("openai", "Oily T-zone with dry patches elsewhere.")
		if got.SkinType != "oily" {
			t.Errorf("skin type = %s, want oily", got.SkinType)
		}
	})

	t.Run("unknown skin type when nothing matches", func(t *testing.T) {
		got := vision.ParseAnalysis("openai", "No notable findings.")
		if got.SkinType != "unknown" {
			t.Errorf("skin type = %s, want unknown", got.SkinType)
		}
		if len(got.ConditionsDetected) != 0 {
			t.Errorf("conditions = %v, want none", got.ConditionsDetected)
		}
	})

	t.Run("extracts ingredients and product types", func(t *testing.T) {
		text := "Use a gentle cleanser, then a niacinamide serum. Retinol at night."
		got := vision.ParseAnalysis("openai", text)

		if !contains(got.RecommendedIngredients, "niacinamide") || !contains(got.RecommendedIngredients, "retinol") {
			t.Errorf("ingredients = %v, want niacinamide and retinol", got.RecommendedIngredients)
		}
		if !contains(got.RecommendedProducts, "cleanser") || !contains(got.RecommendedProducts, "serum") {
			t.Errorf("products = %v, want cleanser and serum", got.RecommendedProducts)
		}
	})
}

func TestBuildPrompt(t *testing.T) {
	t.Run("without profile", func(t *testing.T) {
		prompt := vision.BuildPrompt(nil)
		if strings.Contains(prompt, "USER PROFILE CONTEXT") {
			t.Error("prompt without profile should not carry a profile section")
		}
	})

	t.Run("profile allergies become a hard instruction", func(t *testing.T) {
		profile := &entity.SkinProfile{
			SkinType:         "combination",
			Allergies:        []string{"fragrance", "lanolin"},
			SensitivityLevel: "high",
		}
		prompt := vision.BuildPrompt(profile)

		if !strings.Contains(prompt, "allergic to: fragrance, lanolin") {
			t.Error("prompt is missing the allergy list")
		}
		if !strings.Contains(prompt, "combination") {
			t.Error("prompt is missing the declared skin type")
		}
		if !strings.Contains(prompt, "fragrance-free") {
			t.Error("prompt is missing the high-sensitivity guidance")
		}
	})
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
