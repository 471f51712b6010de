package vision

import (
	"Dermalens/internal/entity"
	"context"
	"strings"
)

// IVisionAnalyzer is the contract both LLM backends (OpenAI, Gemini) satisfy.
// The analysis service picks one per request; a provider being disabled or
// failing selects the next one, never the whole request.
type IVisionAnalyzer interface {
	Enabled() bool
	AnalyzeSkin(ctx context.Context, imageData []byte, profile *entity.SkinProfile) (entity.VisionAnalysis, error)
}

// BuildPrompt assembles the dermatologist prompt, appending the user's
// declared profile so allergies and sensitivities shape the assessment.
func BuildPrompt(profile *entity.SkinProfile) string {
	var b strings.Builder

	b.WriteString(`Please analyze this facial skin image comprehensively. Provide a detailed professional assessment including:

1. SKIN CONDITIONS DETECTED - list all visible skin conditions, rate severity for each (mild, moderate, severe), identify affected areas.
2. SKIN TYPE ASSESSMENT - determine skin type (oily, dry, combination, normal), assess hydration, note texture and pore visibility.
3. PERSONALIZED RECOMMENDATIONS - specific ingredients to look for (e.g. niacinamide, retinol, hyaluronic acid), product types needed (cleanser, serum, moisturizer, sunscreen), treatment priorities.
4. PRECAUTIONS - ingredients or products to avoid, when to seek professional help.`)

	if profile != nil {
		b.WriteString("\n\nUSER PROFILE CONTEXT:\n")
		if profile.SkinType != "" {
			b.WriteString("- User reports skin type as: " + profile.SkinType + "\n")
		}
		if len(profile.PrimaryConcerns) > 0 {
			b.WriteString("- Main concerns: " + strings.Join(profile.PrimaryConcerns, ", ") + "\n")
		}
		if len(profile.Allergies) > 0 {
			b.WriteString("- IMPORTANT - User is allergic to: " + strings.Join(profile.Allergies, ", ") + " (DO NOT recommend products with these ingredients)\n")
		}
		if profile.SensitivityLevel == "high" {
			b.WriteString("- Sensitivity level is high: prioritize gentle, fragrance-free products\n")
		}
		if len(profile.SkinGoals) > 0 {
			b.WriteString("- Goals: " + strings.Join(profile.SkinGoals, ", ") + "\n")
		}
	}

	b.WriteString("\nFormat your response in clear sections. Be specific, actionable, and personalized.")

	return b.String()
}

var conditionKeywords = map[string]entity.Condition{
	"acne":              entity.ConditionAcne,
	"hyperpigmentation": entity.ConditionHyperpigmentation,
	"dark spots":        entity.ConditionDarkSpots,
	"wrinkles":          entity.ConditionWrinkles,
	"fine lines":        entity.ConditionWrinkles,
	"dryness":           entity.ConditionDrySkin,
	"dry skin":          entity.ConditionDrySkin,
	"oily":              entity.ConditionOilySkin,
	"sensitive":         entity.ConditionSensitiveSkin,
	"blackheads":        entity.ConditionBlackheads,
	"whiteheads":        entity.ConditionWhiteheads,
	"rosacea":           entity.ConditionRosacea,
	"eczema":            entity.ConditionEczema,
}

var ingredientKeywords = []string{
	"niacinamide", "retinol", "hyaluronic acid", "vitamin c", "salicylic acid",
	"benzoyl peroxide", "azelaic acid", "glycolic acid", "ceramides",
	"peptides", "antioxidants", "spf",
}

var productTypeKeywords = []string{
	"cleanser", "toner", "serum", "moisturizer", "sunscreen",
	"exfoliant", "mask", "spot treatment", "eye cream",
}

// ParseAnalysis distills the free-text assessment into the structured result
// shape by keyword extraction, matching the original parsing behavior.
func ParseAnalysis(provider, text string) entity.VisionAnalysis {
	lower := strings.ToLower(text)

	result := entity.VisionAnalysis{
		Provider:     provider,
		SkinType:     "unknown",
		FullAnalysis: text,
	}

	seen := make(map[entity.Condition]bool)
	for keyword, condition := range conditionKeywords {
		if strings.Contains(lower, keyword) {
			seen[condition] = true
		}
	}
	for _, condition := range entity.Conditions {
		if seen[condition] {
			result.ConditionsDetected = append(result.ConditionsDetected, condition)
		}
	}

	for _, skinType := range []string{"oily", "dry", "combination", "normal", "sensitive"} {
		if strings.Contains(lower, skinType) {
			result.SkinType = skinType
			break
		}
	}

	for _, ingredient := range ingredientKeywords {
		if strings.Contains(lower, ingredient) {
			result.RecommendedIngredients = append(result.RecommendedIngredients, ingredient)
		}
	}

	for _, productType := range productTypeKeywords {
		if strings.Contains(lower, productType) {
			result.RecommendedProducts = append(result.RecommendedProducts, productType)
		}
	}

	return result
}
