package entity

// VisionAnalysis is the structured result distilled from a vision-LLM's
// free-text dermatological assessment. Provider field names which backend
// produced it.
type VisionAnalysis struct {
	Provider               string      `json:"provider"`
	ConditionsDetected     []Condition `json:"conditions_detected"`
	SkinType               string      `json:"skin_type"`
	RecommendedIngredients []string    `json:"recommended_ingredients"`
	RecommendedProducts    []string    `json:"recommended_product_types"`
	FullAnalysis           string      `json:"full_analysis"`
}
