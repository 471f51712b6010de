package entity

import "time"

// RoutineStep is one ordered application step in a morning or evening
// sequence. Instructions are templated per category, not per product.
type RoutineStep struct {
	Step         int             `json:"step"`
	Name         string          `json:"name"`
	Category     ProductCategory `json:"category"`
	Product      string          `json:"product"`
	Brand        string          `json:"brand"`
	Duration     string          `json:"duration"`
	Instructions string          `json:"instructions"`
}

// Routine is the two-part product-application sequence composed per request.
// No routine history is kept by the pipeline itself.
type Routine struct {
	Morning       []RoutineStep `json:"morning_routine"`
	Evening       []RoutineStep `json:"evening_routine"`
	TotalProducts int           `json:"total_products"`
	EstimatedCost float64       `json:"estimated_cost"`
	GeneratedAt   time.Time     `json:"generated_at"`
}
