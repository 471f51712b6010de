package recommendation

import "Dermalens/internal/entity"

type ProductSearchRequest struct {
	Conditions []string `json:"conditions" validate:"required,min=1,dive,required"`
}

type ProductSearchResponse struct {
	Products   []entity.ProductRecord `json:"products"`
	Conditions []string               `json:"conditions_searched"`
	Source     entity.ProductSource   `json:"source"`
}

type RoutineRequest struct {
	Conditions []string               `json:"conditions" validate:"required,min=1,dive,required"`
	Products   []entity.ProductRecord `json:"products"`
}

type RoutineResponse struct {
	Routine entity.Routine `json:"routine"`
}
