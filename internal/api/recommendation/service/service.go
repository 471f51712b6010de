package recommendationService

import (
	"Dermalens/internal/entity"
	"Dermalens/pkg/search"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type IRecommendationService interface {
	ResolveProducts(ctx context.Context, conditions []entity.Condition, profile *entity.SkinProfile) ([]entity.ProductRecord, error)
	ComposeRoutine(products []entity.ProductRecord) entity.Routine
}

type recommendationService struct {
	log           *logrus.Logger
	searchClient  search.ISearch
	searchTimeout time.Duration
}

func NewRecommendationService(log *logrus.Logger, searchClient search.ISearch) IRecommendationService {
	return &recommendationService{
		log:           log,
		searchClient:  searchClient,
		searchTimeout: 10 * time.Second,
	}
}
