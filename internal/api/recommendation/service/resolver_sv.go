package recommendationService

import (
	"Dermalens/internal/entity"
	"Dermalens/pkg/search"
	"context"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// productResolver is the single contract both sources implement. One resolver
// is selected per request; the search-backed one degrades to the catalog on
// failure so the caller never sees the switch.
type productResolver interface {
	Resolve(ctx context.Context, condition entity.Condition, excludeTerms []string) ([]entity.ProductRecord, error)
}

type catalogResolver struct{}

func (catalogResolver) Resolve(_ context.Context, condition entity.Condition, _ []string) ([]entity.ProductRecord, error) {
	entries := fallbackCatalog[condition]
	products := make([]entity.ProductRecord, len(entries))
	for i, entry := range entries {
		product := entry
		product.Condition = condition
		product.Source = entity.ProductSourceCatalog
		products[i] = product
	}
	return products, nil
}

type searchResolver struct {
	client  search.ISearch
	timeout func(ctx context.Context) (context.Context, context.CancelFunc)
}

func (r searchResolver) Resolve(ctx context.Context, condition entity.Condition, excludeTerms []string) ([]entity.ProductRecord, error) {
	searchCtx, cancel := r.timeout(ctx)
	defer cancel()
	return r.client.SearchProducts(searchCtx, condition, excludeTerms)
}

// ResolveProducts maps detected conditions to product records, applies the
// hard allergy exclusion, ranks per-condition candidates by match score with
// stable ties, and dedupes by product name.
func (s *recommendationService) ResolveProducts(ctx context.Context, conditions []entity.Condition, profile *entity.SkinProfile) ([]entity.ProductRecord, error) {
	var allergies []string
	if profile != nil {
		allergies = profile.Allergies
	}

	resolver := s.chooseResolver()

	var resolved []entity.ProductRecord
	for _, condition := range conditions {
		products, err := resolver.Resolve(ctx, condition, allergies)
		if err != nil {
			// External source unavailable is never a request failure.
			s.log.WithFields(logrus.Fields{
				"condition": condition,
				"error":     err.Error(),
			}).Warn("Product search unavailable, falling back to catalog")

			resolver = catalogResolver{}
			products, _ = resolver.Resolve(ctx, condition, allergies)
		}

		products = excludeAllergens(products, allergies)
		rankByRelevance(products, condition)
		resolved = append(resolved, products...)
	}

	return dedupeByName(resolved), nil
}

func (s *recommendationService) chooseResolver() productResolver {
	if s.searchClient != nil && s.searchClient.Enabled() {
		timeout := s.searchTimeout
		return searchResolver{
			client: s.searchClient,
			timeout: func(ctx context.Context) (context.Context, context.CancelFunc) {
				return context.WithTimeout(ctx, timeout)
			},
		}
	}
	return catalogResolver{}
}

// excludeAllergens drops any product whose ingredient tags intersect the
// allergy list, case-insensitively. This is a hard exclusion, never a
// down-ranking.
func excludeAllergens(products []entity.ProductRecord, allergies []string) []entity.ProductRecord {
	if len(allergies) == 0 {
		return products
	}

	kept := products[:0]
	for _, product := range products {
		if !hasAllergen(product, allergies) {
			kept = append(kept, product)
		}
	}
	return kept
}

func hasAllergen(product entity.ProductRecord, allergies []string) bool {
	for _, ingredient := range product.Ingredients {
		for _, allergy := range allergies {
			if strings.EqualFold(strings.TrimSpace(ingredient), strings.TrimSpace(allergy)) {
				return true
			}
		}
	}
	return false
}

// preferredCategory is the product category most directly addressing each
// condition, used by the relevance score.
var preferredCategory = map[entity.Condition]entity.ProductCategory{
	entity.ConditionAcne:              entity.CategoryCleanser,
	entity.ConditionHyperpigmentation: entity.CategorySerum,
	entity.ConditionDarkSpots:         entity.CategorySerum,
	entity.ConditionWrinkles:          entity.CategoryTreatment,
	entity.ConditionDrySkin:           entity.CategoryMoisturizer,
	entity.ConditionOilySkin:          entity.CategoryCleanser,
	entity.ConditionSensitiveSkin:     entity.CategoryCleanser,
	entity.ConditionNormalSkin:        entity.CategoryMoisturizer,
	entity.ConditionBlackheads:        entity.CategoryTreatment,
	entity.ConditionWhiteheads:        entity.CategoryTreatment,
	entity.ConditionRosacea:           entity.CategorySerum,
	entity.ConditionEczema:            entity.CategoryMoisturizer,
}

func relevanceScore(product entity.ProductRecord, condition entity.Condition) int {
	score := 0

	conditionText := strings.ReplaceAll(string(condition), "_", " ")
	haystack := strings.ToLower(product.Name + " " + product.Description)
	if strings.Contains(haystack, conditionText) {
		score += 2
	}

	if preferredCategory[condition] == product.Category {
		score++
	}

	return score
}

// rankByRelevance orders candidates for one condition by descending match
// score; equal scores keep arrival order.
func rankByRelevance(products []entity.ProductRecord, condition entity.Condition) {
	sort.SliceStable(products, func(i, j int) bool {
		return relevanceScore(products[i], condition) > relevanceScore(products[j], condition)
	})
}

func dedupeByName(products []entity.ProductRecord) []entity.ProductRecord {
	seen := make(map[string]bool, len(products))
	unique := make([]entity.ProductRecord, 0, len(products))
	for _, product := range products {
		key := strings.ToLower(product.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, product)
	}
	return unique
}
