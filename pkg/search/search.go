package search

import (
	"Dermalens/internal/entity"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

var ErrSearchDisabled = errors.New("product search is not enabled")

type ISearch interface {
	Enabled() bool
	SearchProducts(ctx context.Context, condition entity.Condition, excludeTerms []string) ([]entity.ProductRecord, error)
}

type searchClient struct {
	service    *customsearch.Service
	engineID   string
	maxResults int64
	enabled    bool
	log        *logrus.Logger
}

// New builds the Google Custom Search client. Missing credentials disable the
// client instead of failing startup; the recommendation layer falls back to
// the bundled catalog when search is disabled.
func New(log *logrus.Logger) ISearch {
	apiKey := os.Getenv("GOOGLE_SEARCH_API_KEY")
	engineID := os.Getenv("GOOGLE_SEARCH_ENGINE_ID")
	enabled := os.Getenv("GOOGLE_SEARCH_ENABLED") != "false"

	maxResults := int64(5)
	if raw := os.Getenv("GOOGLE_SEARCH_MAX_RESULTS"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 && parsed <= 10 {
			maxResults = parsed
		}
	}

	client := &searchClient{
		engineID:   engineID,
		maxResults: maxResults,
		log:        log,
	}

	if !enabled || apiKey == "" || engineID == "" {
		log.Warn("Google Custom Search is not enabled or missing credentials")
		return client
	}

	service, err := customsearch.NewService(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		log.Errorf("Failed to initialize Google Custom Search: %v", err)
		return client
	}

	client.service = service
	client.enabled = true
	log.Info("Google Custom Search initialized successfully")

	return client
}

func (s *searchClient) Enabled() bool {
	return s.enabled
}

// SearchProducts queries the custom search engine for products addressing one
// condition. Ingredient terms from the caller's allergy list are excluded
// directly in the query; the hard exclusion filter still runs downstream.
func (s *searchClient) SearchProducts(ctx context.Context, condition entity.Condition, excludeTerms []string) ([]entity.ProductRecord, error) {
	if !s.enabled {
		return nil, ErrSearchDisabled
	}

	query := buildQuery(condition, excludeTerms)

	res, err := s.service.Cse.List().
		Cx(s.engineID).
		Q(query).
		Num(s.maxResults).
		Safe("active").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("product search failed: %w", err)
	}

	products := make([]entity.ProductRecord, 0, len(res.Items))
	for _, item := range res.Items {
		products = append(products, entity.ProductRecord{
			Name:        item.Title,
			Brand:       brandFromDomain(item.DisplayLink),
			Category:    categoryFromText(item.Title + " " + item.Snippet),
			Description: item.Snippet,
			SourceURL:   item.Link,
			Condition:   condition,
			Source:      entity.ProductSourceSearch,
		})
	}

	return products, nil
}

func buildQuery(condition entity.Condition, excludeTerms []string) string {
	parts := []string{"skincare products for", strings.ReplaceAll(string(condition), "_", " ")}
	for _, term := range excludeTerms {
		term = strings.TrimSpace(term)
		if term != "" {
			parts = append(parts, "-"+term)
		}
	}
	return strings.Join(parts, " ")
}

// categoryFromText guesses a product category from result text. Unmatched
// results default to treatments so the routine composer can still place them.
func categoryFromText(text string) entity.ProductCategory {
	text = strings.ToLower(text)
	switch {
	case strings.Contains(text, "cleanser") || strings.Contains(text, "face wash"):
		return entity.CategoryCleanser
	case strings.Contains(text, "serum"):
		return entity.CategorySerum
	case strings.Contains(text, "moisturizer") || strings.Contains(text, "cream"):
		return entity.CategoryMoisturizer
	case strings.Contains(text, "sunscreen") || strings.Contains(text, "spf"):
		return entity.CategorySunscreen
	default:
		return entity.CategoryTreatment
	}
}

func brandFromDomain(domain string) string {
	domain = strings.TrimPrefix(strings.ToLower(domain), "www.")
	if i := strings.Index(domain, "."); i > 0 {
		domain = domain[:i]
	}
	if domain == "" {
		return "Unknown"
	}
	return strings.ToUpper(domain[:1]) + domain[1:]
}
