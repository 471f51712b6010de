package entity

// ProductSource tells where a recommendation came from: the live search
// collaborator or the bundled catalog fallback. The shape of the record is the
// same either way.
type ProductSource string

const (
	ProductSourceSearch  ProductSource = "search"
	ProductSourceCatalog ProductSource = "catalog"
)

type ProductCategory string

const (
	CategoryCleanser    ProductCategory = "Cleanser"
	CategorySerum       ProductCategory = "Serum"
	CategoryTreatment   ProductCategory = "Treatment"
	CategoryMoisturizer ProductCategory = "Moisturizer"
	CategorySunscreen   ProductCategory = "Sunscreen"
)

// ProductRecord is one recommended product. Records are assembled per request
// and never mutated afterwards.
type ProductRecord struct {
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Category    ProductCategory `json:"category"`
	Price       float64         `json:"price"`
	Rating      float64         `json:"rating"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url,omitempty"`
	SourceURL   string          `json:"source_url,omitempty"`
	Ingredients []string        `json:"ingredients,omitempty"`
	Condition   Condition       `json:"condition"`
	Source      ProductSource   `json:"source"`
}
