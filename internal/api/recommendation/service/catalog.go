package recommendationService

import "Dermalens/internal/entity"

// fallbackCatalog is the bundled product table used whenever the external
// search collaborator is disabled or unavailable. Keyed by condition label;
// entries carry ingredient tags so the allergy filter applies to catalog
// results exactly like search results.
var fallbackCatalog = map[entity.Condition][]entity.ProductRecord{
	entity.ConditionAcne: {
		{
			Name:        "CeraVe Acne Foaming Cream Cleanser",
			Brand:       "CeraVe",
			Category:    entity.CategoryCleanser,
			Price:       16.99,
			Rating:      4.5,
			Description: "Contains benzoyl peroxide to treat acne",
			ImageURL:    "/cerave-acne-cleanser.jpg",
			Ingredients: []string{"benzoyl peroxide", "ceramides", "hyaluronic acid"},
		},
		{
			Name:        "The Ordinary Niacinamide 10% + Zinc 1%",
			Brand:       "The Ordinary",
			Category:    entity.CategorySerum,
			Price:       12.90,
			Rating:      4.6,
			Description: "Reduces blemishes and balances oil production",
			ImageURL:    "/ordinary-niacinamide.jpg",
			Ingredients: []string{"niacinamide", "zinc"},
		},
	},
	entity.ConditionHyperpigmentation: {
		{
			Name:        "Paula's Choice 10% Azelaic Acid Booster",
			Brand:       "Paula's Choice",
			Category:    entity.CategoryTreatment,
			Price:       36.00,
			Rating:      4.7,
			Description: "Reduces dark spots and evens skin tone",
			ImageURL:    "/paula-choice-azelaic.jpg",
			Ingredients: []string{"azelaic acid", "salicylic acid"},
		},
		{
			Name:        "The Ordinary Vitamin C Suspension 23%",
			Brand:       "The Ordinary",
			Category:    entity.CategorySerum,
			Price:       7.20,
			Rating:      4.3,
			Description: "Brightens skin and reduces dark spots",
			ImageURL:    "/ordinary-vitamin-c.jpg",
			Ingredients: []string{"vitamin c", "ascorbic acid"},
		},
	},
	entity.ConditionDarkSpots: {
		{
			Name:        "The Ordinary Alpha Arbutin 2% + HA",
			Brand:       "The Ordinary",
			Category:    entity.CategorySerum,
			Price:       10.90,
			Rating:      4.4,
			Description: "Targets dark spots and uneven pigmentation",
			ImageURL:    "/ordinary-alpha-arbutin.jpg",
			Ingredients: []string{"alpha arbutin", "hyaluronic acid"},
		},
	},
	entity.ConditionWrinkles: {
		{
			Name:        "The Ordinary Retinol 0.5% in Squalane",
			Brand:       "The Ordinary",
			Category:    entity.CategoryTreatment,
			Price:       9.80,
			Rating:      4.4,
			Description: "Anti-aging retinol treatment",
			ImageURL:    "/ordinary-retinol.jpg",
			Ingredients: []string{"retinol", "squalane"},
		},
	},
	entity.ConditionDrySkin: {
		{
			Name:        "CeraVe Moisturizing Cream",
			Brand:       "CeraVe",
			Category:    entity.CategoryMoisturizer,
			Price:       19.99,
			Rating:      4.8,
			Description: "Rich moisturizer with ceramides and hyaluronic acid",
			ImageURL:    "/cerave-moisturizer.jpg",
			Ingredients: []string{"ceramides", "hyaluronic acid", "petrolatum"},
		},
	},
	entity.ConditionOilySkin: {
		{
			Name:        "La Roche-Posay Effaclar Purifying Foaming Gel",
			Brand:       "La Roche-Posay",
			Category:    entity.CategoryCleanser,
			Price:       16.99,
			Rating:      4.6,
			Description: "Gel cleanser for oily and acne-prone skin",
			ImageURL:    "/lrp-effaclar-gel.jpg",
			Ingredients: []string{"zinc", "glycerin"},
		},
	},
	entity.ConditionSensitiveSkin: {
		{
			Name:        "Vanicream Gentle Facial Cleanser",
			Brand:       "Vanicream",
			Category:    entity.CategoryCleanser,
			Price:       9.99,
			Rating:      4.7,
			Description: "Fragrance-free cleanser for sensitive skin",
			ImageURL:    "/vanicream-cleanser.jpg",
			Ingredients: []string{"glycerin"},
		},
	},
	entity.ConditionNormalSkin: {
		{
			Name:        "Neutrogena Hydro Boost Water Gel",
			Brand:       "Neutrogena",
			Category:    entity.CategoryMoisturizer,
			Price:       18.49,
			Rating:      4.5,
			Description: "Lightweight daily gel moisturizer",
			ImageURL:    "/neutrogena-hydro-boost.jpg",
			Ingredients: []string{"hyaluronic acid", "glycerin"},
		},
		{
			Name:        "EltaMD UV Clear Broad-Spectrum SPF 46",
			Brand:       "EltaMD",
			Category:    entity.CategorySunscreen,
			Price:       41.00,
			Rating:      4.8,
			Description: "Oil-free facial sunscreen for daily use",
			ImageURL:    "/eltamd-uv-clear.jpg",
			Ingredients: []string{"zinc oxide", "niacinamide"},
		},
	},
	entity.ConditionBlackheads: {
		{
			Name:        "Paula's Choice Skin Perfecting 2% BHA Liquid",
			Brand:       "Paula's Choice",
			Category:    entity.CategoryTreatment,
			Price:       32.00,
			Rating:      4.6,
			Description: "Salicylic acid exfoliant that unclogs pores",
			ImageURL:    "/paula-choice-bha.jpg",
			Ingredients: []string{"salicylic acid", "green tea"},
		},
	},
	entity.ConditionWhiteheads: {
		{
			Name:        "Differin Adapalene Gel 0.1%",
			Brand:       "Differin",
			Category:    entity.CategoryTreatment,
			Price:       15.49,
			Rating:      4.5,
			Description: "Retinoid treatment for clogged pores and breakouts",
			ImageURL:    "/differin-gel.jpg",
			Ingredients: []string{"adapalene"},
		},
	},
	entity.ConditionRosacea: {
		{
			Name:        "Azelique Azelaic Acid Serum",
			Brand:       "Azelique",
			Category:    entity.CategorySerum,
			Price:       24.00,
			Rating:      4.2,
			Description: "Calms redness and visible flushing",
			ImageURL:    "/azelique-serum.jpg",
			Ingredients: []string{"azelaic acid"},
		},
	},
	entity.ConditionEczema: {
		{
			Name:        "Aveeno Eczema Therapy Daily Moisturizing Cream",
			Brand:       "Aveeno",
			Category:    entity.CategoryMoisturizer,
			Price:       13.97,
			Rating:      4.7,
			Description: "Colloidal oatmeal cream for eczema-prone skin",
			ImageURL:    "/aveeno-eczema.jpg",
			Ingredients: []string{"colloidal oatmeal", "ceramides"},
		},
	},
}
