package recommendationService

import (
	"Dermalens/internal/entity"
	"time"
)

// Category priority tables. These are static policy, not learned: the
// position in the slice is the application order within each time of day.
var (
	morningOrder = []entity.ProductCategory{
		entity.CategoryCleanser,
		entity.CategorySerum,
		entity.CategoryTreatment,
		entity.CategoryMoisturizer,
		entity.CategorySunscreen,
	}

	eveningOrder = []entity.ProductCategory{
		entity.CategoryCleanser,
		entity.CategoryTreatment,
		entity.CategorySerum,
		entity.CategoryMoisturizer,
	}
)

// At most this many treatment steps per sequence.
const maxTreatments = 2

type stepTemplate struct {
	name         string
	duration     string
	instructions string
}

var morningTemplates = map[entity.ProductCategory]stepTemplate{
	entity.CategoryCleanser: {
		name:         "Gentle Cleanser",
		duration:     "1 min",
		instructions: "Massage onto damp skin in circular motions, then rinse with lukewarm water.",
	},
	entity.CategorySerum: {
		name:         "Targeted Serum",
		duration:     "30 sec",
		instructions: "Apply evenly to face and neck. Wait for absorption before next step.",
	},
	entity.CategoryTreatment: {
		name:         "Treatment",
		duration:     "30 sec",
		instructions: "Apply evenly to face and neck. Wait for absorption before next step.",
	},
	entity.CategoryMoisturizer: {
		name:         "Moisturizer",
		duration:     "30 sec",
		instructions: "Apply evenly to face and neck while skin is still slightly damp.",
	},
	entity.CategorySunscreen: {
		name:         "Sunscreen SPF 50",
		duration:     "1 min",
		instructions: "Apply generously as the final step. Reapply every 2 hours if outdoors.",
	},
}

var eveningTemplates = map[entity.ProductCategory]stepTemplate{
	entity.CategoryCleanser: {
		name:         "Gentle Cleanser",
		duration:     "1 min",
		instructions: "Massage onto damp skin in circular motions, then rinse with lukewarm water.",
	},
	entity.CategoryTreatment: {
		name:         "Treatment",
		duration:     "30 sec",
		instructions: "Apply evenly to face and neck. Wait for absorption before next step.",
	},
	entity.CategorySerum: {
		name:         "Targeted Serum",
		duration:     "30 sec",
		instructions: "Apply evenly to face and neck. Wait for absorption before next step.",
	},
	entity.CategoryMoisturizer: {
		name:         "Night Moisturizer",
		duration:     "1 min",
		instructions: "Apply generously as the final step to lock in moisture overnight.",
	},
}

// ComposeRoutine arranges resolved products into the fixed morning and
// evening sequences. Categories with no resolved product are omitted; there
// are no placeholder steps.
func (s *recommendationService) ComposeRoutine(products []entity.ProductRecord) entity.Routine {
	byCategory := make(map[entity.ProductCategory][]entity.ProductRecord)
	for _, product := range products {
		byCategory[product.Category] = append(byCategory[product.Category], product)
	}

	routine := entity.Routine{
		Morning:       composeSequence(byCategory, morningOrder, morningTemplates),
		Evening:       composeSequence(byCategory, eveningOrder, eveningTemplates),
		TotalProducts: len(products),
		GeneratedAt:   time.Now(),
	}

	for _, product := range products {
		routine.EstimatedCost += product.Price
	}

	return routine
}

func composeSequence(
	byCategory map[entity.ProductCategory][]entity.ProductRecord,
	order []entity.ProductCategory,
	templates map[entity.ProductCategory]stepTemplate,
) []entity.RoutineStep {
	var steps []entity.RoutineStep
	step := 1

	for _, category := range order {
		candidates := byCategory[category]
		if len(candidates) == 0 {
			continue
		}

		count := 1
		if category == entity.CategoryTreatment && len(candidates) > 1 {
			count = maxTreatments
			if len(candidates) < count {
				count = len(candidates)
			}
		}

		template := templates[category]
		for i := 0; i < count; i++ {
			steps = append(steps, entity.RoutineStep{
				Step:         step,
				Name:         template.name,
				Category:     category,
				Product:      candidates[i].Name,
				Brand:        candidates[i].Brand,
				Duration:     template.duration,
				Instructions: template.instructions,
			})
			step++
		}
	}

	return steps
}
