package entity

// Condition is one label of the fixed skin-condition enumeration the
// classifier is trained on. The order of Conditions is the model's output
// order and is also the tie-break order when confidences are equal.
type Condition string

const (
	ConditionAcne              Condition = "acne"
	ConditionHyperpigmentation Condition = "hyperpigmentation"
	ConditionDarkSpots         Condition = "dark_spots"
	ConditionWrinkles          Condition = "wrinkles"
	ConditionDrySkin           Condition = "dry_skin"
	ConditionOilySkin          Condition = "oily_skin"
	ConditionSensitiveSkin     Condition = "sensitive_skin"
	ConditionNormalSkin        Condition = "normal_skin"
	ConditionBlackheads        Condition = "blackheads"
	ConditionWhiteheads        Condition = "whiteheads"
	ConditionRosacea           Condition = "rosacea"
	ConditionEczema            Condition = "eczema"
)

var Conditions = []Condition{
	ConditionAcne,
	ConditionHyperpigmentation,
	ConditionDarkSpots,
	ConditionWrinkles,
	ConditionDrySkin,
	ConditionOilySkin,
	ConditionSensitiveSkin,
	ConditionNormalSkin,
	ConditionBlackheads,
	ConditionWhiteheads,
	ConditionRosacea,
	ConditionEczema,
}

var conditionIndex = func() map[Condition]int {
	m := make(map[Condition]int, len(Conditions))
	for i, c := range Conditions {
		m[c] = i
	}
	return m
}()

// ConditionIndex returns the position of c in the fixed enumeration, or -1
// for labels outside of it.
func ConditionIndex(c Condition) int {
	if i, ok := conditionIndex[c]; ok {
		return i
	}
	return -1
}

// IsValidCondition reports whether c belongs to the fixed enumeration.
func IsValidCondition(c Condition) bool {
	return ConditionIndex(c) >= 0
}

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// SeverityFor maps a confidence to the coarse severity bucket shown to users.
func SeverityFor(confidence float64) Severity {
	switch {
	case confidence > 0.7:
		return SeverityHigh
	case confidence > 0.4:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
