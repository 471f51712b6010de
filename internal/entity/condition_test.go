package entity_test

import (
	"testing"

	"Dermalens/internal/entity"
)

func TestConditionIndex(t *testing.T) {
	for i, condition := range entity.Conditions {
		if got := entity.ConditionIndex(condition); got != i {
			t.Errorf("ConditionIndex(%s) = %d, want %d", condition, got, i)
		}
	}

	if got := entity.ConditionIndex("sunburn"); got != -1 {
		t.Errorf("ConditionIndex(sunburn) = %d, want -1", got)
	}
}

func TestIsValidCondition(t *testing.T) {
	if !entity.IsValidCondition(entity.ConditionAcne) {
		t.Error("acne should be a valid condition")
	}
	if entity.IsValidCondition("") {
		t.Error("empty label should not be valid")
	}
	if entity.IsValidCondition("Acne") {
		t.Error("labels are case sensitive")
	}
}

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		confidence float64
		want       entity.Severity
	}{
		{0.95, entity.SeverityHigh},
		{0.71, entity.SeverityHigh},
		{0.7, entity.SeverityMedium},
		{0.5, entity.SeverityMedium},
		{0.41, entity.SeverityMedium},
		{0.4, entity.SeverityLow},
		{0.1, entity.SeverityLow},
		{0, entity.SeverityLow},
	}

	for _, tt := range tests {
		if got := entity.SeverityFor(tt.confidence); got != tt.want {
			t.Errorf("SeverityFor(%f) = %s, want %s", tt.confidence, got, tt.want)
		}
	}
}
