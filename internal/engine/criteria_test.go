package engine

import (
	"errors"
	"testing"
)

func TestParseSortCriterion(t *testing.T) {
	for _, a := range SortActions() {
		got, err := ParseSortCriterion(a.Criterion)
		if err != nil {
			t.Errorf("ParseSortCriterion(%q): %v", a.Criterion, err)
		}
		if string(got) != a.Criterion {
			t.Errorf("ParseSortCriterion(%q) = %q", a.Criterion, got)
		}
	}

	if _, err := ParseSortCriterion("color"); !errors.Is(err, ErrUnknownCriterion) {
		t.Errorf("ParseSortCriterion(\"color\"): got %v, want ErrUnknownCriterion", err)
	}
}

func TestParseGroupCriterion(t *testing.T) {
	for _, a := range GroupActions() {
		if _, err := ParseGroupCriterion(a.Criterion); err != nil {
			t.Errorf("ParseGroupCriterion(%q): %v", a.Criterion, err)
		}
	}

	if _, err := ParseGroupCriterion("name"); !errors.Is(err, ErrUnknownCriterion) {
		t.Errorf("ParseGroupCriterion(\"name\"): got %v, want ErrUnknownCriterion", err)
	}
}
