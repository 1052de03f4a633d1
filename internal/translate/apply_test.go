package translate

import (
	"testing"

	"github.com/subedit/subedit/internal/segment"
)

func applyFixture() []segment.Segment {
	return []segment.Segment{
		{ID: 1, Start: 0, End: 2, Text: "Hello"},
		{ID: 2, Start: 2, End: 4, Text: "World"},
		{ID: 3, Start: 4, End: 6, Text: "Bye"},
	}
}

func TestItemsPreservesOrder(t *testing.T) {
	items := Items(applyFixture())

	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, item := range items {
		if item.Index != i {
			t.Errorf("item %d has index %d", i, item.Index)
		}
	}
	if items[1].Text != "World" {
		t.Errorf("unexpected text: %q", items[1].Text)
	}
}

func TestApplyMatchesByIndex(t *testing.T) {
	segs := applyFixture()
	out := Apply(segs, []TranslationResult{
		{Index: 0, Text: "Hola"},
		{Index: 2, Text: "Adios"},
	})

	if out[0].Translated != "Hola" {
		t.Errorf("unexpected translation: %q", out[0].Translated)
	}
	if out[1].Translated != "" {
		t.Errorf("missing result should leave segment untranslated, got %q", out[1].Translated)
	}
	if out[2].Translated != "Adios" {
		t.Errorf("unexpected translation: %q", out[2].Translated)
	}
}

func TestApplyDropsOutOfRangeResults(t *testing.T) {
	out := Apply(applyFixture(), []TranslationResult{
		{Index: -1, Text: "bad"},
		{Index: 99, Text: "bad"},
		{Index: 1, Text: "  Mundo  "},
	})

	if out[1].Translated != "Mundo" {
		t.Errorf("expected trimmed translation, got %q", out[1].Translated)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	segs := applyFixture()
	_ = Apply(segs, []TranslationResult{{Index: 0, Text: "Hola"}})

	if segs[0].Translated != "" {
		t.Error("Apply mutated its input")
	}
}
