package report

import (
	"reflect"
	"testing"
)

func TestWeakTopics_ManyIncorrectNoDifficulty(t *testing.T) {
	r := Parse(`1 Math A B; Incorrect
2 Math A C; Incorrect
3 Math A D; Incorrect
4 Math B A; Incorrect
5 Math B C; Incorrect
6 Math B D; Incorrect
`)
	got := WeakTopics(r, "Math")
	want := DefaultTaxonomy().Topics("Math")
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WeakTopics = %v, want full list %v", got, want)
	}
}

func TestWeakTopics_HardTopicsOnly(t *testing.T) {
	r := Parse(`Algebra (35% of section) Difficulty level: Hard
Advanced Math (35% of section) Difficulty level: Easy
Geometry and Trigonometry (15% of section) Difficulty level: Hard
1 Math A B; Incorrect
`)
	got := WeakTopics(r, "Math")
	want := []Topic{"Algebra", "Geometry and Trigonometry"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WeakTopics = %v, want %v", got, want)
	}
}

func TestWeakTopics_NothingQualifiesReturnsDefaults(t *testing.T) {
	r := Parse("1 Reading and Writing A B; Incorrect\n")
	got := WeakTopics(r, "Reading and Writing")
	if len(got) != 4 {
		t.Fatalf("expected 4 default topics, got %v", got)
	}
}

func TestWeakTopics_EmptyReport(t *testing.T) {
	r := NewPerformanceReport()
	for _, s := range DefaultTaxonomy().SectionNames() {
		if got := WeakTopics(r, s); len(got) == 0 {
			t.Fatalf("section %q yielded no topics", s)
		}
	}
}

func TestWeakTopics_UnknownSection(t *testing.T) {
	if got := WeakTopics(NewPerformanceReport(), "Science"); got != nil {
		t.Fatalf("expected nil for unknown section, got %v", got)
	}
}

func TestWeakTopics_ThresholdBoundary(t *testing.T) {
	// Exactly WeakIncorrectThreshold incorrect answers is not "more than".
	text := "Algebra (35%) Difficulty level: Hard\n"
	for i := range WeakIncorrectThreshold {
		text += string(rune('1'+i)) + " Math A B; Incorrect\n"
	}
	r := Parse(text)
	if r.Incorrect("Math") != WeakIncorrectThreshold {
		t.Fatalf("expected %d incorrect, got %d", WeakIncorrectThreshold, r.Incorrect("Math"))
	}
	got := WeakTopics(r, "Math")
	if !reflect.DeepEqual(got, []Topic{"Algebra"}) {
		t.Fatalf("WeakTopics = %v, want [Algebra]", got)
	}
}
