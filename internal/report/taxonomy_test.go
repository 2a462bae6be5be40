package report

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTaxonomy(t *testing.T) {
	tax := DefaultTaxonomy()

	sections := tax.SectionNames()
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	for _, s := range sections {
		if n := len(tax.Topics(s)); n != 4 {
			t.Errorf("section %q: expected 4 topics, got %d", s, n)
		}
	}

	tests := []struct {
		topic Topic
		want  Section
	}{
		{"Information and Ideas", "Reading and Writing"},
		{"Craft and Structure", "Reading and Writing"},
		{"Expression of Ideas", "Reading and Writing"},
		{"Standard English Conventions", "Reading and Writing"},
		{"Algebra", "Math"},
		{"Advanced Math", "Math"},
		{"Problem-Solving and Data Analysis", "Math"},
		{"Geometry and Trigonometry", "Math"},
	}
	for _, tt := range tests {
		got, ok := tax.SectionOf(tt.topic)
		if !ok || got != tt.want {
			t.Errorf("SectionOf(%q) = %q, %v; want %q", tt.topic, got, ok, tt.want)
		}
	}
}

func TestParseTaxonomy_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "sections: []"},
		{"no topics", "sections:\n  - name: Math\n    topics: []"},
		{"duplicate topic", "sections:\n  - name: A\n    topics: [X]\n  - name: B\n    topics: [x]"},
		{"duplicate section", "sections:\n  - name: A\n    topics: [X]\n  - name: a\n    topics: [Y]"},
		{"bad yaml", "sections: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTaxonomy([]byte(tt.yaml)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadTaxonomy_CustomSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "act.yaml")
	doc := `sections:
  - name: English
    kind: verbal
    topics: [Usage, Rhetoric]
  - name: Science
    kind: quantitative
    topics: [Data Representation, Research Summaries]
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	tax, err := LoadTaxonomy(path)
	if err != nil {
		t.Fatalf("LoadTaxonomy: %v", err)
	}

	p := NewParser(tax)
	r := p.Parse("3 Science B C; Incorrect\nRhetoric (40%) Difficulty level: Hard\n")
	if r.Incorrect("Science") != 1 {
		t.Fatalf("expected 1 Science incorrect, got %d", r.Incorrect("Science"))
	}
	if r.Difficulty("English", "Rhetoric") != DifficultyHard {
		t.Fatalf("expected Rhetoric to be Hard")
	}
}

func TestRankByIncorrect(t *testing.T) {
	r := Parse(`1 Reading and Writing A B; Incorrect
1 Math A B; Incorrect
2 Math A C; Incorrect
`)
	got := DefaultTaxonomy().RankByIncorrect(r)
	if len(got) != 2 || got[0] != "Math" || got[1] != "Reading and Writing" {
		t.Fatalf("RankByIncorrect = %v", got)
	}

	if got := DefaultTaxonomy().RankByIncorrect(NewPerformanceReport()); len(got) != 0 {
		t.Fatalf("expected no ranked sections, got %v", got)
	}
}
