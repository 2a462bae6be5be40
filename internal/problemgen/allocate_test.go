package problemgen

import (
	"math"
	"strconv"
	"testing"

	"github.com/abhisek/scoreprep/internal/report"
)

const (
	rw  report.Section = "Reading and Writing"
	mth report.Section = "Math"
)

// reportWithIncorrect builds a report with the given incorrect counts and
// one correct answer per section.
func reportWithIncorrect(incRW, incMath int) *report.PerformanceReport {
	r := report.NewPerformanceReport()
	for s, inc := range map[report.Section]int{rw: incRW, mth: incMath} {
		sp := &report.SectionPerformance{Correct: 1, Incorrect: inc, Total: inc + 1}
		for i := range inc {
			sp.IncorrectQuestions = append(sp.IncorrectQuestions, report.IncorrectQuestion{
				QuestionNumber: strconv.Itoa(i + 1), CorrectAnswer: "A", YourAnswer: "B",
			})
		}
		r.Sections[s] = sp
		r.TotalCorrect++
		r.TotalIncorrect += inc
		r.TotalQuestions += inc + 1
	}
	return r
}

func TestAllocate_Examples(t *testing.T) {
	tax := report.DefaultTaxonomy()

	tests := []struct {
		name            string
		incRW, incMath  int
		count           int
		wantRW, wantMth int
	}{
		{"even split", 3, 3, 10, 5, 5},
		{"proportional", 2, 8, 10, 2, 8},
		{"ceiling excess taken from larger", 1, 2, 10, 4, 6},
		{"larger first section", 2, 1, 10, 6, 4},
		{"zero incorrect gets zero", 0, 4, 10, 0, 10},
		{"no incorrect splits evenly", 0, 0, 10, 5, 5},
		{"odd count no incorrect", 0, 0, 7, 4, 3},
		{"count one tie", 1, 1, 1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc := Allocate(tax, reportWithIncorrect(tt.incRW, tt.incMath), tt.count)
			if alloc[rw] != tt.wantRW || alloc[mth] != tt.wantMth {
				t.Fatalf("Allocate(%d, %d, %d) = %v, want RW=%d Math=%d",
					tt.incRW, tt.incMath, tt.count, alloc, tt.wantRW, tt.wantMth)
			}
		})
	}
}

func TestAllocate_Properties(t *testing.T) {
	tax := report.DefaultTaxonomy()

	for _, count := range []int{1, 2, 5, 10, 13, 25} {
		for incRW := 0; incRW <= 20; incRW++ {
			for incMath := 0; incMath <= 20; incMath++ {
				alloc := Allocate(tax, reportWithIncorrect(incRW, incMath), count)

				if got := alloc[rw] + alloc[mth]; got != count {
					t.Fatalf("count=%d inc=(%d,%d): allocation sums to %d", count, incRW, incMath, got)
				}
				if alloc[rw] < 0 || alloc[mth] < 0 {
					t.Fatalf("count=%d inc=(%d,%d): negative allocation %v", count, incRW, incMath, alloc)
				}

				total := incRW + incMath
				if total == 0 {
					continue
				}
				if incRW == 0 && alloc[rw] != 0 {
					t.Fatalf("count=%d inc=(0,%d): section without incorrect answers got %d", count, incMath, alloc[rw])
				}
				if incMath == 0 && alloc[mth] != 0 {
					t.Fatalf("count=%d inc=(%d,0): section without incorrect answers got %d", count, incRW, alloc[mth])
				}

				// Two sections: the ceiling overshoots by at most one, so
				// each share stays within one question of proportional.
				if count >= 2 {
					for s, inc := range map[report.Section]int{rw: incRW, mth: incMath} {
						share := float64(inc) / float64(total) * float64(count)
						if math.Abs(float64(alloc[s])-share) >= 1 {
							t.Fatalf("count=%d inc=(%d,%d): %s got %d, proportional share %.2f",
								count, incRW, incMath, s, alloc[s], share)
						}
					}
				}
			}
		}
	}
}

func TestAllocate_NonPositiveCount(t *testing.T) {
	alloc := Allocate(report.DefaultTaxonomy(), reportWithIncorrect(3, 3), 0)
	if alloc[rw] != 0 || alloc[mth] != 0 {
		t.Fatalf("expected zero allocation, got %v", alloc)
	}
}
