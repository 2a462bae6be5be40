package problemgen

import (
	"github.com/abhisek/scoreprep/internal/report"
)

// Allocate splits count questions across the sections of t in proportion to
// each section's incorrect answers.
//
// Each section with incorrect answers gets ceil(incorrect/total*count);
// sections without incorrect answers get nothing. The ceilings can overshoot,
// so the excess is taken back one question at a time from the section with
// the most incorrect answers (ties in taxonomy order) that still has any.
// When no section has incorrect answers the count is split evenly, earlier
// sections taking the remainder.
func Allocate(t *report.Taxonomy, r *report.PerformanceReport, count int) map[report.Section]int {
	sections := t.SectionNames()
	alloc := make(map[report.Section]int, len(sections))
	for _, s := range sections {
		alloc[s] = 0
	}
	if count <= 0 || len(sections) == 0 {
		return alloc
	}

	total := 0
	for _, s := range sections {
		total += r.Incorrect(s)
	}

	if total == 0 {
		base, rem := count/len(sections), count%len(sections)
		for i, s := range sections {
			alloc[s] = base
			if i < rem {
				alloc[s]++
			}
		}
		return alloc
	}

	sum := 0
	for _, s := range sections {
		inc := r.Incorrect(s)
		alloc[s] = (inc*count + total - 1) / total
		sum += alloc[s]
	}

	ranked := t.RankByIncorrect(r)
	for excess := sum - count; excess > 0; excess-- {
		for _, s := range ranked {
			if alloc[s] > 0 {
				alloc[s]--
				break
			}
		}
	}
	return alloc
}
