package report

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
)

var (
	totalQuestionsPattern = regexp.MustCompile(`(?i)\b(\d+)\s+total\s+questions\b`)
	correctAnswersPattern = regexp.MustCompile(`(?i)\b(\d+)\s+correct\s+answers\b`)
	incorrectPattern      = regexp.MustCompile(`(?i)\b(\d+)\s+incorrect\s+answers\b`)
)

// answerChars is the character class allowed in a recorded answer. It
// covers multiple-choice letters as well as free-response values such as
// "3/4", "0.75" or "1,200".
const answerChars = `[A-Za-z0-9/.,\- ]`

// Parser turns score-report text into a PerformanceReport. A Parser is
// immutable and safe for concurrent use.
type Parser struct {
	taxonomy *Taxonomy
	rowRe    *regexp.Regexp
	topicRes []topicPattern
}

type topicPattern struct {
	section Section
	topic   Topic
	re      *regexp.Regexp
}

var defaultParser = sync.OnceValue(func() *Parser {
	return NewParser(DefaultTaxonomy())
})

// Parse parses report text with the default taxonomy.
func Parse(text string) *PerformanceReport {
	return defaultParser().Parse(text)
}

// NewParser compiles the row and topic patterns for a taxonomy.
func NewParser(t *Taxonomy) *Parser {
	names := make([]string, 0, len(t.Sections))
	for _, s := range t.Sections {
		names = append(names, regexp.QuoteMeta(string(s.Name)))
	}
	// Longer names first so "Math" never shadows a longer section name
	// sharing its prefix.
	sort.SliceStable(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	rowRe := regexp.MustCompile(`(?i)\b(\d+)\s+(` + strings.Join(names, "|") + `)\s+(` +
		answerChars + `+?)\s+(` + answerChars + `+?)\s*;\s*(correct|incorrect)\b`)

	var topicRes []topicPattern
	for _, s := range t.Sections {
		for _, topic := range s.Topics {
			re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(string(topic)) +
				`\s*\(\s*(\d{1,3})(?:\.\d+)?\s*%[^)]*\)` +
				`(?:[\s,;|\-]*\[?\s*difficulty\s+level\s*:\s*(easy|medium|hard)\s*\]?)?`)
			topicRes = append(topicRes, topicPattern{section: s.Name, topic: topic, re: re})
		}
	}

	return &Parser{taxonomy: t, rowRe: rowRe, topicRes: topicRes}
}

// Taxonomy returns the taxonomy the parser was built from.
func (p *Parser) Taxonomy() *Taxonomy {
	return p.taxonomy
}

// Parse extracts summary totals, topic annotations and question rows from
// text. It never fails: anything that does not match is ignored.
func (p *Parser) Parse(text string) *PerformanceReport {
	r := NewPerformanceReport()

	totalQ, foundTotal := firstInt(totalQuestionsPattern, text)
	correct, foundCorrect := firstInt(correctAnswersPattern, text)
	incorrect, foundIncorrect := firstInt(incorrectPattern, text)
	r.TotalQuestions = totalQ
	r.TotalCorrect = correct
	r.TotalIncorrect = incorrect

	p.parseTopics(r, text)
	p.parseRows(r, text)

	if len(r.Sections) > 0 {
		var sumC, sumI, sumT int
		for _, sp := range r.Sections {
			sumC += sp.Correct
			sumI += sp.Incorrect
			sumT += sp.Total
		}
		if !foundTotal || r.TotalQuestions == 0 {
			r.TotalQuestions, r.TotalCorrect, r.TotalIncorrect = sumT, sumC, sumI
		} else {
			if !foundCorrect {
				r.TotalCorrect = sumC
			}
			if !foundIncorrect {
				r.TotalIncorrect = sumI
			}
		}
	}

	return r
}

func (p *Parser) parseTopics(r *PerformanceReport, text string) {
	for _, tp := range p.topicRes {
		m := tp.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		pct, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if pct > 100 {
			pct = 100
		}
		diff := DifficultyMedium
		switch strings.ToLower(m[2]) {
		case "easy":
			diff = DifficultyEasy
		case "hard":
			diff = DifficultyHard
		}
		r.setTopic(tp.section, tp.topic, TopicDifficultyInfo{Percentage: pct, Difficulty: diff})
	}
}

func (p *Parser) parseRows(r *PerformanceReport, text string) {
	// Extracted PDF text often joins several table rows onto one line.
	for _, line := range strings.Split(text, "\n") {
		for _, m := range p.rowRe.FindAllStringSubmatch(line, -1) {
			section, ok := p.taxonomy.CanonicalSection(m[2])
			if !ok {
				continue
			}
			sp := r.section(section)
			sp.Total++
			if strings.EqualFold(m[5], "incorrect") {
				sp.Incorrect++
				sp.IncorrectQuestions = append(sp.IncorrectQuestions, IncorrectQuestion{
					QuestionNumber: m[1],
					CorrectAnswer:  strings.TrimSpace(m[3]),
					YourAnswer:     strings.TrimSpace(m[4]),
				})
			} else {
				sp.Correct++
			}
		}
	}
}

func firstInt(re *regexp.Regexp, text string) (int, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
