package report

// Section is a top-level division of the test, e.g. "Math".
type Section string

// Topic is a named sub-skill within a section, e.g. "Advanced Math".
type Topic string

// Difficulty is the difficulty label a score report attaches to a topic.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// WeakIncorrectThreshold is the number of incorrect answers in a section
// above which every topic of that section counts as weak.
const WeakIncorrectThreshold = 5

// IncorrectQuestion records one question the student answered wrong.
type IncorrectQuestion struct {
	QuestionNumber string `json:"question_number"`
	CorrectAnswer  string `json:"correct_answer"`
	YourAnswer     string `json:"your_answer"`
}

// SectionPerformance aggregates the question rows of one section.
// Total == Correct + Incorrect and Incorrect == len(IncorrectQuestions).
type SectionPerformance struct {
	Correct            int                 `json:"correct"`
	Incorrect          int                 `json:"incorrect"`
	Total              int                 `json:"total"`
	IncorrectQuestions []IncorrectQuestion `json:"incorrect_questions"`
}

// TopicDifficultyInfo is the per-topic annotation found on some reports.
type TopicDifficultyInfo struct {
	// Percentage is the share of the section the topic covers (0-100).
	Percentage int        `json:"percentage"`
	Difficulty Difficulty `json:"difficulty"`
}

// PerformanceReport is the structured form of a score report. It is built
// fresh for every parse and carries no identity.
type PerformanceReport struct {
	Sections       map[Section]*SectionPerformance           `json:"sections"`
	TotalCorrect   int                                       `json:"total_correct"`
	TotalIncorrect int                                       `json:"total_incorrect"`
	TotalQuestions int                                       `json:"total_questions"`
	Topics         map[Section]map[Topic]TopicDifficultyInfo `json:"topics,omitempty"`
}

// NewPerformanceReport returns an empty report with initialized maps.
func NewPerformanceReport() *PerformanceReport {
	return &PerformanceReport{
		Sections: make(map[Section]*SectionPerformance),
	}
}

// HasData reports whether anything usable was recovered from the text.
// A report without question rows and without summary totals is treated as
// insufficient data by the generation pipeline.
func (r *PerformanceReport) HasData() bool {
	if r == nil {
		return false
	}
	return len(r.Sections) > 0 || r.TotalQuestions > 0
}

// Section returns the performance of the given section, or the zero value
// when the report has no rows for it.
func (r *PerformanceReport) Section(s Section) SectionPerformance {
	if r == nil {
		return SectionPerformance{}
	}
	if sp, ok := r.Sections[s]; ok && sp != nil {
		return *sp
	}
	return SectionPerformance{}
}

// Incorrect returns the number of incorrect answers recorded for a section.
func (r *PerformanceReport) Incorrect(s Section) int {
	return r.Section(s).Incorrect
}

// TopicInfo returns the difficulty annotation for a topic and whether the
// report carried one.
func (r *PerformanceReport) TopicInfo(s Section, t Topic) (TopicDifficultyInfo, bool) {
	if r == nil || r.Topics == nil {
		return TopicDifficultyInfo{}, false
	}
	info, ok := r.Topics[s][t]
	return info, ok
}

// Difficulty returns the recorded difficulty of a topic, defaulting to
// Medium when the report has no annotation for it.
func (r *PerformanceReport) Difficulty(s Section, t Topic) Difficulty {
	if info, ok := r.TopicInfo(s, t); ok && info.Difficulty != "" {
		return info.Difficulty
	}
	return DifficultyMedium
}

func (r *PerformanceReport) section(s Section) *SectionPerformance {
	sp, ok := r.Sections[s]
	if !ok {
		sp = &SectionPerformance{IncorrectQuestions: []IncorrectQuestion{}}
		r.Sections[s] = sp
	}
	return sp
}

func (r *PerformanceReport) setTopic(s Section, t Topic, info TopicDifficultyInfo) {
	if r.Topics == nil {
		r.Topics = make(map[Section]map[Topic]TopicDifficultyInfo)
	}
	if r.Topics[s] == nil {
		r.Topics[s] = make(map[Topic]TopicDifficultyInfo)
	}
	r.Topics[s][t] = info
}
