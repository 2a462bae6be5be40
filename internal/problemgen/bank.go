package problemgen

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/scoreprep/internal/report"
)

//go:embed bank.yaml
var defaultBankYAML []byte

// bankValidators run against every template when a bank is loaded.
var bankValidators = []Validator{
	&StructuralValidator{},
	&MultipleChoiceValidator{},
}

type bankFile struct {
	Topics []struct {
		Topic     string              `yaml:"topic"`
		Templates []GeneratedQuestion `yaml:"templates"`
	} `yaml:"topics"`
}

// Bank is the fallback question bank: a read-only table of templates per
// taxonomy topic. It is safe for concurrent use.
type Bank struct {
	taxonomy  *report.Taxonomy
	templates map[report.Topic][]GeneratedQuestion
}

var defaultBank = sync.OnceValues(func() (*Bank, error) {
	return ParseBank(defaultBankYAML, report.DefaultTaxonomy())
})

// DefaultBank returns the embedded bank for the default taxonomy. The bank
// is parsed once per process.
func DefaultBank() (*Bank, error) {
	return defaultBank()
}

// LoadBank reads a bank file for taxonomy t from disk.
func LoadBank(path string, t *report.Taxonomy) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return ParseBank(data, t)
}

// ParseBank decodes and validates a bank document against taxonomy t.
func ParseBank(data []byte, t *report.Taxonomy) (*Bank, error) {
	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	b := &Bank{
		taxonomy:  t,
		templates: make(map[report.Topic][]GeneratedQuestion),
	}
	for _, entry := range f.Topics {
		topic, ok := t.CanonicalTopic(entry.Topic)
		if !ok {
			return nil, fmt.Errorf("question bank: unknown topic %q", entry.Topic)
		}
		for _, tmpl := range entry.Templates {
			tmpl.Topic = string(topic)
			b.templates[topic] = append(b.templates[topic], tmpl)
		}
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks that every topic of the taxonomy has templates, that
// template ids are unique, and that each template is a well-formed
// multiple-choice question.
func (b *Bank) Validate() error {
	var errs []error
	seen := make(map[string]bool)

	for _, topic := range b.taxonomy.AllTopics() {
		tmpls := b.templates[topic]
		if len(tmpls) == 0 {
			errs = append(errs, fmt.Errorf("topic %q has no templates", topic))
			continue
		}
		for i := range tmpls {
			if seen[tmpls[i].ID] {
				errs = append(errs, fmt.Errorf("duplicate template id %q", tmpls[i].ID))
			}
			seen[tmpls[i].ID] = true
			if verr := runValidators(&tmpls[i], bankValidators); verr != nil {
				errs = append(errs, verr)
			}
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid question bank: %w", err)
	}
	return nil
}

// Taxonomy returns the taxonomy the bank is keyed by.
func (b *Bank) Taxonomy() *report.Taxonomy {
	return b.taxonomy
}

// Templates returns a copy of the templates for a topic.
func (b *Bank) Templates(topic report.Topic) []GeneratedQuestion {
	out := make([]GeneratedQuestion, len(b.templates[topic]))
	for i, t := range b.templates[topic] {
		out[i] = t.clone()
	}
	return out
}

// Generate selects exactly count questions for r. It never fails and
// returns the same questions for the same report, count and time.
//
// Sections with incorrect answers are served first, most incorrect first:
// each gets min(allocation, incorrect answers, remaining) questions spread
// round-robin over its weak topics. Any shortfall is filled by cycling over
// every topic of the taxonomy. Within a topic, templates are taken in order
// and wrap around, so a small bank still yields any count.
func (b *Bank) Generate(r *report.PerformanceReport, count int, now time.Time) []GeneratedQuestion {
	if count <= 0 {
		return []GeneratedQuestion{}
	}
	if r == nil {
		r = report.NewPerformanceReport()
	}

	out := make([]GeneratedQuestion, 0, count)
	cursor := make(map[report.Topic]int)
	stamp := now.UnixMilli()

	emit := func(topic report.Topic) {
		tmpls := b.templates[topic]
		tmpl := tmpls[cursor[topic]%len(tmpls)]
		cursor[topic]++

		q := tmpl.clone()
		q.ID = fmt.Sprintf("%s-%d-%d", tmpl.ID, stamp, len(out))
		out = append(out, q)
	}

	alloc := Allocate(b.taxonomy, r, count)
	for _, s := range b.taxonomy.RankByIncorrect(r) {
		weak := b.taxonomy.WeakTopics(r, s)
		budget := min(alloc[s], r.Incorrect(s), count-len(out))
		for i := range budget {
			emit(weak[i%len(weak)])
		}
	}

	all := b.taxonomy.AllTopics()
	for i := 0; len(out) < count; i++ {
		emit(all[i%len(all)])
	}
	return out
}

func (q GeneratedQuestion) clone() GeneratedQuestion {
	q.Options = slices.Clone(q.Options)
	return q
}
