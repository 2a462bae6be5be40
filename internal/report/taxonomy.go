package report

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var defaultTaxonomyYAML []byte

// SectionSpec describes one test section and the topics that belong to it.
type SectionSpec struct {
	Name   Section `yaml:"name" json:"name"`
	Kind   string  `yaml:"kind" json:"kind"`
	Topics []Topic `yaml:"topics" json:"topics"`
}

// Taxonomy is the static section/topic vocabulary. It is read-only after
// loading and safe for concurrent use.
type Taxonomy struct {
	Sections []SectionSpec `yaml:"sections" json:"sections"`

	topicSection map[string]Section
	sectionName  map[string]Section
}

var defaultTaxonomy = sync.OnceValue(func() *Taxonomy {
	t, err := ParseTaxonomy(defaultTaxonomyYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded taxonomy: %v", err))
	}
	return t
})

// DefaultTaxonomy returns the embedded taxonomy (digital SAT sections).
func DefaultTaxonomy() *Taxonomy {
	return defaultTaxonomy()
}

// LoadTaxonomy reads a taxonomy YAML file from disk.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy: %w", err)
	}
	return ParseTaxonomy(data)
}

// ParseTaxonomy decodes and validates a taxonomy document.
func ParseTaxonomy(data []byte) (*Taxonomy, error) {
	var t Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode taxonomy: %w", err)
	}
	if err := t.index(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Taxonomy) index() error {
	if len(t.Sections) == 0 {
		return fmt.Errorf("taxonomy has no sections")
	}
	t.topicSection = make(map[string]Section)
	t.sectionName = make(map[string]Section)
	for _, s := range t.Sections {
		if strings.TrimSpace(string(s.Name)) == "" {
			return fmt.Errorf("taxonomy section with empty name")
		}
		key := strings.ToLower(string(s.Name))
		if _, dup := t.sectionName[key]; dup {
			return fmt.Errorf("duplicate section %q", s.Name)
		}
		t.sectionName[key] = s.Name
		if len(s.Topics) == 0 {
			return fmt.Errorf("section %q has no topics", s.Name)
		}
		for _, topic := range s.Topics {
			tk := strings.ToLower(string(topic))
			if prev, dup := t.topicSection[tk]; dup {
				return fmt.Errorf("topic %q listed under both %q and %q", topic, prev, s.Name)
			}
			t.topicSection[tk] = s.Name
		}
	}
	return nil
}

// SectionNames returns the section names in taxonomy order.
func (t *Taxonomy) SectionNames() []Section {
	out := make([]Section, len(t.Sections))
	for i, s := range t.Sections {
		out[i] = s.Name
	}
	return out
}

// Topics returns the default topic list of a section in taxonomy order,
// or nil for an unknown section.
func (t *Taxonomy) Topics(s Section) []Topic {
	for _, spec := range t.Sections {
		if spec.Name == s {
			out := make([]Topic, len(spec.Topics))
			copy(out, spec.Topics)
			return out
		}
	}
	return nil
}

// AllTopics returns every topic in taxonomy order.
func (t *Taxonomy) AllTopics() []Topic {
	var out []Topic
	for _, spec := range t.Sections {
		out = append(out, spec.Topics...)
	}
	return out
}

// SectionOf returns the section a topic belongs to.
func (t *Taxonomy) SectionOf(topic Topic) (Section, bool) {
	s, ok := t.topicSection[strings.ToLower(string(topic))]
	return s, ok
}

// CanonicalSection maps a case-insensitive section name to its canonical
// spelling.
func (t *Taxonomy) CanonicalSection(name string) (Section, bool) {
	s, ok := t.sectionName[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// CanonicalTopic maps a case-insensitive topic name to its canonical spelling.
func (t *Taxonomy) CanonicalTopic(name string) (Topic, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, spec := range t.Sections {
		for _, topic := range spec.Topics {
			if strings.ToLower(string(topic)) == lower {
				return topic, true
			}
		}
	}
	return "", false
}

// RankByIncorrect returns the sections of r that have at least one
// incorrect answer, most incorrect first. Ties keep taxonomy order.
func (t *Taxonomy) RankByIncorrect(r *PerformanceReport) []Section {
	var out []Section
	for _, s := range t.SectionNames() {
		if r.Incorrect(s) > 0 {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return r.Incorrect(out[i]) > r.Incorrect(out[j])
	})
	return out
}
