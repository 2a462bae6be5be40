package report

// WeakTopics returns the weak topics of a section using the default taxonomy.
func WeakTopics(r *PerformanceReport, s Section) []Topic {
	return DefaultTaxonomy().WeakTopics(r, s)
}

// WeakTopics returns the topics of section s the student struggles with, in
// taxonomy order. A topic is weak when the report marks it Hard or when the
// section has more than WeakIncorrectThreshold incorrect answers. When no
// topic qualifies the full topic list of the section is returned, so a known
// section never yields an empty set. Unknown sections yield nil.
func (t *Taxonomy) WeakTopics(r *PerformanceReport, s Section) []Topic {
	all := t.Topics(s)
	if len(all) == 0 {
		return nil
	}

	manyWrong := r.Incorrect(s) > WeakIncorrectThreshold

	var weak []Topic
	for _, topic := range all {
		if manyWrong || r.Difficulty(s, topic) == DifficultyHard {
			weak = append(weak, topic)
		}
	}
	if len(weak) == 0 {
		return all
	}
	return weak
}

// WeakTopicsBySection computes WeakTopics for every section of the taxonomy.
func (t *Taxonomy) WeakTopicsBySection(r *PerformanceReport) map[Section][]Topic {
	out := make(map[Section][]Topic, len(t.Sections))
	for _, s := range t.SectionNames() {
		out[s] = t.WeakTopics(r, s)
	}
	return out
}
