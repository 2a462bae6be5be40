package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GeneratedQuestion is one question of a saved QuestionSet.
type GeneratedQuestion struct {
	ent.Schema
}

func (GeneratedQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.Int("position").
			NonNegative().
			Comment("Order within the set"),
		field.String("question_id"),
		field.Text("text"),
		field.String("topic").
			Default(""),
		field.String("difficulty").
			Default(""),
		field.Strings("options").
			Optional().
			Comment("Answer choices; empty for free response"),
		field.String("answer").
			Default(""),
		field.Text("explanation").
			Default(""),
	}
}

func (GeneratedQuestion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("question_set", QuestionSet.Type).
			Ref("questions").
			Unique().
			Required(),
	}
}

func (GeneratedQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("position").
			Edges("question_set").
			Unique(),
	}
}
