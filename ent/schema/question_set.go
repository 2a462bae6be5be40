package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionSet is one batch of practice questions delivered to a student.
type QuestionSet struct {
	ent.Schema
}

func (QuestionSet) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuestionSet) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("source").
			Default("").
			Comment("Score report the set was generated from"),
		field.String("origin").
			Default("").
			Comment("generated, generated+padded, fallback or empty"),
	}
}

func (QuestionSet) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("questions", GeneratedQuestion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (QuestionSet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "sequence"),
	}
}
