// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GeneratedQuestionsColumns holds the columns for the "generated_questions" table.
	GeneratedQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeString},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "answer", Type: field.TypeString, Default: ""},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "question_set_questions", Type: field.TypeString},
	}
	// GeneratedQuestionsTable holds the schema information for the "generated_questions" table.
	GeneratedQuestionsTable = &schema.Table{
		Name:       "generated_questions",
		Columns:    GeneratedQuestionsColumns,
		PrimaryKey: []*schema.Column{GeneratedQuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "generated_questions_question_sets_questions",
				Columns:    []*schema.Column{GeneratedQuestionsColumns[9]},
				RefColumns: []*schema.Column{QuestionSetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "generatedquestion_position_question_set_questions",
				Unique:  true,
				Columns: []*schema.Column{GeneratedQuestionsColumns[1], GeneratedQuestionsColumns[9]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeString, Default: ""},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_kind", Type: field.TypeString, Default: ""},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[6]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[10]},
			},
			{
				Name:    "llmrequestevent_request_id",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
		},
	}
	// QuestionSetsColumns holds the columns for the "question_sets" table.
	QuestionSetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "source", Type: field.TypeString, Default: ""},
		{Name: "origin", Type: field.TypeString, Default: ""},
	}
	// QuestionSetsTable holds the schema information for the "question_sets" table.
	QuestionSetsTable = &schema.Table{
		Name:       "question_sets",
		Columns:    QuestionSetsColumns,
		PrimaryKey: []*schema.Column{QuestionSetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionset_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuestionSetsColumns[1]},
			},
			{
				Name:    "questionset_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuestionSetsColumns[2]},
			},
			{
				Name:    "questionset_user_id_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuestionSetsColumns[3], QuestionSetsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GeneratedQuestionsTable,
		LlmRequestEventsTable,
		QuestionSetsTable,
	}
)

func init() {
	GeneratedQuestionsTable.ForeignKeys[0].RefTable = QuestionSetsTable
}
