// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/scoreprep/ent/generatedquestion"
	"github.com/abhisek/scoreprep/ent/llmrequestevent"
	"github.com/abhisek/scoreprep/ent/questionset"
	"github.com/abhisek/scoreprep/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	generatedquestionFields := schema.GeneratedQuestion{}.Fields()
	_ = generatedquestionFields
	// generatedquestionDescPosition is the schema descriptor for position field.
	generatedquestionDescPosition := generatedquestionFields[0].Descriptor()
	// generatedquestion.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	generatedquestion.PositionValidator = generatedquestionDescPosition.Validators[0].(func(int) error)
	// generatedquestionDescTopic is the schema descriptor for topic field.
	generatedquestionDescTopic := generatedquestionFields[3].Descriptor()
	// generatedquestion.DefaultTopic holds the default value on creation for the topic field.
	generatedquestion.DefaultTopic = generatedquestionDescTopic.Default.(string)
	// generatedquestionDescDifficulty is the schema descriptor for difficulty field.
	generatedquestionDescDifficulty := generatedquestionFields[4].Descriptor()
	// generatedquestion.DefaultDifficulty holds the default value on creation for the difficulty field.
	generatedquestion.DefaultDifficulty = generatedquestionDescDifficulty.Default.(string)
	// generatedquestionDescAnswer is the schema descriptor for answer field.
	generatedquestionDescAnswer := generatedquestionFields[6].Descriptor()
	// generatedquestion.DefaultAnswer holds the default value on creation for the answer field.
	generatedquestion.DefaultAnswer = generatedquestionDescAnswer.Default.(string)
	// generatedquestionDescExplanation is the schema descriptor for explanation field.
	generatedquestionDescExplanation := generatedquestionFields[7].Descriptor()
	// generatedquestion.DefaultExplanation holds the default value on creation for the explanation field.
	generatedquestion.DefaultExplanation = generatedquestionDescExplanation.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescRequestID is the schema descriptor for request_id field.
	llmrequesteventDescRequestID := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultRequestID holds the default value on creation for the request_id field.
	llmrequestevent.DefaultRequestID = llmrequesteventDescRequestID.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorKind is the schema descriptor for error_kind field.
	llmrequesteventDescErrorKind := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorKind holds the default value on creation for the error_kind field.
	llmrequestevent.DefaultErrorKind = llmrequesteventDescErrorKind.Default.(string)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[11].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	questionsetMixin := schema.QuestionSet{}.Mixin()
	questionsetMixinFields0 := questionsetMixin[0].Fields()
	_ = questionsetMixinFields0
	questionsetFields := schema.QuestionSet{}.Fields()
	_ = questionsetFields
	// questionsetDescTimestamp is the schema descriptor for timestamp field.
	questionsetDescTimestamp := questionsetMixinFields0[1].Descriptor()
	// questionset.DefaultTimestamp holds the default value on creation for the timestamp field.
	questionset.DefaultTimestamp = questionsetDescTimestamp.Default.(func() time.Time)
	// questionsetDescUserID is the schema descriptor for user_id field.
	questionsetDescUserID := questionsetFields[1].Descriptor()
	// questionset.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	questionset.UserIDValidator = questionsetDescUserID.Validators[0].(func(string) error)
	// questionsetDescSource is the schema descriptor for source field.
	questionsetDescSource := questionsetFields[2].Descriptor()
	// questionset.DefaultSource holds the default value on creation for the source field.
	questionset.DefaultSource = questionsetDescSource.Default.(string)
	// questionsetDescOrigin is the schema descriptor for origin field.
	questionsetDescOrigin := questionsetFields[3].Descriptor()
	// questionset.DefaultOrigin holds the default value on creation for the origin field.
	questionset.DefaultOrigin = questionsetDescOrigin.Default.(string)
	// questionsetDescID is the schema descriptor for id field.
	questionsetDescID := questionsetFields[0].Descriptor()
	// questionset.IDValidator is a validator for the "id" field. It is called by the builders before save.
	questionset.IDValidator = questionsetDescID.Validators[0].(func(string) error)
}
