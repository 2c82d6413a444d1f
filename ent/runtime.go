// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/padhai/ent/doubt"
	"github.com/abhisek/padhai/ent/llmrequestlog"
	"github.com/abhisek/padhai/ent/parameterset"
	"github.com/abhisek/padhai/ent/progressmark"
	"github.com/abhisek/padhai/ent/schema"
	"github.com/abhisek/padhai/ent/studyplan"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	doubtMixin := schema.Doubt{}.Mixin()
	doubtMixinFields0 := doubtMixin[0].Fields()
	_ = doubtMixinFields0
	doubtFields := schema.Doubt{}.Fields()
	_ = doubtFields
	// doubtDescTimestamp is the schema descriptor for timestamp field.
	doubtDescTimestamp := doubtMixinFields0[1].Descriptor()
	// doubt.DefaultTimestamp holds the default value on creation for the timestamp field.
	doubt.DefaultTimestamp = doubtDescTimestamp.Default.(func() time.Time)
	// doubtDescQuestion is the schema descriptor for question field.
	doubtDescQuestion := doubtFields[0].Descriptor()
	// doubt.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	doubt.QuestionValidator = doubtDescQuestion.Validators[0].(func(string) error)
	// doubtDescExtractedText is the schema descriptor for extracted_text field.
	doubtDescExtractedText := doubtFields[1].Descriptor()
	// doubt.DefaultExtractedText holds the default value on creation for the extracted_text field.
	doubt.DefaultExtractedText = doubtDescExtractedText.Default.(string)
	// doubtDescSubject is the schema descriptor for subject field.
	doubtDescSubject := doubtFields[2].Descriptor()
	// doubt.DefaultSubject holds the default value on creation for the subject field.
	doubt.DefaultSubject = doubtDescSubject.Default.(string)
	// doubtDescLanguage is the schema descriptor for language field.
	doubtDescLanguage := doubtFields[3].Descriptor()
	// doubt.DefaultLanguage holds the default value on creation for the language field.
	doubt.DefaultLanguage = doubtDescLanguage.Default.(string)
	// doubtDescModel is the schema descriptor for model field.
	doubtDescModel := doubtFields[5].Descriptor()
	// doubt.DefaultModel holds the default value on creation for the model field.
	doubt.DefaultModel = doubtDescModel.Default.(string)
	llmrequestlogMixin := schema.LLMRequestLog{}.Mixin()
	llmrequestlogMixinFields0 := llmrequestlogMixin[0].Fields()
	_ = llmrequestlogMixinFields0
	llmrequestlogFields := schema.LLMRequestLog{}.Fields()
	_ = llmrequestlogFields
	// llmrequestlogDescTimestamp is the schema descriptor for timestamp field.
	llmrequestlogDescTimestamp := llmrequestlogMixinFields0[1].Descriptor()
	// llmrequestlog.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestlog.DefaultTimestamp = llmrequestlogDescTimestamp.Default.(func() time.Time)
	// llmrequestlogDescInputTokens is the schema descriptor for input_tokens field.
	llmrequestlogDescInputTokens := llmrequestlogFields[3].Descriptor()
	// llmrequestlog.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestlog.DefaultInputTokens = llmrequestlogDescInputTokens.Default.(int)
	// llmrequestlogDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequestlogDescOutputTokens := llmrequestlogFields[4].Descriptor()
	// llmrequestlog.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestlog.DefaultOutputTokens = llmrequestlogDescOutputTokens.Default.(int)
	// llmrequestlogDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequestlogDescLatencyMs := llmrequestlogFields[5].Descriptor()
	// llmrequestlog.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestlog.DefaultLatencyMs = llmrequestlogDescLatencyMs.Default.(int64)
	// llmrequestlogDescErrorMessage is the schema descriptor for error_message field.
	llmrequestlogDescErrorMessage := llmrequestlogFields[7].Descriptor()
	// llmrequestlog.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestlog.DefaultErrorMessage = llmrequestlogDescErrorMessage.Default.(string)
	parametersetFields := schema.ParameterSet{}.Fields()
	_ = parametersetFields
	// parametersetDescUpdatedAt is the schema descriptor for updated_at field.
	parametersetDescUpdatedAt := parametersetFields[1].Descriptor()
	// parameterset.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	parameterset.DefaultUpdatedAt = parametersetDescUpdatedAt.Default.(func() time.Time)
	// parameterset.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	parameterset.UpdateDefaultUpdatedAt = parametersetDescUpdatedAt.UpdateDefault.(func() time.Time)
	progressmarkFields := schema.ProgressMark{}.Fields()
	_ = progressmarkFields
	// progressmarkDescPlanID is the schema descriptor for plan_id field.
	progressmarkDescPlanID := progressmarkFields[0].Descriptor()
	// progressmark.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	progressmark.PlanIDValidator = progressmarkDescPlanID.Validators[0].(func(string) error)
	// progressmarkDescTaskKey is the schema descriptor for task_key field.
	progressmarkDescTaskKey := progressmarkFields[1].Descriptor()
	// progressmark.TaskKeyValidator is a validator for the "task_key" field. It is called by the builders before save.
	progressmark.TaskKeyValidator = progressmarkDescTaskKey.Validators[0].(func(string) error)
	// progressmarkDescMarkedAt is the schema descriptor for marked_at field.
	progressmarkDescMarkedAt := progressmarkFields[2].Descriptor()
	// progressmark.DefaultMarkedAt holds the default value on creation for the marked_at field.
	progressmark.DefaultMarkedAt = progressmarkDescMarkedAt.Default.(func() time.Time)
	studyplanFields := schema.StudyPlan{}.Fields()
	_ = studyplanFields
	// studyplanDescName is the schema descriptor for name field.
	studyplanDescName := studyplanFields[1].Descriptor()
	// studyplan.NameValidator is a validator for the "name" field. It is called by the builders before save.
	studyplan.NameValidator = studyplanDescName.Validators[0].(func(string) error)
	// studyplanDescCreatedAt is the schema descriptor for created_at field.
	studyplanDescCreatedAt := studyplanFields[2].Descriptor()
	// studyplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	studyplan.DefaultCreatedAt = studyplanDescCreatedAt.Default.(func() time.Time)
	// studyplanDescTotalHours is the schema descriptor for total_hours field.
	studyplanDescTotalHours := studyplanFields[4].Descriptor()
	// studyplan.DefaultTotalHours holds the default value on creation for the total_hours field.
	studyplan.DefaultTotalHours = studyplanDescTotalHours.Default.(float64)
	// studyplanDescActive is the schema descriptor for active field.
	studyplanDescActive := studyplanFields[5].Descriptor()
	// studyplan.DefaultActive holds the default value on creation for the active field.
	studyplan.DefaultActive = studyplanDescActive.Default.(bool)
}
