// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DoubtsColumns holds the columns for the "doubts" table.
	DoubtsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "question", Type: field.TypeString},
		{Name: "extracted_text", Type: field.TypeString, Default: ""},
		{Name: "subject", Type: field.TypeString, Default: ""},
		{Name: "language", Type: field.TypeString, Default: "english"},
		{Name: "solution", Type: field.TypeJSON},
		{Name: "model", Type: field.TypeString, Default: ""},
	}
	// DoubtsTable holds the schema information for the "doubts" table.
	DoubtsTable = &schema.Table{
		Name:       "doubts",
		Columns:    DoubtsColumns,
		PrimaryKey: []*schema.Column{DoubtsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "doubt_sequence",
				Unique:  false,
				Columns: []*schema.Column{DoubtsColumns[1]},
			},
			{
				Name:    "doubt_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DoubtsColumns[2]},
			},
			{
				Name:    "doubt_subject",
				Unique:  false,
				Columns: []*schema.Column{DoubtsColumns[5]},
			},
		},
	}
	// LlmRequestLogsColumns holds the columns for the "llm_request_logs" table.
	LlmRequestLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestLogsTable holds the schema information for the "llm_request_logs" table.
	LlmRequestLogsTable = &schema.Table{
		Name:       "llm_request_logs",
		Columns:    LlmRequestLogsColumns,
		PrimaryKey: []*schema.Column{LlmRequestLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestlog_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestLogsColumns[1]},
			},
			{
				Name:    "llmrequestlog_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestLogsColumns[2]},
			},
			{
				Name:    "llmrequestlog_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestLogsColumns[3]},
			},
			{
				Name:    "llmrequestlog_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestLogsColumns[5]},
			},
			{
				Name:    "llmrequestlog_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestLogsColumns[9]},
			},
		},
	}
	// ParameterSetsColumns holds the columns for the "parameter_sets" table.
	ParameterSetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "parameters", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ParameterSetsTable holds the schema information for the "parameter_sets" table.
	ParameterSetsTable = &schema.Table{
		Name:       "parameter_sets",
		Columns:    ParameterSetsColumns,
		PrimaryKey: []*schema.Column{ParameterSetsColumns[0]},
	}
	// ProgressMarksColumns holds the columns for the "progress_marks" table.
	ProgressMarksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "task_key", Type: field.TypeString},
		{Name: "marked_at", Type: field.TypeTime},
	}
	// ProgressMarksTable holds the schema information for the "progress_marks" table.
	ProgressMarksTable = &schema.Table{
		Name:       "progress_marks",
		Columns:    ProgressMarksColumns,
		PrimaryKey: []*schema.Column{ProgressMarksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressmark_plan_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressMarksColumns[1]},
			},
			{
				Name:    "progressmark_plan_id_task_key",
				Unique:  true,
				Columns: []*schema.Column{ProgressMarksColumns[1], ProgressMarksColumns[2]},
			},
		},
	}
	// StudyPlansColumns holds the columns for the "study_plans" table.
	StudyPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document", Type: field.TypeJSON},
		{Name: "total_hours", Type: field.TypeFloat64, Default: 0},
		{Name: "active", Type: field.TypeBool, Default: false},
	}
	// StudyPlansTable holds the schema information for the "study_plans" table.
	StudyPlansTable = &schema.Table{
		Name:       "study_plans",
		Columns:    StudyPlansColumns,
		PrimaryKey: []*schema.Column{StudyPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studyplan_plan_id",
				Unique:  false,
				Columns: []*schema.Column{StudyPlansColumns[1]},
			},
			{
				Name:    "studyplan_active",
				Unique:  false,
				Columns: []*schema.Column{StudyPlansColumns[6]},
			},
			{
				Name:    "studyplan_created_at",
				Unique:  false,
				Columns: []*schema.Column{StudyPlansColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DoubtsTable,
		LlmRequestLogsTable,
		ParameterSetsTable,
		ProgressMarksTable,
		StudyPlansTable,
	}
)

func init() {
}
