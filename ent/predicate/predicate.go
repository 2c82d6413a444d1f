// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Doubt is the predicate function for doubt builders.
type Doubt func(*sql.Selector)

// LLMRequestLog is the predicate function for llmrequestlog builders.
type LLMRequestLog func(*sql.Selector)

// ParameterSet is the predicate function for parameterset builders.
type ParameterSet func(*sql.Selector)

// ProgressMark is the predicate function for progressmark builders.
type ProgressMark func(*sql.Selector)

// StudyPlan is the predicate function for studyplan builders.
type StudyPlan func(*sql.Selector)
