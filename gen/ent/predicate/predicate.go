// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// InvalidGroup is the predicate function for invalidgroup builders.
type InvalidGroup func(*sql.Selector)

// InvalidRow is the predicate function for invalidrow builders.
type InvalidRow func(*sql.Selector)

// MatchedGroup is the predicate function for matchedgroup builders.
type MatchedGroup func(*sql.Selector)

// MatchedRow is the predicate function for matchedrow builders.
type MatchedRow func(*sql.Selector)

// StagingRecord is the predicate function for stagingrecord builders.
type StagingRecord func(*sql.Selector)

// ValidationRun is the predicate function for validationrun builders.
type ValidationRun func(*sql.Selector)
