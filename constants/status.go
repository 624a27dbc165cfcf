package constants

// RunStatus is the canonical lifecycle status for rows in validation_runs.
type RunStatus string

// Stable values (store these exact strings in DB).
const (
	RunStatusProcessing RunStatus = "processing" // created, pipeline not yet terminal
	RunStatusCompleted  RunStatus = "completed"  // results persisted
	RunStatusFailed     RunStatus = "failed"     // terminal failure
)

// RunStatuses holds the allowed values for the status field in ValidationRun.
var RunStatuses = []string{
	string(RunStatusProcessing),
	string(RunStatusCompleted),
	string(RunStatusFailed),
}

// MismatchCategory classifies why a connector group failed validation.
type MismatchCategory string

const (
	MismatchKeyNotFound  MismatchCategory = "key_not_found" // connector absent from the source table
	MismatchMissingValue MismatchCategory = "missing_value" // key on both sides but one total is zero
	MismatchDiscrepancy  MismatchCategory = "discrepancy"   // totals differ beyond tolerance
)

// MismatchCategories holds the allowed values for the category field in InvalidGroup.
var MismatchCategories = []string{
	string(MismatchKeyNotFound),
	string(MismatchMissingValue),
	string(MismatchDiscrepancy),
}

// MatchNote classifies how a connector group passed validation.
type MatchNote string

const (
	NoteSumMatched       MatchNote = "sum_matched"        // totals identical
	NoteRounding         MatchNote = "rounding"           // totals differ within tolerance
	NoteReturNotRecorded MatchNote = "retur_not_recorded" // zero upload, key absent from source
)

// MatchNotes holds the allowed values for the note field in MatchedGroup.
var MatchNotes = []string{
	string(NoteSumMatched),
	string(NoteRounding),
	string(NoteReturNotRecorded),
}
