package constants

// Batch sizes for bulk writes and keyed lookups. Insert batches stay well
// below the 65535 bind-parameter limit; the key batch bounds IN-clause size.
const (
	StagingInsertBatchSize = 500
	ClassifyKeyBatchSize   = 500
	GroupInsertBatchSize   = 150
	RowInsertBatchSize     = 100
)
