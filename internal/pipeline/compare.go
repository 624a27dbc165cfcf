package pipeline

import (
	"fmt"
	"math"
	"sort"

	"github.com/FadhilAufa5/kfa-validation-sub001/constants"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/entity"
)

// GroupResult is the comparator's classification of every uploaded connector
// key. Each key lands in exactly one of the two slices.
type GroupResult struct {
	Invalid []*entity.InvalidGroup
	Matched []*entity.MatchedGroup
}

// Compare classifies every key of the uploaded aggregate against the source
// aggregate under the given tolerance. The tolerance boundary is inclusive:
// |uploaded-source| == tolerance still matches.
func Compare(uploaded, source map[string]float64, tolerance float64) GroupResult {
	keys := make([]string, 0, len(uploaded))
	for k := range uploaded {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var res GroupResult
	for _, key := range keys {
		uploadedTotal := uploaded[key]
		sourceTotal, inSource := source[key]

		if !inSource {
			if uploadedTotal == 0 {
				// a zero-total retur the source system never recorded
				res.Matched = append(res.Matched, &entity.MatchedGroup{
					Connector: key,
					Note:      string(constants.NoteReturNotRecorded),
				})
			} else {
				res.Invalid = append(res.Invalid, &entity.InvalidGroup{
					Connector:        key,
					Category:         string(constants.MismatchKeyNotFound),
					ErrorText:        fmt.Sprintf("connector %s not found in source data", key),
					UploadedTotal:    uploadedTotal,
					DiscrepancyValue: uploadedTotal,
				})
			}
			continue
		}

		if uploadedTotal == 0 || sourceTotal == 0 {
			// key exists on both sides but one total is exactly zero
			res.Invalid = append(res.Invalid, &entity.InvalidGroup{
				Connector:        key,
				Category:         string(constants.MismatchMissingValue),
				ErrorText:        fmt.Sprintf("value missing on one side (uploaded %.2f, source %.2f)", uploadedTotal, sourceTotal),
				UploadedTotal:    uploadedTotal,
				SourceTotal:      sourceTotal,
				DiscrepancyValue: uploadedTotal - sourceTotal,
			})
			continue
		}

		difference := uploadedTotal - sourceTotal
		if math.Abs(difference) <= tolerance {
			note := constants.NoteSumMatched
			if difference != 0 {
				note = constants.NoteRounding
			}
			res.Matched = append(res.Matched, &entity.MatchedGroup{
				Connector:     key,
				Note:          string(note),
				UploadedTotal: uploadedTotal,
				SourceTotal:   sourceTotal,
				Difference:    difference,
			})
		} else {
			res.Invalid = append(res.Invalid, &entity.InvalidGroup{
				Connector:        key,
				Category:         string(constants.MismatchDiscrepancy),
				ErrorText:        fmt.Sprintf("difference %.2f exceeds tolerance %.2f", difference, tolerance),
				UploadedTotal:    uploadedTotal,
				SourceTotal:      sourceTotal,
				DiscrepancyValue: difference,
			})
		}
	}
	return res
}
