// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/FadhilAufa5/kfa-validation-sub001/db/ent/schema"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/invalidrow"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/matchedgroup"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/matchedrow"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/stagingrecord"
	"github.com/FadhilAufa5/kfa-validation-sub001/gen/ent/validationrun"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	invalidgroupFields := schema.InvalidGroup{}.Fields()
	_ = invalidgroupFields
	// invalidgroupDescConnector is the schema descriptor for connector field.
	invalidgroupDescConnector := invalidgroupFields[1].Descriptor()
	// invalidgroup.ConnectorValidator is a validator for the "connector" field. It is called by the builders before save.
	invalidgroup.ConnectorValidator = invalidgroupDescConnector.Validators[0].(func(string) error)
	// invalidgroupDescCategory is the schema descriptor for category field.
	invalidgroupDescCategory := invalidgroupFields[2].Descriptor()
	// invalidgroup.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	invalidgroup.CategoryValidator = func() func(string) error {
		validators := invalidgroupDescCategory.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(category string) error {
			for _, fn := range fns {
				if err := fn(category); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// invalidgroupDescErrorText is the schema descriptor for error_text field.
	invalidgroupDescErrorText := invalidgroupFields[3].Descriptor()
	// invalidgroup.ErrorTextValidator is a validator for the "error_text" field. It is called by the builders before save.
	invalidgroup.ErrorTextValidator = invalidgroupDescErrorText.Validators[0].(func(string) error)
	invalidrowFields := schema.InvalidRow{}.Fields()
	_ = invalidrowFields
	// invalidrowDescConnector is the schema descriptor for connector field.
	invalidrowDescConnector := invalidrowFields[1].Descriptor()
	// invalidrow.ConnectorValidator is a validator for the "connector" field. It is called by the builders before save.
	invalidrow.ConnectorValidator = invalidrowDescConnector.Validators[0].(func(string) error)
	// invalidrowDescCategory is the schema descriptor for category field.
	invalidrowDescCategory := invalidrowFields[3].Descriptor()
	// invalidrow.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	invalidrow.CategoryValidator = func() func(string) error {
		validators := invalidrowDescCategory.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(category string) error {
			for _, fn := range fns {
				if err := fn(category); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// invalidrowDescErrorText is the schema descriptor for error_text field.
	invalidrowDescErrorText := invalidrowFields[4].Descriptor()
	// invalidrow.ErrorTextValidator is a validator for the "error_text" field. It is called by the builders before save.
	invalidrow.ErrorTextValidator = invalidrowDescErrorText.Validators[0].(func(string) error)
	matchedgroupFields := schema.MatchedGroup{}.Fields()
	_ = matchedgroupFields
	// matchedgroupDescConnector is the schema descriptor for connector field.
	matchedgroupDescConnector := matchedgroupFields[1].Descriptor()
	// matchedgroup.ConnectorValidator is a validator for the "connector" field. It is called by the builders before save.
	matchedgroup.ConnectorValidator = matchedgroupDescConnector.Validators[0].(func(string) error)
	// matchedgroupDescNote is the schema descriptor for note field.
	matchedgroupDescNote := matchedgroupFields[2].Descriptor()
	// matchedgroup.NoteValidator is a validator for the "note" field. It is called by the builders before save.
	matchedgroup.NoteValidator = func() func(string) error {
		validators := matchedgroupDescNote.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(note string) error {
			for _, fn := range fns {
				if err := fn(note); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	matchedrowFields := schema.MatchedRow{}.Fields()
	_ = matchedrowFields
	// matchedrowDescConnector is the schema descriptor for connector field.
	matchedrowDescConnector := matchedrowFields[1].Descriptor()
	// matchedrow.ConnectorValidator is a validator for the "connector" field. It is called by the builders before save.
	matchedrow.ConnectorValidator = matchedrowDescConnector.Validators[0].(func(string) error)
	// matchedrowDescNote is the schema descriptor for note field.
	matchedrowDescNote := matchedrowFields[3].Descriptor()
	// matchedrow.NoteValidator is a validator for the "note" field. It is called by the builders before save.
	matchedrow.NoteValidator = func() func(string) error {
		validators := matchedrowDescNote.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(note string) error {
			for _, fn := range fns {
				if err := fn(note); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	stagingrecordFields := schema.StagingRecord{}.Fields()
	_ = stagingrecordFields
	// stagingrecordDescFilename is the schema descriptor for filename field.
	stagingrecordDescFilename := stagingrecordFields[1].Descriptor()
	// stagingrecord.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	stagingrecord.FilenameValidator = stagingrecordDescFilename.Validators[0].(func(string) error)
	// stagingrecordDescDocumentType is the schema descriptor for document_type field.
	stagingrecordDescDocumentType := stagingrecordFields[2].Descriptor()
	// stagingrecord.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	stagingrecord.DocumentTypeValidator = func() func(string) error {
		validators := stagingrecordDescDocumentType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_type string) error {
			for _, fn := range fns {
				if err := fn(document_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// stagingrecordDescDocumentCategory is the schema descriptor for document_category field.
	stagingrecordDescDocumentCategory := stagingrecordFields[3].Descriptor()
	// stagingrecord.DocumentCategoryValidator is a validator for the "document_category" field. It is called by the builders before save.
	stagingrecord.DocumentCategoryValidator = func() func(string) error {
		validators := stagingrecordDescDocumentCategory.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_category string) error {
			for _, fn := range fns {
				if err := fn(document_category); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// stagingrecordDescHeaderRow is the schema descriptor for header_row field.
	stagingrecordDescHeaderRow := stagingrecordFields[4].Descriptor()
	// stagingrecord.DefaultHeaderRow holds the default value on creation for the header_row field.
	stagingrecord.DefaultHeaderRow = stagingrecordDescHeaderRow.Default.(int)
	// stagingrecordDescUserID is the schema descriptor for user_id field.
	stagingrecordDescUserID := stagingrecordFields[5].Descriptor()
	// stagingrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	stagingrecord.UserIDValidator = stagingrecordDescUserID.Validators[0].(func(string) error)
	// stagingrecordDescConnector is the schema descriptor for connector field.
	stagingrecordDescConnector := stagingrecordFields[6].Descriptor()
	// stagingrecord.ConnectorValidator is a validator for the "connector" field. It is called by the builders before save.
	stagingrecord.ConnectorValidator = stagingrecordDescConnector.Validators[0].(func(string) error)
	// stagingrecordDescCreatedAt is the schema descriptor for created_at field.
	stagingrecordDescCreatedAt := stagingrecordFields[14].Descriptor()
	// stagingrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	stagingrecord.DefaultCreatedAt = stagingrecordDescCreatedAt.Default.(func() time.Time)
	// stagingrecordDescID is the schema descriptor for id field.
	stagingrecordDescID := stagingrecordFields[0].Descriptor()
	// stagingrecord.DefaultID holds the default value on creation for the id field.
	stagingrecord.DefaultID = stagingrecordDescID.Default.(func() uuid.UUID)
	validationrunFields := schema.ValidationRun{}.Fields()
	_ = validationrunFields
	// validationrunDescFilename is the schema descriptor for filename field.
	validationrunDescFilename := validationrunFields[1].Descriptor()
	// validationrun.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	validationrun.FilenameValidator = validationrunDescFilename.Validators[0].(func(string) error)
	// validationrunDescDocumentType is the schema descriptor for document_type field.
	validationrunDescDocumentType := validationrunFields[2].Descriptor()
	// validationrun.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	validationrun.DocumentTypeValidator = func() func(string) error {
		validators := validationrunDescDocumentType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_type string) error {
			for _, fn := range fns {
				if err := fn(document_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// validationrunDescDocumentCategory is the schema descriptor for document_category field.
	validationrunDescDocumentCategory := validationrunFields[3].Descriptor()
	// validationrun.DocumentCategoryValidator is a validator for the "document_category" field. It is called by the builders before save.
	validationrun.DocumentCategoryValidator = func() func(string) error {
		validators := validationrunDescDocumentCategory.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_category string) error {
			for _, fn := range fns {
				if err := fn(document_category); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// validationrunDescUserID is the schema descriptor for user_id field.
	validationrunDescUserID := validationrunFields[4].Descriptor()
	// validationrun.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	validationrun.UserIDValidator = validationrunDescUserID.Validators[0].(func(string) error)
	// validationrunDescStatus is the schema descriptor for status field.
	validationrunDescStatus := validationrunFields[5].Descriptor()
	// validationrun.DefaultStatus holds the default value on creation for the status field.
	validationrun.DefaultStatus = validationrunDescStatus.Default.(string)
	// validationrun.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	validationrun.StatusValidator = validationrunDescStatus.Validators[0].(func(string) error)
	// validationrunDescScore is the schema descriptor for score field.
	validationrunDescScore := validationrunFields[6].Descriptor()
	// validationrun.DefaultScore holds the default value on creation for the score field.
	validationrun.DefaultScore = validationrunDescScore.Default.(float64)
	// validationrunDescTotalRecords is the schema descriptor for total_records field.
	validationrunDescTotalRecords := validationrunFields[7].Descriptor()
	// validationrun.DefaultTotalRecords holds the default value on creation for the total_records field.
	validationrun.DefaultTotalRecords = validationrunDescTotalRecords.Default.(int)
	// validationrunDescMatchedRecords is the schema descriptor for matched_records field.
	validationrunDescMatchedRecords := validationrunFields[8].Descriptor()
	// validationrun.DefaultMatchedRecords holds the default value on creation for the matched_records field.
	validationrun.DefaultMatchedRecords = validationrunDescMatchedRecords.Default.(int)
	// validationrunDescMismatchedRecords is the schema descriptor for mismatched_records field.
	validationrunDescMismatchedRecords := validationrunFields[9].Descriptor()
	// validationrun.DefaultMismatchedRecords holds the default value on creation for the mismatched_records field.
	validationrun.DefaultMismatchedRecords = validationrunDescMismatchedRecords.Default.(int)
	// validationrunDescCreatedAt is the schema descriptor for created_at field.
	validationrunDescCreatedAt := validationrunFields[12].Descriptor()
	// validationrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	validationrun.DefaultCreatedAt = validationrunDescCreatedAt.Default.(func() time.Time)
	// validationrunDescUpdatedAt is the schema descriptor for updated_at field.
	validationrunDescUpdatedAt := validationrunFields[13].Descriptor()
	// validationrun.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	validationrun.DefaultUpdatedAt = validationrunDescUpdatedAt.Default.(func() time.Time)
	// validationrun.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	validationrun.UpdateDefaultUpdatedAt = validationrunDescUpdatedAt.UpdateDefault.(func() time.Time)
	// validationrunDescID is the schema descriptor for id field.
	validationrunDescID := validationrunFields[0].Descriptor()
	// validationrun.DefaultID holds the default value on creation for the id field.
	validationrun.DefaultID = validationrunDescID.Default.(func() uuid.UUID)
}
