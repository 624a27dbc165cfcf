// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InvalidGroupsColumns holds the columns for the "invalid_groups" table.
	InvalidGroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "connector", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "error_text", Type: field.TypeString},
		{Name: "uploaded_total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "source_total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "discrepancy_value", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "run_id", Type: field.TypeUUID},
	}
	// InvalidGroupsTable holds the schema information for the "invalid_groups" table.
	InvalidGroupsTable = &schema.Table{
		Name:       "invalid_groups",
		Columns:    InvalidGroupsColumns,
		PrimaryKey: []*schema.Column{InvalidGroupsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invalid_groups_validation_runs_invalid_groups",
				Columns:    []*schema.Column{InvalidGroupsColumns[7]},
				RefColumns: []*schema.Column{ValidationRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invalidgroup_run_id_category",
				Unique:  false,
				Columns: []*schema.Column{InvalidGroupsColumns[7], InvalidGroupsColumns[2]},
			},
			{
				Name:    "invalidgroup_run_id_connector",
				Unique:  false,
				Columns: []*schema.Column{InvalidGroupsColumns[7], InvalidGroupsColumns[1]},
			},
		},
	}
	// InvalidRowsColumns holds the columns for the "invalid_rows" table.
	InvalidRowsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "connector", Type: field.TypeString},
		{Name: "row_index", Type: field.TypeInt},
		{Name: "category", Type: field.TypeString},
		{Name: "error_text", Type: field.TypeString},
		{Name: "uploaded_value", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "run_id", Type: field.TypeUUID},
	}
	// InvalidRowsTable holds the schema information for the "invalid_rows" table.
	InvalidRowsTable = &schema.Table{
		Name:       "invalid_rows",
		Columns:    InvalidRowsColumns,
		PrimaryKey: []*schema.Column{InvalidRowsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invalid_rows_validation_runs_invalid_rows",
				Columns:    []*schema.Column{InvalidRowsColumns[6]},
				RefColumns: []*schema.Column{ValidationRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invalidrow_run_id_connector",
				Unique:  false,
				Columns: []*schema.Column{InvalidRowsColumns[6], InvalidRowsColumns[1]},
			},
		},
	}
	// MatchedGroupsColumns holds the columns for the "matched_groups" table.
	MatchedGroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "connector", Type: field.TypeString},
		{Name: "note", Type: field.TypeString},
		{Name: "uploaded_total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "source_total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "difference", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "run_id", Type: field.TypeUUID},
	}
	// MatchedGroupsTable holds the schema information for the "matched_groups" table.
	MatchedGroupsTable = &schema.Table{
		Name:       "matched_groups",
		Columns:    MatchedGroupsColumns,
		PrimaryKey: []*schema.Column{MatchedGroupsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "matched_groups_validation_runs_matched_groups",
				Columns:    []*schema.Column{MatchedGroupsColumns[6]},
				RefColumns: []*schema.Column{ValidationRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "matchedgroup_run_id_connector",
				Unique:  false,
				Columns: []*schema.Column{MatchedGroupsColumns[6], MatchedGroupsColumns[1]},
			},
		},
	}
	// MatchedRowsColumns holds the columns for the "matched_rows" table.
	MatchedRowsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "connector", Type: field.TypeString},
		{Name: "row_index", Type: field.TypeInt},
		{Name: "note", Type: field.TypeString},
		{Name: "uploaded_value", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "source_total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "run_id", Type: field.TypeUUID},
	}
	// MatchedRowsTable holds the schema information for the "matched_rows" table.
	MatchedRowsTable = &schema.Table{
		Name:       "matched_rows",
		Columns:    MatchedRowsColumns,
		PrimaryKey: []*schema.Column{MatchedRowsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "matched_rows_validation_runs_matched_rows",
				Columns:    []*schema.Column{MatchedRowsColumns[6]},
				RefColumns: []*schema.Column{ValidationRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "matchedrow_run_id_connector",
				Unique:  false,
				Columns: []*schema.Column{MatchedRowsColumns[6], MatchedRowsColumns[1]},
			},
			{
				Name:    "matchedrow_run_id_note",
				Unique:  false,
				Columns: []*schema.Column{MatchedRowsColumns[6], MatchedRowsColumns[3]},
			},
		},
	}
	// StagingRecordsColumns holds the columns for the "staging_records" table.
	StagingRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "document_type", Type: field.TypeString},
		{Name: "document_category", Type: field.TypeString},
		{Name: "header_row", Type: field.TypeInt, Default: 1},
		{Name: "user_id", Type: field.TypeString},
		{Name: "connector", Type: field.TypeString},
		{Name: "sum_value", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(18,2)"}},
		{Name: "branch_code", Type: field.TypeString, Nullable: true},
		{Name: "branch_name", Type: field.TypeString, Nullable: true},
		{Name: "outlet_code", Type: field.TypeString, Nullable: true},
		{Name: "outlet_name", Type: field.TypeString, Nullable: true},
		{Name: "doc_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "row_index", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StagingRecordsTable holds the schema information for the "staging_records" table.
	StagingRecordsTable = &schema.Table{
		Name:       "staging_records",
		Columns:    StagingRecordsColumns,
		PrimaryKey: []*schema.Column{StagingRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stagingrecord_filename_document_type_document_category",
				Unique:  false,
				Columns: []*schema.Column{StagingRecordsColumns[1], StagingRecordsColumns[2], StagingRecordsColumns[3]},
			},
			{
				Name:    "stagingrecord_filename_document_type_document_category_connector",
				Unique:  false,
				Columns: []*schema.Column{StagingRecordsColumns[1], StagingRecordsColumns[2], StagingRecordsColumns[3], StagingRecordsColumns[6]},
			},
		},
	}
	// ValidationRunsColumns holds the columns for the "validation_runs" table.
	ValidationRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "document_type", Type: field.TypeString},
		{Name: "document_category", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "processing"},
		{Name: "score", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "total_records", Type: field.TypeInt, Default: 0},
		{Name: "matched_records", Type: field.TypeInt, Default: 0},
		{Name: "mismatched_records", Type: field.TypeInt, Default: 0},
		{Name: "processing_details", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ValidationRunsTable holds the schema information for the "validation_runs" table.
	ValidationRunsTable = &schema.Table{
		Name:       "validation_runs",
		Columns:    ValidationRunsColumns,
		PrimaryKey: []*schema.Column{ValidationRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "validationrun_user_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ValidationRunsColumns[4], ValidationRunsColumns[5], ValidationRunsColumns[12]},
			},
			{
				Name:    "validationrun_filename_document_type_document_category",
				Unique:  false,
				Columns: []*schema.Column{ValidationRunsColumns[1], ValidationRunsColumns[2], ValidationRunsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InvalidGroupsTable,
		InvalidRowsTable,
		MatchedGroupsTable,
		MatchedRowsTable,
		StagingRecordsTable,
		ValidationRunsTable,
	}
)

func init() {
	InvalidGroupsTable.ForeignKeys[0].RefTable = ValidationRunsTable
	InvalidGroupsTable.Annotation = &entsql.Annotation{
		Table: "invalid_groups",
	}
	InvalidRowsTable.ForeignKeys[0].RefTable = ValidationRunsTable
	InvalidRowsTable.Annotation = &entsql.Annotation{
		Table: "invalid_rows",
	}
	MatchedGroupsTable.ForeignKeys[0].RefTable = ValidationRunsTable
	MatchedGroupsTable.Annotation = &entsql.Annotation{
		Table: "matched_groups",
	}
	MatchedRowsTable.ForeignKeys[0].RefTable = ValidationRunsTable
	MatchedRowsTable.Annotation = &entsql.Annotation{
		Table: "matched_rows",
	}
	StagingRecordsTable.Annotation = &entsql.Annotation{
		Table: "staging_records",
	}
	ValidationRunsTable.Annotation = &entsql.Annotation{
		Table: "validation_runs",
	}
}
