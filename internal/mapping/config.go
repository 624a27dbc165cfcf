package mapping

import (
	"github.com/FadhilAufa5/kfa-validation-sub001/constants"
)

// DocumentConfig declares, for one document type + category, which source
// table to validate against and which columns carry the connector key and the
// summed amount. Column pairs are ordered [uploaded, source].
type DocumentConfig struct {
	SourceTable      string    `json:"source_table"`
	ConnectorColumns []string  `json:"connector_columns"`
	SumColumns       []string  `json:"sum_columns"`
	Tolerance        *float64  `json:"tolerance,omitempty"`
	MetadataColumns  MetaPairs `json:"metadata_columns,omitempty"`
}

// MetaPairs maps optional staging metadata fields to uploaded column names.
type MetaPairs struct {
	BranchCode string `json:"branch_code,omitempty"`
	BranchName string `json:"branch_name,omitempty"`
	OutletCode string `json:"outlet_code,omitempty"`
	OutletName string `json:"outlet_name,omitempty"`
	DocDate    string `json:"doc_date,omitempty"`
}

type configKey struct {
	docType  string
	category string
}

// builtinConfigs is the static mapping table. New document types are added
// here (or via MAPPING_FILE), never by new code paths.
var builtinConfigs = map[configKey]DocumentConfig{
	{string(constants.DocTypePurchase), string(constants.DocCategoryRegular)}: {
		SourceTable:      "purchases_source",
		ConnectorColumns: []string{"no_faktur", "invoice_number"},
		SumColumns:       []string{"total_pembelian", "purchase_total"},
		MetadataColumns: MetaPairs{
			BranchCode: "kode_cabang",
			BranchName: "nama_cabang",
			OutletCode: "kode_outlet",
			OutletName: "nama_outlet",
			DocDate:    "tanggal",
		},
	},
	{string(constants.DocTypePurchase), string(constants.DocCategoryRetur)}: {
		SourceTable:      "purchases_source",
		ConnectorColumns: []string{"no_retur", "return_number"},
		SumColumns:       []string{"total_retur", "return_total"},
		MetadataColumns: MetaPairs{
			BranchCode: "kode_cabang",
			BranchName: "nama_cabang",
			DocDate:    "tanggal",
		},
	},
	{string(constants.DocTypeSales), string(constants.DocCategoryRegular)}: {
		SourceTable:      "sales_source",
		ConnectorColumns: []string{"no_transaksi", "transaction_number"},
		SumColumns:       []string{"total_penjualan", "sales_total"},
		MetadataColumns: MetaPairs{
			BranchCode: "kode_cabang",
			BranchName: "nama_cabang",
			OutletCode: "kode_outlet",
			OutletName: "nama_outlet",
			DocDate:    "tanggal",
		},
	},
	{string(constants.DocTypeSales), string(constants.DocCategoryRetur)}: {
		SourceTable:      "sales_source",
		ConnectorColumns: []string{"no_retur", "return_number"},
		SumColumns:       []string{"total_retur", "return_total"},
		MetadataColumns: MetaPairs{
			BranchCode: "kode_cabang",
			BranchName: "nama_cabang",
			DocDate:    "tanggal",
		},
	},
}
