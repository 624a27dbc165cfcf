package constants

import "strings"

// DocumentType selects which source-of-truth table an upload is validated against.
type DocumentType string

const (
	DocTypePurchase DocumentType = "purchase"
	DocTypeSales    DocumentType = "sales"
)

// DocumentTypes holds the allowed values for the document_type field.
var DocumentTypes = []string{
	string(DocTypePurchase),
	string(DocTypeSales),
}

// DocumentCategory distinguishes upload layouts within a document type.
type DocumentCategory string

const (
	DocCategoryRegular DocumentCategory = "regular"
	DocCategoryRetur   DocumentCategory = "retur"
)

// DocumentCategories holds the allowed values for the document_category field.
var DocumentCategories = []string{
	string(DocCategoryRegular),
	string(DocCategoryRetur),
}

// AllowedExtensions holds the accepted file extensions for upload ingestion.
var AllowedExtensions = map[string]struct{}{
	"csv":  {},
	"xls":  {},
	"xlsx": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
