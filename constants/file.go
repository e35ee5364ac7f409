package constants

import "strings"

// FileFormats holds the allowed file formats for the format field in ImportJob.
var FileFormats = []string{"PDF", "XLSX"}

// AllowedExtensions holds the accepted file extensions for price-list
// ingestion. "json" is the pre-rendered token form of a vendor PDF.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"json": {},
	"xlsx": {},
	"xlsm": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// FormatForExt maps a normalized extension to its job format, defaulting to PDF.
func FormatForExt(ext string) string {
	switch NormalizeExt(ext) {
	case "xlsx", "xlsm":
		return "XLSX"
	default:
		return "PDF"
	}
}
