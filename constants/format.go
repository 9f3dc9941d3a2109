package constants

import "strings"

// Format identifies the decode path for an uploaded document.
type Format string

const (
	XLSX Format = "XLSX"
	PDF  Format = "PDF"
	TXT  Format = "TXT"
)

// AllowedExtensions holds the file extensions accepted for project uploads.
var AllowedExtensions = map[string]Format{
	"xlsx": XLSX,
	"xls":  XLSX,
	"pdf":  PDF,
	"txt":  TXT,
}

// MIME fragments that identify spreadsheet uploads regardless of extension.
var spreadsheetMIMEHints = []string{"excel", "spreadsheet"}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat resolves a file extension to its decode format.
func MapExtToFormat(ext string) (Format, bool) {
	f, ok := AllowedExtensions[NormalizeExt(ext)]
	return f, ok
}

// IsSpreadsheetMIME reports whether a declared MIME type looks like a spreadsheet.
func IsSpreadsheetMIME(mimeType string) bool {
	mt := strings.ToLower(mimeType)
	for _, hint := range spreadsheetMIMEHints {
		if strings.Contains(mt, hint) {
			return true
		}
	}
	return false
}
