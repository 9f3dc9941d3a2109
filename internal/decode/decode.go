// Package decode turns raw uploaded bytes into the in-memory forms the
// extraction heuristics operate on: a cell grid for spreadsheets, plain text
// for text-bearing documents. It is the only layer that raises errors; all
// downstream extraction degrades instead of failing.
package decode

import (
	"path/filepath"

	"github.com/scopelens/scopelens/constants"
	"github.com/scopelens/scopelens/internal/common"
)

// Detect resolves the decode format from the declared MIME type and the file
// extension. Unknown combinations surface ErrUnsupportedFormat; this is the
// single dispatch-boundary failure of the pipeline.
func Detect(fileName, mimeType string) (constants.Format, error) {
	if constants.IsSpreadsheetMIME(mimeType) {
		return constants.XLSX, nil
	}
	if mimeType == "application/pdf" {
		return constants.PDF, nil
	}
	if f, ok := constants.MapExtToFormat(filepath.Ext(fileName)); ok {
		return f, nil
	}
	return "", common.NewAppError("UNSUPPORTED_FORMAT",
		"upload Excel (.xlsx, .xls), PDF, or plain-text files", common.ErrUnsupportedFormat)
}
