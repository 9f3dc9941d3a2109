package decode

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/scopelens/scopelens/internal/common"
	"github.com/scopelens/scopelens/internal/grid"
)

// Workbook decodes the first worksheet of an XLSX workbook into a cell grid.
// Corrupt or encrypted workbooks surface as a decode failure.
func Workbook(data []byte) (grid.Grid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, decodeError("failed to parse Excel file", err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return grid.Grid{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, decodeError("failed to read worksheet rows", err)
	}
	return grid.FromStrings(rows), nil
}

// decodeError keeps ErrDecodeFailed matchable in the chain while carrying the
// underlying parser error text.
func decodeError(msg string, err error) error {
	return common.NewAppError("DECODE_FAILED", msg, fmt.Errorf("%w: %v", common.ErrDecodeFailed, err))
}
