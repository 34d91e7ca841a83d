package document

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	domainErrors "github.com/adolfokaiser/precios-api/internal/domain/errors"
)

// ExcelExtractor reads cell values from the active sheet of an .xlsx
// workbook held in memory.
type ExcelExtractor struct{}

// NewExcelExtractor constructs ExcelExtractor.
func NewExcelExtractor() *ExcelExtractor {
	return &ExcelExtractor{}
}

// Extract returns every non-empty cell of the active sheet as a string.
// Decoder failures are wrapped as ErrInvalidFile with the underlying detail.
func (e *ExcelExtractor) Extract(data []byte) ([]string, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid excel: %v", domainErrors.ErrInvalidFile, err)
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(workbook.GetActiveSheetIndex())
	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid excel: %v", domainErrors.ErrInvalidFile, err)
	}

	var cells []string
	for _, row := range rows {
		for _, cell := range row {
			if cell != "" {
				cells = append(cells, cell)
			}
		}
	}
	return cells, nil
}
