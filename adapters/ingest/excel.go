package ingest

import (
	"io"

	"github.com/xuri/excelize/v2"

	"guardrails/domain/dataset"
	"guardrails/internal/errors"
)

// DecodeExcel reads the first sheet of an Excel workbook into a typed
// dataset. The first row is the header; excelize trims trailing empty
// cells, so short rows are padded with missing markers downstream.
func DecodeExcel(r io.Reader) (*dataset.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.WithCode(errors.CodeDatasetInvalid, errors.Wrap(err, "failed to open Excel file"))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.DatasetInvalid("Excel workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.WithCode(errors.CodeDatasetInvalid, errors.Wrapf(err, "failed to read sheet %q", sheets[0]))
	}
	if len(rows) == 0 {
		return nil, errors.DatasetInvalid("Excel sheet is empty")
	}

	return buildDataset(rows[0], rows[1:]), nil
}
