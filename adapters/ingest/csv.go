package ingest

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"guardrails/domain/dataset"
	"guardrails/internal/errors"
)

// DecodeCSV reads CSV content into a typed dataset. The first record is
// the header. Ragged rows are rejected; the analysis core never sees a
// length-inconsistent dataset.
func DecodeCSV(r io.Reader) (*dataset.Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.WithCode(errors.CodeDatasetInvalid, errors.Wrap(err, "failed to parse CSV"))
	}
	if len(records) == 0 {
		return nil, errors.DatasetInvalid("CSV file is empty")
	}

	return buildDataset(records[0], records[1:]), nil
}

// Decode dispatches on the file extension to the CSV or Excel decoder
func Decode(filename string, r io.Reader) (*dataset.Dataset, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return DecodeCSV(r)
	case ".xlsx", ".xls":
		return DecodeExcel(r)
	}
	return nil, errors.New(errors.CodeUnsupportedFormat, "unsupported file type: "+filepath.Ext(filename))
}
