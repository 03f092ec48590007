package patient

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// RequiredColumns lists the CSV columns every patient data file must have.
var RequiredColumns = []string{
	"name",
	"age",
	"gender",
	"attendees",
	"date_of_diagnosis",
	"cancer_type",
	"cancer_stage",
	"cancer_grade",
	"image_path",
}

// MissingColumnsError reports required columns absent from a CSV header.
// The whole file is rejected before any record is read.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Columns, ", ")
}

// LoadCSV reads patient records from a CSV file. The first row must be a
// header naming at least the required columns; extra columns are ignored.
// Rows shorter than the header are padded with empty strings. Row order
// is preserved.
func LoadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening CSV file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV file: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV file %s has no header row", path)
	}

	header := rows[0]
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	cell := func(row []string, col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, Record{
			Name:            cell(row, "name"),
			Age:             cell(row, "age"),
			Gender:          cell(row, "gender"),
			Attendees:       cell(row, "attendees"),
			DateOfDiagnosis: cell(row, "date_of_diagnosis"),
			CancerType:      cell(row, "cancer_type"),
			CancerStage:     cell(row, "cancer_stage"),
			CancerGrade:     cell(row, "cancer_grade"),
			ImagePath:       cell(row, "image_path"),
		})
	}
	return records, nil
}
