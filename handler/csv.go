package handler

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ONSdigital/dp-statxplore-csv-exporter/cube"
)

// writeTableCSV renders a pivoted table as CSV: one header record naming the
// row index fields, any geography code columns and the value columns, then
// one record per row. It returns the number of data rows written.
func writeTableCSV(w io.Writer, t *cube.Table) (int32, error) {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(t.RowFields)+len(t.CodeFields)+len(t.Columns))
	header = append(header, t.RowFields...)
	header = append(header, t.CodeFields...)
	header = append(header, t.Columns...)
	if err := cw.Write(header); err != nil {
		return 0, fmt.Errorf("failed to write csv header: %w", err)
	}

	record := make([]string, 0, len(header))
	for _, row := range t.Rows {
		record = record[:0]
		record = append(record, row.Labels...)
		record = append(record, row.Codes...)
		for _, v := range row.Values {
			record = append(record, strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := cw.Write(record); err != nil {
			return 0, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush csv writer: %w", err)
	}

	return int32(len(t.Rows)), nil
}
