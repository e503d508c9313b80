// Package export writes report data to CSV and XLSX.
package export

import (
	"encoding/csv"
	"io"
)

// WriteCSV writes an optional header row followed by rows as UTF-8 CSV.
func WriteCSV(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if len(headers) > 0 {
		if err := cw.Write(headers); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
