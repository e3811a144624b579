package api

import (
	"bytes"
	"encoding/csv"

	"github.com/tidelog/tidelog/internal/services"
)

func buildExportCSV(table services.ExportTable) ([]byte, error) {
	var output bytes.Buffer
	writer := csv.NewWriter(&output)

	header := make([]string, 0, len(table.Columns))
	for _, column := range table.Columns {
		header = append(header, column.Label)
	}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for index, column := range table.Columns {
			record[index] = column.Value(row)
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}
