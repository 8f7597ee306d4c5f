package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"voynich/internal/types"
)

func ExportReportJSON(r *types.Report, writer io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}

	_, err = fmt.Fprintln(writer, string(data))
	return err
}
