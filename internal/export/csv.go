package export

import (
	"encoding/csv"
	"io"

	"payment-insights-go/internal/types"
)

// WriteDashboardCSV writes every section of d, each introduced by its name
// and separated by a blank record.
func WriteDashboardCSV(w io.Writer, d types.Dashboard) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	for i, s := range Sections(d) {
		if i > 0 {
			if err := writer.Write([]string{""}); err != nil {
				return err
			}
		}
		if err := writer.Write([]string{s.Name}); err != nil {
			return err
		}
		if err := writer.Write(s.Header); err != nil {
			return err
		}
		if err := writer.WriteAll(s.Rows); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
