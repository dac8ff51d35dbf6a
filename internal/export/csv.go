package export

import (
	"encoding/csv"
	"io"
	"strconv"
)

type CSV struct{}

func (CSV) Export(w io.Writer, sh Sheet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"grade", "min", "max", "percentage"}); err != nil {
		return err
	}
	for _, r := range sh.Rows {
		rec := []string{
			r.Grade.String(),
			formatFloat(r.Min),
			formatFloat(r.Max),
			formatFloat(r.Percentage),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
