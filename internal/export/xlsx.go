package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Grading Scale"

type XLSX struct{}

func (XLSX) Export(w io.Writer, sh Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &[]any{"Grade", "Min", "Max", "Percentage"}); err != nil {
		return err
	}
	for i, r := range sh.Rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(xlsxSheet, cell, &[]any{r.Grade.Number(), r.Min, r.Max, r.Percentage}); err != nil {
			return err
		}
	}
	pct, err := f.NewStyle(&excelize.Style{NumFmt: 9}) // 0%
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(xlsxSheet, "D2", fmt.Sprintf("D%d", len(sh.Rows)+1), pct); err != nil {
		return err
	}
	// scale metadata to the right of the table
	meta := [][]any{
		{"Scale", sh.Scale},
		{"Max points", sh.MaxPoints},
		{"Half points", sh.HalfPoints},
	}
	for i, m := range meta {
		if err := f.SetSheetRow(xlsxSheet, fmt.Sprintf("F%d", i+1), &m); err != nil {
			return err
		}
	}
	return f.Write(w)
}
