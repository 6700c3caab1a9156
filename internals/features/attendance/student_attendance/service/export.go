package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"lms_backend/internals/helpers/dbtime"
)

const RecapSheetName = "Rekap Kehadiran"

var recapHeaders = []string{"No", "User ID", "Tanggal", "Section", "Masuk", "Pulang", "Istirahat", "Status", "Catatan"}

// BuildRecapWorkbook membuat file xlsx rekap kehadiran.
func BuildRecapWorkbook(items []ManagementItem) (*bytes.Buffer, error) {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(file.GetActiveSheetIndex())
	if err := file.SetSheetName(sheet, RecapSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	sheet = RecapSheetName

	for i, header := range recapHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = file.SetCellValue(sheet, cell, header)
	}

	for index, it := range items {
		row := index + 2
		blank := ""
		if it.BlankTime != nil {
			blank = BlankTimeLabel(*it.BlankTime)
		}
		values := []any{
			index + 1,
			it.UserID.String(),
			it.TrainingDate.Format(dbtime.DateLayout),
			it.SectionName,
			it.StartTime.String(),
			it.EndTime.String(),
			blank,
			it.StatusDispName,
			it.Note,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = file.SetCellValue(sheet, cell, v)
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buffer, nil
}
