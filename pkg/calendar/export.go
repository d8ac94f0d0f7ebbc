package calendar

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/limaJavier/oncall/pkg/model"
	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{"Day Number", "Day Name", "Doctor's Name"}

const exportSheet = "Schedule"

// WriteCSV exports the schedule as one row per day with the computed day
// number, weekday name and assigned doctor.
func WriteCSV(out io.Writer, schedule model.Schedule, names []string, start time.Weekday) error {
	writer := csv.NewWriter(out)

	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for day, doctor := range schedule {
		record := []string{
			strconv.Itoa(day + 1),
			weekdayOf(start, day).String(),
			nameOf(names, doctor),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteXLSX exports the same table as a single-sheet workbook.
func WriteXLSX(out io.Writer, schedule model.Schedule, names []string, start time.Weekday) error {
	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := workbook.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}

	for column, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(column+1, 1)
		if err != nil {
			return err
		}
		if err := workbook.SetCellValue(exportSheet, cell, title); err != nil {
			return err
		}
	}

	for day, doctor := range schedule {
		values := []any{day + 1, weekdayOf(start, day).String(), nameOf(names, doctor)}
		for column, value := range values {
			cell, err := excelize.CoordinatesToCellName(column+1, day+2)
			if err != nil {
				return err
			}
			if err := workbook.SetCellValue(exportSheet, cell, value); err != nil {
				return err
			}
		}
	}

	return workbook.Write(out)
}

func weekdayOf(start time.Weekday, day int) time.Weekday {
	return time.Weekday((int(start) + day) % 7)
}
