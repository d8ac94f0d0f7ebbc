package calendar

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/limaJavier/oncall/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestWriteCSV(t *testing.T) {
	// Arrange
	schedule := model.Schedule{0, 1, 0}
	names := []string{"Ahmed", "Lena"}
	var out bytes.Buffer

	// Act
	err := WriteCSV(&out, schedule, names, time.Friday)

	// Assert
	assert.Nil(t, err)
	records, err := csv.NewReader(strings.NewReader(out.String())).ReadAll()
	assert.Nil(t, err)
	assert.Equal(t, [][]string{
		{"Day Number", "Day Name", "Doctor's Name"},
		{"1", "Friday", "Ahmed"},
		{"2", "Saturday", "Lena"},
		{"3", "Sunday", "Ahmed"},
	}, records)
}

func TestWriteXLSX(t *testing.T) {
	// Arrange
	schedule := model.Schedule{0, 1}
	names := []string{"Ahmed", "Lena"}
	var out bytes.Buffer

	// Act
	err := WriteXLSX(&out, schedule, names, time.Sunday)

	// Assert
	assert.Nil(t, err)

	workbook, err := excelize.OpenReader(&out)
	assert.Nil(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows("Schedule")
	assert.Nil(t, err)
	assert.Equal(t, [][]string{
		{"Day Number", "Day Name", "Doctor's Name"},
		{"1", "Sunday", "Ahmed"},
		{"2", "Monday", "Lena"},
	}, rows)
}
