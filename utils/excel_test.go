package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, workbook.SetSheetRow(sheet, cellRef, &row))
	}
	buf, err := workbook.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseAreaSheet(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"District", "Area"},
		{"Dhaka", "Dhanmondi"},
		{"Dhaka", "Mirpur"},
		{"", "Orphan"},
		{"Chattogram", ""},
	})

	rows, err := ParseAreaSheet(buf)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, AreaRow{District: "Dhaka", Area: "Dhanmondi"}, rows[0])
	assert.Equal(t, AreaRow{District: "Dhaka", Area: "Mirpur"}, rows[1])
	assert.Equal(t, AreaRow{District: "Chattogram", Area: ""}, rows[2])
}

func TestParseAreaSheetDistrictOnly(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"District"},
		{"Sylhet"},
		{"Khulna"},
	})

	rows, err := ParseAreaSheet(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Sylhet", rows[0].District)
	assert.Empty(t, rows[0].Area)
}

func TestParseAreaSheetNoDistrictColumn(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Region", "Zone"},
		{"Dhaka", "Dhanmondi"},
	})

	_, err := ParseAreaSheet(buf)
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestParseAreaSheetEmpty(t *testing.T) {
	buf := buildWorkbook(t, [][]any{{"District", "Area"}})

	_, err := ParseAreaSheet(buf)
	assert.ErrorIs(t, err, ErrNoRows)
}
