package utils

import (
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// AreaRow is one row of an uploaded district/area workbook. Area is empty
// for district-only sheets (the Pathaow upload has no Area column).
type AreaRow struct {
	District string
	Area     string
}

var ErrNoRows = errors.New("no valid rows found in file")

// ParseAreaSheet reads the first sheet of an uploaded workbook. The header
// row names the columns; only "District" and "Area" are used, anything else
// is ignored.
func ParseAreaSheet(r io.Reader) ([]AreaRow, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoRows
	}
	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrNoRows
	}

	districtCol, areaCol := -1, -1
	for i, header := range rows[0] {
		switch strings.TrimSpace(strings.ToLower(header)) {
		case "district":
			districtCol = i
		case "area":
			areaCol = i
		}
	}
	if districtCol < 0 {
		return nil, ErrNoRows
	}

	var parsed []AreaRow
	for _, row := range rows[1:] {
		district := cell(row, districtCol)
		if district == "" {
			continue
		}
		parsed = append(parsed, AreaRow{
			District: district,
			Area:     cell(row, areaCol),
		})
	}
	if len(parsed) == 0 {
		return nil, ErrNoRows
	}
	return parsed, nil
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
