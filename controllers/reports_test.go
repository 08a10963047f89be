package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRange(t *testing.T) {
	start, end, err := reportRange("2024-10-01", "2024-10-05")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 10, 5, 23, 59, 59, 999999999, time.UTC), end)
}

func TestReportRangeSingleDay(t *testing.T) {
	start, end, err := reportRange("2024-10-01", "2024-10-01")
	require.NoError(t, err)
	assert.True(t, end.After(start))
	assert.Equal(t, start.Day(), end.Day())
}

func TestReportRangeInvalid(t *testing.T) {
	_, _, err := reportRange("01-10-2024", "2024-10-05")
	assert.Error(t, err)

	_, _, err = reportRange("2024-10-01", "yesterday")
	assert.Error(t, err)

	_, _, err = reportRange("2024-10-05", "2024-10-01")
	assert.Error(t, err)
}
