package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPatterns(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		isDateTime  bool
		isDate      bool
	}{
		{"date only", "2020-01-01", false, true},
		{"full iso", "2020-01-01T12:30:00.000Z", true, false},
		{"zoneless", "2020-01-01 12:30:00", true, false},
		{"offset with colon", "2020-01-01T12:30:00+02:00", true, false},
		{"offset without colon", "2020-01-01T12:30:00+0200", true, false},
		{"word", "tomorrow", false, false},
		{"partial", "2020-13", false, false},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.isDateTime, IsDateTime(testCase.input), testCase.description)
		assert.Equal(t, testCase.isDate, IsDate(testCase.input), testCase.description)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expect      time.Time
	}{
		{"date yields midnight UTC", "2020-01-01", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"full iso", "2020-01-01T12:30:00.000Z", time.Date(2020, 1, 1, 12, 30, 0, 0, time.UTC)},
		{"zoneless taken as UTC", "2020-01-01 12:30:00", time.Date(2020, 1, 1, 12, 30, 0, 0, time.UTC)},
		{"fractional seconds", "2020-01-01T12:30:00.25Z", time.Date(2020, 1, 1, 12, 30, 0, 250000000, time.UTC)},
	}
	for _, testCase := range testCases {
		actual, err := Parse(testCase.input)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.True(t, testCase.expect.Equal(actual), testCase.description)
	}

	_, err := Parse("tomorrow")
	assert.NotNil(t, err)

	actual, err := Parse("31-12-2020", "02-01-2006")
	assert.Nil(t, err)
	assert.True(t, time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC).Equal(actual))
}

func TestFormat(t *testing.T) {
	ts := time.Date(2020, 1, 1, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, "2020-01-01T12:30:00.000Z", Format(ts))
	assert.Equal(t, "2020-01-01", FormatDate(ts))

	warsaw := time.FixedZone("CET", 3600)
	assert.Equal(t, "2020-01-01T11:30:00.000Z", Format(time.Date(2020, 1, 1, 12, 30, 0, 0, warsaw)))
}

func TestFromUnixMilli(t *testing.T) {
	assert.Equal(t, "1970-01-01T00:00:00.000Z", Format(FromUnixMilli(0)))
	assert.Equal(t, "2020-01-01T00:00:00.000Z", Format(FromUnixMilli(1577836800000)))
	assert.Equal(t, "1970-01-01T00:00:00.001Z", Format(FromUnixMilli(1.9)))
}
