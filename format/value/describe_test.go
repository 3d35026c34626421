package value

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	testCases := []struct {
		description string
		input       interface{}
		expect      string
	}{
		{"nil", nil, "nil"},
		{"string", "abc", `"abc"`},
		{"bytes", []byte("ab"), `"ab"`},
		{"bool", true, "true"},
		{"int", -5, "-5"},
		{"uint", uint16(9), "9"},
		{"float", 2.5, "2.5"},
		{"nan", math.NaN(), "NaN"},
		{"nil pointer", (*int)(nil), "nil"},
		{"map", map[string]interface{}{"a": 1}, `{"a":1}`},
		{"slice", []int{1, 2}, "[1,2]"},
		{"time", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), "2020-01-01T00:00:00Z"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Describe(testCase.input), testCase.description)
	}
}

func TestDescribeWithLimit(t *testing.T) {
	long := strings.Repeat("a", 300)
	rendered := Describe(long)
	assert.Equal(t, DefaultLimit+3, len(rendered))
	assert.True(t, strings.HasSuffix(rendered, "..."))

	assert.Equal(t, `"ab`+"...", DescribeWithLimit("abcdef", 3))
	assert.Equal(t, `"ab"`, DescribeWithLimit("ab", 0))
}
