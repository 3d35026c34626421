package coerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerce(t *testing.T) {
	testCases := []struct {
		description string
		kind        Kind
		input       interface{}
		expect      interface{}
	}{
		{"binary", KindBinary, true, "00000001"},
		{"boolean", KindBoolean, "x", true},
		{"byte", KindByte, false, "AA=="},
		{"date", KindDate, "2020-01-01T12:30:00.000Z", "2020-01-01"},
		{"date-time", KindDateTime, "2020-01-01", "2020-01-01T00:00:00.000Z"},
		{"dateTime alias", "dateTime", "2020-01-01", "2020-01-01T00:00:00.000Z"},
		{"integer", KindInteger, "4.5", int64(5)},
		{"number", KindNumber, "3.5", 3.5},
		{"string", KindString, 42, "42"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			result := Coerce(testCase.kind, testCase.input)
			assert.True(t, result.Ok(), result.Error)
			assert.Equal(t, testCase.expect, result.Value)
		})
	}

	unknown := Coerce("uuid", 1)
	assert.False(t, unknown.Ok())
	assert.Contains(t, unknown.Error, "uuid")
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	assert.Equal(t, 8, len(kinds))
	for _, kind := range kinds {
		result := Coerce(kind, true)
		assert.NotEqual(t, Result{}, result)
	}
}
