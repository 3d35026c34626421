package value

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
)

// DefaultLimit caps the rendered form of a described value.
const DefaultLimit = 128

// Describe renders an arbitrary value into human-readable text suitable for
// error messages, truncated to DefaultLimit characters.
func Describe(v interface{}) string {
	return DescribeWithLimit(v, DefaultLimit)
}

// DescribeWithLimit renders v, truncating the result to limit characters.
// A non-positive limit falls back to DefaultLimit.
func DescribeWithLimit(v interface{}, limit int) string {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return truncate(describe(v), limit)
}

func describe(v interface{}) string {
	if v == nil {
		return "nil"
	}
	switch actual := v.(type) {
	case string:
		return strconv.Quote(actual)
	case []byte:
		return strconv.Quote(string(actual))
	case bool:
		return strconv.FormatBool(actual)
	case time.Time:
		return actual.Format(time.RFC3339)
	case error:
		return strconv.Quote(actual.Error())
	}

	rValue := reflect.ValueOf(v)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rValue.IsNil() {
			return "nil"
		}
		return describe(rValue.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rValue.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rValue.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rValue.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rValue.Float(), 'f', -1, 64)
	case reflect.String:
		return strconv.Quote(rValue.String())
	case reflect.Bool:
		return strconv.FormatBool(rValue.Bool())
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		if data, err := json.Marshal(v); err == nil {
			return string(data)
		}
	}
	return fmt.Sprintf("%v", v)
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
