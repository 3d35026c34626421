package coerce

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// maxUnwrapDepth bounds recursive unwrapping of single-element sequences.
const maxUnwrapDepth = 10

// asNumber applies loose numeric coercion: booleans become 0/1, strings are
// trimmed and parsed (empty string is 0), times become epoch milliseconds and
// a single-element sequence coerces to its element.
func asNumber(v reflect.Value, depth int) (float64, error) {
	if depth > maxUnwrapDepth {
		return 0, errors.New("sequence nesting too deep")
	}
	v = indirect(v)
	if !v.IsValid() {
		return 0, errors.New("no value")
	}
	if ts, ok := v.Interface().(time.Time); ok {
		return float64(ts.UnixMilli()), nil
	}
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.String:
		text := strings.TrimSpace(v.String())
		if text == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, errors.Errorf("unparsable number %q", v.String())
		}
		return f, nil
	case reflect.Slice, reflect.Array:
		switch v.Len() {
		case 0:
			return 0, nil
		case 1:
			return asNumber(v.Index(0), depth+1)
		}
		return 0, errors.Errorf("sequence of %d elements", v.Len())
	}
	return 0, errors.Errorf("unsupported type %s", v.Type())
}

// number coerces and rejects non-finite results.
func (c *Coercer) number(v interface{}) (float64, error) {
	f, err := asNumber(reflect.ValueOf(v), 0)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("non-finite number")
	}
	return f, nil
}
