package coerce

import (
	"encoding/base64"
	"math"
	"reflect"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/viant/coerce/format/datetime"
	"github.com/viant/coerce/format/value"
)

// Coercer converts loosely-typed values into canonical representations.
// The zero options are sufficient; all methods are safe for concurrent use.
type Coercer struct {
	options Options
}

// New creates a coercer with the supplied options.
func New(options ...Option) *Coercer {
	return &Coercer{options: newOptions(options)}
}

var defaultCoercer = New()

// Binary converts value into a string of zero-padded 8-bit binary octets.
// Booleans yield a single octet, numbers their unsigned 32-bit integer part,
// strings and byte sequences one octet per byte.
func (c *Coercer) Binary(v interface{}) Result {
	octets, err := c.octets(v)
	if err != nil {
		return failure(errors.Wrapf(err, "cannot convert %s to binary, expected boolean, number, string or byte sequence", c.describe(v)))
	}
	return success(octetString(octets))
}

// Boolean reports the truthiness of value; it never fails. Zero numbers, NaN,
// empty strings, nil and nil references are false, everything else is true.
func (c *Coercer) Boolean(v interface{}) Result {
	return success(truthy(reflect.ValueOf(v)))
}

// Byte converts value into the base64 encoding of the same octets Binary
// would produce.
func (c *Coercer) Byte(v interface{}) Result {
	octets, err := c.octets(v)
	if err != nil {
		return failure(errors.Wrapf(err, "cannot convert %s to byte, expected boolean, number, string or byte sequence", c.describe(v)))
	}
	return success(base64.StdEncoding.EncodeToString(octets))
}

// Date converts value into a YYYY-MM-DD date string; it accepts whatever
// DateTime accepts and propagates its errors unchanged.
func (c *Coercer) Date(v interface{}) Result {
	result := c.DateTime(v)
	if !result.Ok() {
		return result
	}
	iso := result.Value.(string)
	return success(iso[:len(datetime.DateLayout)])
}

// DateTime converts value into an ISO-8601 UTC timestamp. Date-only strings
// are taken as midnight UTC, numbers as epoch milliseconds.
func (c *Coercer) DateTime(v interface{}) Result {
	rValue := indirect(reflect.ValueOf(v))
	if rValue.IsValid() {
		if ts, ok := rValue.Interface().(time.Time); ok {
			return success(datetime.Format(ts))
		}
		switch rValue.Kind() {
		case reflect.String:
			if ts, err := datetime.Parse(rValue.String(), c.options.TimeLayouts...); err == nil {
				return success(datetime.Format(ts))
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return success(datetime.Format(datetime.FromUnixMilli(float64(rValue.Int()))))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return success(datetime.Format(datetime.FromUnixMilli(float64(rValue.Uint()))))
		case reflect.Float32, reflect.Float64:
			f := rValue.Float()
			if !math.IsNaN(f) && !math.IsInf(f, 0) {
				return success(datetime.Format(datetime.FromUnixMilli(f)))
			}
		}
	}
	return failure(errors.Errorf("cannot convert %s to date-time, expected date-time string, date string, time or number", c.describe(v)))
}

// Integer coerces value to a number and rounds half toward positive infinity.
func (c *Coercer) Integer(v interface{}) Result {
	f, err := c.number(v)
	if err != nil {
		return failure(errors.Wrapf(err, "cannot convert %s to integer, expected a numeric value", c.describe(v)))
	}
	return success(int64(math.Floor(f + 0.5)))
}

// Number coerces value to a finite float64.
func (c *Coercer) Number(v interface{}) Result {
	f, err := c.number(v)
	if err != nil {
		return failure(errors.Wrapf(err, "cannot convert %s to number, expected a numeric value", c.describe(v)))
	}
	return success(f)
}

// String converts value into text: scalars via their standard representation,
// times as ISO-8601, byte sequences as-is, and non-nil composite values as
// compact JSON. Nil fails.
func (c *Coercer) String(v interface{}) Result {
	rValue := indirect(reflect.ValueOf(v))
	if rValue.IsValid() {
		if ts, ok := rValue.Interface().(time.Time); ok {
			return success(datetime.Format(ts))
		}
		switch rValue.Kind() {
		case reflect.Bool:
			return success(strconv.FormatBool(rValue.Bool()))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return success(strconv.FormatInt(rValue.Int(), 10))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return success(strconv.FormatUint(rValue.Uint(), 10))
		case reflect.Float32:
			return success(strconv.FormatFloat(rValue.Float(), 'f', -1, 32))
		case reflect.Float64:
			return success(strconv.FormatFloat(rValue.Float(), 'f', -1, 64))
		case reflect.String:
			return success(rValue.String())
		case reflect.Slice, reflect.Map:
			if rValue.IsNil() {
				break
			}
			if rValue.Kind() == reflect.Slice && rValue.Type().Elem().Kind() == reflect.Uint8 {
				return success(string(rValue.Bytes()))
			}
			if data, err := json.Marshal(rValue.Interface()); err == nil {
				return success(string(data))
			}
		case reflect.Array, reflect.Struct:
			if data, err := json.Marshal(rValue.Interface()); err == nil {
				return success(string(data))
			}
		}
	}
	return failure(errors.Errorf("cannot convert %s to string, expected boolean, number, string, byte sequence, time or object", c.describe(v)))
}

// octets resolves the byte material shared by Binary and Byte.
func (c *Coercer) octets(v interface{}) ([]byte, error) {
	rValue := indirect(reflect.ValueOf(v))
	if !rValue.IsValid() {
		return nil, errors.New("no value")
	}
	switch rValue.Kind() {
	case reflect.Bool:
		if rValue.Bool() {
			return []byte{1}, nil
		}
		return []byte{0}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint32Octets(toUint32(float64(rValue.Int()))), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return uint32Octets(toUint32(float64(rValue.Uint()))), nil
	case reflect.Float32, reflect.Float64:
		f := rValue.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, errors.New("non-finite number")
		}
		return uint32Octets(toUint32(f)), nil
	case reflect.String:
		return []byte(rValue.String()), nil
	case reflect.Slice:
		if rValue.Type().Elem().Kind() == reflect.Uint8 {
			return rValue.Bytes(), nil
		}
	}
	return nil, errors.Errorf("unsupported type %s", rValue.Type())
}

func (c *Coercer) describe(v interface{}) string {
	return value.DescribeWithLimit(v, c.options.DescribeLimit)
}

func truthy(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return false
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.String:
		return v.Len() > 0
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return false
		}
		return truthy(v.Elem())
	case reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return !v.IsNil()
	}
	return true
}

func indirect(v reflect.Value) reflect.Value {
	for (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

// Binary converts value with the default coercer.
func Binary(v interface{}) Result { return defaultCoercer.Binary(v) }

// Boolean converts value with the default coercer.
func Boolean(v interface{}) Result { return defaultCoercer.Boolean(v) }

// Byte converts value with the default coercer.
func Byte(v interface{}) Result { return defaultCoercer.Byte(v) }

// Date converts value with the default coercer.
func Date(v interface{}) Result { return defaultCoercer.Date(v) }

// DateTime converts value with the default coercer.
func DateTime(v interface{}) Result { return defaultCoercer.DateTime(v) }

// Integer converts value with the default coercer.
func Integer(v interface{}) Result { return defaultCoercer.Integer(v) }

// Number converts value with the default coercer.
func Number(v interface{}) Result { return defaultCoercer.Number(v) }

// String converts value with the default coercer.
func String(v interface{}) Result { return defaultCoercer.String(v) }
