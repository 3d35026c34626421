package coerce

import "github.com/pkg/errors"

// Kind identifies a coercion target representation.
type Kind string

const (
	KindBinary   Kind = "binary"
	KindBoolean  Kind = "boolean"
	KindByte     Kind = "byte"
	KindDate     Kind = "date"
	KindDateTime Kind = "date-time"
	KindInteger  Kind = "integer"
	KindNumber   Kind = "number"
	KindString   Kind = "string"
)

// kindDateTimeAlias is accepted wherever KindDateTime is.
const kindDateTimeAlias Kind = "dateTime"

// Kinds lists the canonical coercion kinds.
func Kinds() []Kind {
	return []Kind{
		KindBinary,
		KindBoolean,
		KindByte,
		KindDate,
		KindDateTime,
		KindInteger,
		KindNumber,
		KindString,
	}
}

// Coerce dispatches value to the operation named by kind.
func (c *Coercer) Coerce(kind Kind, v interface{}) Result {
	switch kind {
	case KindBinary:
		return c.Binary(v)
	case KindBoolean:
		return c.Boolean(v)
	case KindByte:
		return c.Byte(v)
	case KindDate:
		return c.Date(v)
	case KindDateTime, kindDateTimeAlias:
		return c.DateTime(v)
	case KindInteger:
		return c.Integer(v)
	case KindNumber:
		return c.Number(v)
	case KindString:
		return c.String(v)
	}
	return failure(errors.Errorf("unknown coercion kind %q", string(kind)))
}

// Coerce dispatches value with the default coercer.
func Coerce(kind Kind, v interface{}) Result {
	return defaultCoercer.Coerce(kind, v)
}
