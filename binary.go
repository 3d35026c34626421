package coerce

import (
	"math"
	"strings"
)

// toUint32 reinterprets the integer part of f as an unsigned 32-bit value,
// truncating toward zero and wrapping modulo 2^32.
func toUint32(f float64) uint32 {
	f = math.Trunc(f)
	f = math.Mod(f, 1<<32)
	if f < 0 {
		f += 1 << 32
	}
	return uint32(f)
}

// uint32Octets returns the big-endian octets of u with leading zero octets
// dropped, keeping at least one.
func uint32Octets(u uint32) []byte {
	buf := []byte{byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)}
	i := 0
	for i < len(buf)-1 && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// octetString renders octets as concatenated zero-padded 8-bit binary groups,
// most-significant bit first.
func octetString(octets []byte) string {
	var builder strings.Builder
	builder.Grow(8 * len(octets))
	for _, octet := range octets {
		for bit := 7; bit >= 0; bit-- {
			if octet&(1<<uint(bit)) != 0 {
				builder.WriteByte('1')
			} else {
				builder.WriteByte('0')
			}
		}
	}
	return builder.String()
}
