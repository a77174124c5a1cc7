package styles

import (
	"math"
	"strconv"
)

// ClassPrefix prefixes every generated class name.
const ClassPrefix = "css-"

// Counter is the identifier allocator threaded through generators. Each call
// to Next mints one identifier.
type Counter uint64

// Next returns the current value and advances the counter.
// Advancing past the largest representable value panics with ErrCounterOverflow.
func (c *Counter) Next() Counter {
	v := *c
	if v == math.MaxUint64 {
		violate(ErrCounterOverflow, "cannot mint past %d", v)
	}
	*c = v + 1
	return v
}

// Class mints the next identifier and returns its class name.
func (c *Counter) Class() string {
	return ClassName(c.Next())
}

// String returns the class name for c.
func (c Counter) String() string {
	return ClassName(c)
}

// ClassName formats an identifier as a class name, e.g. "css-12".
func ClassName(c Counter) string {
	return ClassPrefix + strconv.FormatUint(uint64(c), 10)
}

// ClassAt returns the class name at offset within a range beginning at start.
// Bundle constructors use it with the offsets their generator mints in order.
func ClassAt(start Counter, offset uint64) string {
	if uint64(start) > math.MaxUint64-offset {
		violate(ErrCounterOverflow, "start %d + offset %d", start, offset)
	}
	return ClassName(start + Counter(offset))
}
