package interp

import (
	"strconv"
)

// Value is the runtime value interface. Every Penguin value implements
// Type (a stable tag used for error messages and dispatch) and String
// (the canonical rendering used by print).
type Value interface {
	Type() string
	String() string
}

// IntegerValue represents an integer value.
type IntegerValue struct {
	Value int64
}

func (i *IntegerValue) Type() string { return "INTEGER" }

func (i *IntegerValue) String() string {
	return strconv.FormatInt(i.Value, 10)
}

// FloatValue represents a decimal value.
type FloatValue struct {
	Value float64
}

func (f *FloatValue) Type() string { return "FLOAT" }

func (f *FloatValue) String() string {
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

// BooleanValue represents a boolean value.
type BooleanValue struct {
	Value bool
}

func (b *BooleanValue) Type() string { return "BOOLEAN" }

func (b *BooleanValue) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// CharValue represents a single character value.
type CharValue struct {
	Value rune
}

func (c *CharValue) Type() string   { return "CHAR" }
func (c *CharValue) String() string { return string(c.Value) }

// StringValue represents a string value. String returns the raw content;
// interpolation markers are resolved at print time, not here.
type StringValue struct {
	Value string
}

func (s *StringValue) Type() string   { return "STRING" }
func (s *StringValue) String() string { return s.Value }

// NullValue represents the absence of a value.
type NullValue struct{}

func (n *NullValue) Type() string   { return "NULL" }
func (n *NullValue) String() string { return "null" }

// ArrayValue represents an array object. Array values are shared handles:
// assigning or passing one by reference aliases the same backing store.
//
// The backing store always has len(Elements) == capacity; Length tracks
// how many leading slots are in use. Fixed arrays keep Length equal to
// the capacity from creation and reject push.
type ArrayValue struct {
	Fixed    bool
	Length   int
	Elements []Value
}

func (a *ArrayValue) Type() string { return "ARRAY" }

func (a *ArrayValue) String() string {
	return "[Array length=" + strconv.Itoa(a.Length) + "]"
}

// Capacity returns the size of the backing store.
func (a *ArrayValue) Capacity() int {
	return len(a.Elements)
}

// newDynamicArray allocates a dynamic array whose length and capacity
// exactly match the given elements.
func newDynamicArray(elements []Value) *ArrayValue {
	return &ArrayValue{
		Fixed:    false,
		Length:   len(elements),
		Elements: elements,
	}
}

// newFixedArray allocates a fixed array of the given size with every slot
// set to a deep copy of init.
func newFixedArray(size int, init Value) *ArrayValue {
	elements := make([]Value, size)
	for i := 0; i < size; i++ {
		elements[i] = deepCopy(init)
	}
	return &ArrayValue{
		Fixed:    true,
		Length:   size,
		Elements: elements,
	}
}

// deepCopy produces a structurally independent copy of a value. Arrays
// are copied recursively, preserving the fixed flag, length, and
// capacity; all other values are immutable and returned as-is.
func deepCopy(v Value) Value {
	arr, ok := v.(*ArrayValue)
	if !ok {
		return v
	}

	elements := make([]Value, len(arr.Elements))
	for i := 0; i < arr.Length; i++ {
		elements[i] = deepCopy(arr.Elements[i])
	}

	return &ArrayValue{
		Fixed:    arr.Fixed,
		Length:   arr.Length,
		Elements: elements,
	}
}
