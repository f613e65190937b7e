// Package modifier compiles partial updates into the JSON bodies the bridge
// expects on its PUT endpoints.
//
// Every resource owns a Table describing its wire fields. A Modifier built on
// that table records one pending value per field and serializes to an object
// holding exactly the fields that were set.
package modifier

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnknownField         = errors.New("unknown field")
	ErrUnsupportedOperation = errors.New("operation not supported for field")
)

// Type is the operation applied to a single-valued field.
type Type int

const (
	// Override replaces the current value.
	Override Type = iota
	// Increment adds to the current value.
	Increment
	// Decrement subtracts from the current value.
	Decrement
)

func (t Type) String() string {
	switch t {
	case Override:
		return "override"
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// CoordinateType is the operation applied to a pair of color space coordinates.
type CoordinateType int

const (
	CoordinateOverride CoordinateType = iota
	CoordinateIncrement
	CoordinateDecrement
	// CoordinateIncrementDecrement increments x and decrements y.
	CoordinateIncrementDecrement
	// CoordinateDecrementIncrement decrements x and increments y.
	CoordinateDecrementIncrement
)

// signs returns the multipliers applied to x and y.
func (t CoordinateType) signs() (float64, float64) {
	switch t {
	case CoordinateDecrement:
		return -1, -1
	case CoordinateIncrementDecrement:
		return 1, -1
	case CoordinateDecrementIncrement:
		return -1, 1
	}
	return 1, 1
}

// Field describes one wire field of a resource.
type Field struct {
	// Delta is the wire name of the bridge's signed-delta form of the field
	// (e.g. "bri_inc"). Empty when the bridge cannot increment the field.
	Delta string
	// Pair marks a two-component coordinate field sent as [x, y].
	Pair bool
}

// Table maps wire field names to their description.
type Table map[string]Field

type pending struct {
	wire  string
	value any
}

// Modifier accumulates field operations against a Table. The zero value is
// not usable; create one with New.
type Modifier struct {
	fields Table
	ops    map[string]pending
	err    error
}

func New(fields Table) *Modifier {
	return &Modifier{fields: fields, ops: map[string]pending{}}
}

// Override stores value verbatim for field.
func (m *Modifier) Override(field string, value any) {
	f, ok := m.lookup(field)
	if !ok {
		return
	}
	if f.Pair {
		m.fail(fmt.Errorf("%w: %s takes coordinates", ErrUnsupportedOperation, field))
		return
	}
	m.ops[field] = pending{wire: field, value: value}
}

// Set applies t to an integer field. Increments and decrements are sent as a
// signed value under the field's delta name.
func (m *Modifier) Set(field string, t Type, value int) {
	wire, sign, ok := m.resolve(field, t)
	if !ok {
		return
	}
	m.ops[field] = pending{wire: wire, value: sign * value}
}

// SetFloat is Set for fields holding fractional values.
func (m *Modifier) SetFloat(field string, t Type, value float64) {
	wire, sign, ok := m.resolve(field, t)
	if !ok {
		return
	}
	m.ops[field] = pending{wire: wire, value: float64(sign) * value}
}

// SetCoordinates applies t to a pair field; both components are always
// stored together.
func (m *Modifier) SetCoordinates(field string, t CoordinateType, x, y float64) {
	f, ok := m.lookup(field)
	if !ok {
		return
	}
	if !f.Pair {
		m.fail(fmt.Errorf("%w: %s is not a coordinate field", ErrUnsupportedOperation, field))
		return
	}

	if t == CoordinateOverride {
		m.ops[field] = pending{wire: field, value: [2]float64{x, y}}
		return
	}

	if f.Delta == "" {
		m.fail(fmt.Errorf("%w: %s cannot be incremented", ErrUnsupportedOperation, field))
		return
	}
	sx, sy := t.signs()
	m.ops[field] = pending{wire: f.Delta, value: [2]float64{sx * x, sy * y}}
}

// IsEmpty reports whether no field has been set. A builder call that fails
// sets nothing, so check Err before IsEmpty.
func (m *Modifier) IsEmpty() bool {
	return len(m.ops) == 0
}

// Err returns the first error recorded by a builder call.
func (m *Modifier) Err() error {
	return m.err
}

// Body returns the wire body: wire field name to pending value.
func (m *Modifier) Body() map[string]any {
	body := make(map[string]any, len(m.ops))
	for _, p := range m.ops {
		body[p.wire] = p.value
	}
	return body
}

func (m *Modifier) MarshalJSON() ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return json.Marshal(m.Body())
}

func (m *Modifier) resolve(field string, t Type) (string, int, bool) {
	f, ok := m.lookup(field)
	if !ok {
		return "", 0, false
	}
	if f.Pair {
		m.fail(fmt.Errorf("%w: %s takes coordinates", ErrUnsupportedOperation, field))
		return "", 0, false
	}

	switch t {
	case Override:
		return field, 1, true
	case Increment, Decrement:
		if f.Delta == "" {
			m.fail(fmt.Errorf("%w: %s cannot be %sed", ErrUnsupportedOperation, field, t))
			return "", 0, false
		}
		if t == Decrement {
			return f.Delta, -1, true
		}
		return f.Delta, 1, true
	}

	m.fail(fmt.Errorf("%w: %s on %s", ErrUnsupportedOperation, t, field))
	return "", 0, false
}

func (m *Modifier) lookup(field string) (Field, bool) {
	f, ok := m.fields[field]
	if !ok {
		m.fail(fmt.Errorf("%w: %s", ErrUnknownField, field))
	}
	return f, ok
}

func (m *Modifier) fail(err error) {
	if m.err == nil {
		m.err = err
	}
}
