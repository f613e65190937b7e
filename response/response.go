// Package response interprets the bodies returned by the Hue bridge.
//
// Write endpoints answer with a JSON array in which every element is either
// {"success": {...}} or {"error": {...}}. Read endpoints answer with the plain
// resource, or with the same array when the request was rejected.
package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/samber/lo"
)

// Error types reported by the bridge in the "type" field of an error entry.
const (
	ErrorTypeUnauthorizedUser        = 1
	ErrorTypeInvalidJSON             = 2
	ErrorTypeResourceNotAvailable    = 3
	ErrorTypeMethodNotAvailable      = 4
	ErrorTypeMissingParameters       = 5
	ErrorTypeParameterNotAvailable   = 6
	ErrorTypeInvalidValue            = 7
	ErrorTypeParameterNotModifiable  = 8
	ErrorTypeTooManyItems            = 11
	ErrorTypePortalRequired          = 12
	ErrorTypeLinkButtonNotPressed    = 101
	ErrorTypeDHCPCannotBeDisabled    = 110
	ErrorTypeInvalidUpdateState      = 111
	ErrorTypeDeviceOff               = 201
	ErrorTypeGroupTableFull          = 301
	ErrorTypeSceneBufferFull         = 403
	ErrorTypeSensorListFull          = 501
	ErrorTypeRuleEngineFull          = 601
	ErrorTypeConditionError          = 607
	ErrorTypeActionError             = 608
	ErrorTypeScheduleListFull        = 701
	ErrorTypeScheduleTimezoneInvalid = 702
	ErrorTypeInternalError           = 901
)

// Outcome is one decoded entry of a bulk response: either a Success or a *Failure.
type Outcome interface {
	outcome()
}

// Success is a field the bridge accepted, keyed by its resource path
// (e.g. "/lights/1/state/bri"). Creation endpoints report the new
// identifier with the path "id". Path is empty when the bridge answered
// with a bare message.
type Success struct {
	Path  string
	Value json.RawMessage
}

func (Success) outcome() {}

// Unmarshal decodes the accepted value into v.
func (s Success) Unmarshal(v any) error {
	if err := json.Unmarshal(s.Value, v); err != nil {
		return &ParseError{Err: fmt.Errorf("value of %s: %w", s.Path, err)}
	}
	return nil
}

// String returns the accepted value as a string. JSON strings are unquoted,
// anything else is returned as its raw JSON text.
func (s Success) String() string {
	var str string
	if err := json.Unmarshal(s.Value, &str); err == nil {
		return str
	}
	return string(s.Value)
}

// Failure is an error reported by the bridge for a single field or request.
type Failure struct {
	Type        int
	Address     string
	Description string
}

func (*Failure) outcome() {}

func (f *Failure) Error() string {
	return fmt.Sprintf("bridge error %d at %s: %s", f.Type, f.Address, f.Description)
}

// ParseError reports a body that is not valid JSON or that does not have
// the shape the caller expected.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse bridge response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Responses is the decoded body of a write endpoint, in response order.
type Responses []Outcome

// IntoResult collapses the responses into a single result: nil when the
// bridge reported no failure, otherwise the first *Failure.
func (r Responses) IntoResult() error {
	for _, o := range r {
		if f, ok := o.(*Failure); ok {
			return f
		}
	}
	return nil
}

// Successes returns the successful outcomes in response order.
func (r Responses) Successes() []Success {
	return lo.FilterMap(r, func(o Outcome, _ int) (Success, bool) {
		s, ok := o.(Success)
		return s, ok
	})
}

// Failures returns the bridge failures in response order.
func (r Responses) Failures() []*Failure {
	return lo.FilterMap(r, func(o Outcome, _ int) (*Failure, bool) {
		f, ok := o.(*Failure)
		return f, ok
	})
}

// errNotBulk marks a body that is valid JSON but not in the bulk form.
var errNotBulk = errors.New("not a bulk response")

// entry is one element of a bulk response.
type entry struct {
	success json.RawMessage
	failure *Failure
}

// errorBody is the wire form of an "error" entry. Type arrives as a number
// on most firmware and as a numeric string on some.
type errorBody struct {
	Type        json.RawMessage `json:"type"`
	Address     string          `json:"address"`
	Description string          `json:"description"`
}

func (e *entry) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil || len(obj) != 1 {
		return errNotBulk
	}

	if raw, ok := obj["success"]; ok {
		e.success = raw
		return nil
	}

	if raw, ok := obj["error"]; ok {
		var body errorBody
		if err := json.Unmarshal(raw, &body); err != nil {
			return errNotBulk
		}
		t, err := parseErrorType(body.Type)
		if err != nil {
			return errNotBulk
		}
		e.failure = &Failure{Type: t, Address: body.Address, Description: body.Description}
		return nil
	}

	return errNotBulk
}

// outcomes expands the entry; a success object produces one Success per
// path, in document order. Any other success value (deletions answer with a
// plain message) is a single Success without a path.
func (e entry) outcomes() ([]Outcome, error) {
	if e.failure != nil {
		return []Outcome{e.failure}, nil
	}
	if !isObject(e.success) {
		return []Outcome{Success{Value: e.success}}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(e.success))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var out []Outcome
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		path, _ := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		out = append(out, Success{Path: path, Value: value})
	}
	return out, nil
}

// Decode decodes the body of a write endpoint into its outcomes. A body
// that is not a bulk response is a *ParseError.
func Decode(raw []byte) (Responses, error) {
	entries, err := decodeBulk(raw)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	responses := Responses{}
	for _, e := range entries {
		outcomes, err := e.outcomes()
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		responses = append(responses, outcomes...)
	}
	return responses, nil
}

// FirstFailure walks a bulk response element by element and returns the
// first *Failure without building the outcome list. Elements after the
// first failure are not inspected.
func FirstFailure(raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return &ParseError{Err: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return &ParseError{Err: errNotBulk}
	}

	for dec.More() {
		var e entry
		if err := dec.Decode(&e); err != nil {
			return &ParseError{Err: err}
		}
		if e.failure != nil {
			return e.failure
		}
	}

	if _, err := dec.Token(); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}

// Parse decodes the body of a read endpoint into T. When the body is a bulk
// response, the first failure in it is returned as the error; otherwise the
// body is decoded directly as T.
func Parse[T any](raw []byte) (T, error) {
	var result T

	entries, err := decodeBulk(raw)
	switch {
	case err == nil:
		for _, e := range entries {
			if e.failure != nil {
				return result, e.failure
			}
		}
	case errors.Is(err, errNotBulk):
		// plain resource body
	default:
		return result, &ParseError{Err: err}
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return result, &ParseError{Err: err}
	}
	return result, nil
}

// decodeBulk returns errNotBulk for valid JSON of another shape, and the
// json error for invalid JSON.
func decodeBulk(raw []byte) ([]entry, error) {
	if !json.Valid(raw) {
		var v any
		return nil, json.Unmarshal(raw, &v)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errNotBulk
	}

	var entries []entry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, errNotBulk
	}
	return entries, nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func parseErrorType(raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}
