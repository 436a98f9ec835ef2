// Package validation runs declarative per-field checks over path params, query strings and
// JSON bodies, producing a flat list of field errors for the response envelope.
//
// A chain is evaluated field by field. Each field reports at most one error: the first
// failing step. Checks never mutate their input.
package validation

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Location names the part of the request a field was read from.
type Location string

const (
	LocationParams Location = "params"
	LocationQuery  Location = "query"
	LocationBody   Location = "body"
)

// FieldError describes a single failed check.
type FieldError struct {
	Type     string   `json:"type"`
	Value    any      `json:"value,omitempty"`
	Msg      string   `json:"msg"`
	Path     string   `json:"path"`
	Location Location `json:"location"`
}

// Errors is the list of failures returned to the client.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Path + ": " + fe.Msg
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Input is the request data a chain validates.
type Input struct {
	Params map[string]string
	Query  url.Values
	Body   map[string]any
}

func (in Input) lookup(loc Location, field string) (any, bool) {
	switch loc {
	case LocationParams:
		v, ok := in.Params[field]
		return v, ok
	case LocationQuery:
		vals, ok := in.Query[field]
		if !ok || len(vals) == 0 {
			return nil, false
		}
		return vals[0], true
	case LocationBody:
		v, ok := in.Body[field]
		return v, ok
	}
	return nil, false
}

// Global validator instance for reuse
var validate = validator.New()

type step struct {
	msg  string
	pass func(v any, present bool) bool
}

// Check is the rule set for one field.
type Check struct {
	location Location
	field    string
	optional bool
	steps    []step
}

// Param starts a check on a path parameter.
func Param(field string) *Check { return &Check{location: LocationParams, field: field} }

// Query starts a check on a query string parameter.
func Query(field string) *Check { return &Check{location: LocationQuery, field: field} }

// Body starts a check on a top-level JSON body field.
func Body(field string) *Check { return &Check{location: LocationBody, field: field} }

// Optional skips the remaining steps when the field is absent.
func (c *Check) Optional() *Check {
	c.optional = true
	return c
}

// Exists fails when the field is absent or null.
func (c *Check) Exists(msg string) *Check {
	return c.add(msg, func(v any, present bool) bool { return present && v != nil })
}

// IsString fails unless the value is a string.
func (c *Check) IsString(msg string) *Check {
	return c.add(msg, func(v any, _ bool) bool {
		_, ok := v.(string)
		return ok
	})
}

// Rule runs a validator tag (e.g. "mongodb", "max=200", "oneof=asc desc") against the
// value rendered as a string.
func (c *Check) Rule(tag, msg string) *Check {
	return c.add(msg, func(v any, _ bool) bool {
		return validate.Var(Stringify(v), tag) == nil
	})
}

// PositiveInt fails unless the value parses as an integer greater than zero.
func (c *Check) PositiveInt(msg string) *Check {
	return c.add(msg, func(v any, _ bool) bool {
		n, err := strconv.Atoi(strings.TrimSpace(Stringify(v)))
		return err == nil && n > 0
	})
}

func (c *Check) add(msg string, pass func(any, bool) bool) *Check {
	c.steps = append(c.steps, step{msg: msg, pass: pass})
	return c
}

// Run returns the first failure for this field, or nil.
func (c *Check) Run(in Input) *FieldError {
	v, present := in.lookup(c.location, c.field)
	if !present && c.optional {
		return nil
	}
	for _, s := range c.steps {
		if !s.pass(v, present) {
			return &FieldError{Type: "field", Value: v, Msg: s.msg, Path: c.field, Location: c.location}
		}
	}
	return nil
}

// Chain is an ordered set of field checks for one endpoint.
type Chain []*Check

// Validate runs every check and returns the collected failures, or nil.
func (ch Chain) Validate(in Input) Errors {
	var errs Errors
	for _, c := range ch {
		if fe := c.Run(in); fe != nil {
			errs = append(errs, *fe)
		}
	}
	return errs
}

// Stringify renders a decoded JSON value the way it appeared on the wire.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// ParseBool converts a value accepted by the "boolean" rule.
func ParseBool(v any) (bool, bool) {
	b, err := strconv.ParseBool(Stringify(v))
	return b, err == nil
}
