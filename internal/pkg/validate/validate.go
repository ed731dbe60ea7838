// Package validate turns untyped JSON payloads into typed values using
// go-playground/validator struct tags and a per-field message table.
package validate

import (
	"errors"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode/utf16"

	"checkout-orchestrator/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error carries every violation found in a payload, ordered by schema field order.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return strings.Join(msgs, "; ")
}

func (e *Error) Is(target error) bool {
	return target == errs.ErrValidation
}

// Messages returns the violation messages keyed by field path.
func (e *Error) Messages() map[string]string {
	out := make(map[string]string, len(e.Violations))
	for _, v := range e.Violations {
		out[v.Path] = v.Message
	}
	return out
}

func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

type Field struct {
	Path string
	// Messages maps a validator tag (e.g. "min", "email") to the message reported for it.
	Messages map[string]string
	// TypeMessage is reported when the raw value has the wrong JSON type.
	TypeMessage string
}

type Schema struct {
	fields []Field
	index  map[string]int
}

func NewSchema(fields ...Field) *Schema {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		index[f.Path] = i
	}
	return &Schema{fields: fields, index: index}
}

// Check validates target (a struct tagged with `validate` and `json`) and merges
// the result with violations already found while decoding the payload.
// Each field reports at most one violation: the first one found.
func (s *Schema) Check(target any, decodeViolations []Violation) error {
	seen := make(map[string]bool, len(s.fields))
	violations := make([]Violation, 0, len(s.fields))
	for _, v := range decodeViolations {
		if seen[v.Path] {
			continue
		}
		seen[v.Path] = true
		violations = append(violations, v)
	}

	if err := engine().Struct(target); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return errs.Wrap(err, "schema check")
		}
		for _, fe := range fieldErrs {
			path := fe.Field()
			if seen[path] {
				continue
			}
			seen[path] = true
			violations = append(violations, Violation{Path: path, Message: s.message(path, fe.Tag())})
		}
	}

	if len(violations) == 0 {
		return nil
	}

	sort.SliceStable(violations, func(i, j int) bool {
		return s.position(violations[i].Path) < s.position(violations[j].Path)
	})
	return &Error{Violations: violations}
}

// TypeViolation builds the violation reported when path holds a value of the wrong type.
func (s *Schema) TypeViolation(path string) Violation {
	return Violation{Path: path, Message: s.typeMessage(path)}
}

func (s *Schema) message(path, tag string) string {
	i, ok := s.index[path]
	if !ok {
		return path + " is invalid"
	}
	if msg, ok := s.fields[i].Messages[tag]; ok {
		return msg
	}
	return s.typeMessage(path)
}

func (s *Schema) typeMessage(path string) string {
	i, ok := s.index[path]
	if !ok {
		return path + " is invalid"
	}
	if msg := s.fields[i].TypeMessage; msg != "" {
		return msg
	}
	return path + " is invalid"
}

func (s *Schema) position(path string) int {
	if i, ok := s.index[path]; ok {
		return i
	}
	return len(s.fields)
}

var (
	once     sync.Once
	validate *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("utf16min", utf16Bound(func(n, bound int) bool { return n >= bound }))
		_ = validate.RegisterValidation("utf16max", utf16Bound(func(n, bound int) bool { return n <= bound }))
	})
	return validate
}

// UTF16Len counts string length the way browsers and JSON clients do, so a
// character outside the BMP counts as two.
func UTF16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// utf16Bound builds the utf16min / utf16max tags. Non-string fields fail.
func utf16Bound(ok func(n, bound int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		bound, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return ok(UTF16Len(field.String()), bound)
	}
}
