//go:build unit

package validate_test

import (
	"encoding/json"
	"errors"
	"testing"

	"checkout-orchestrator/internal/pkg/errs"
	"checkout-orchestrator/internal/pkg/validate"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string  `json:"name" validate:"min=2"`
	Email string  `json:"email" validate:"required,email"`
	Note  *string `json:"note" validate:"omitempty,max=5"`
}

var sampleSchema = validate.NewSchema(
	validate.Field{Path: "name", Messages: map[string]string{"min": "name too short"}, TypeMessage: "name too short"},
	validate.Field{Path: "email", Messages: map[string]string{"required": "email required", "email": "email invalid"}, TypeMessage: "email invalid"},
	validate.Field{Path: "note", Messages: map[string]string{"max": "note too long"}, TypeMessage: "note too long"},
)

func TestSchemaCheck(t *testing.T) {
	t.Run("valid target passes", func(t *testing.T) {
		err := sampleSchema.Check(&sample{Name: "ok", Email: "a@b.co"}, nil)
		assert.NoError(t, err)
	})

	t.Run("all violations are collected in schema order", func(t *testing.T) {
		note := "toolong"
		err := sampleSchema.Check(&sample{Name: "x", Email: "nope", Note: &note}, nil)
		require.Error(t, err)

		verr, ok := validate.AsError(err)
		require.True(t, ok)
		assert.Equal(t, []validate.Violation{
			{Path: "name", Message: "name too short"},
			{Path: "email", Message: "email invalid"},
			{Path: "note", Message: "note too long"},
		}, verr.Violations)
		assert.True(t, errors.Is(err, errs.ErrValidation))
		assert.Equal(t, "name too short; email invalid; note too long", err.Error())
	})

	t.Run("first failing tag wins per field", func(t *testing.T) {
		err := sampleSchema.Check(&sample{Name: "ok", Email: ""}, nil)
		verr, ok := validate.AsError(err)
		require.True(t, ok)
		assert.Equal(t, map[string]string{"email": "email required"}, verr.Messages())
	})

	t.Run("decode violations take precedence and are ordered", func(t *testing.T) {
		err := sampleSchema.Check(&sample{Name: "", Email: "a@b.co"}, []validate.Violation{sampleSchema.TypeViolation("note"), sampleSchema.TypeViolation("name")})
		verr, ok := validate.AsError(err)
		require.True(t, ok)
		assert.Equal(t, []validate.Violation{
			{Path: "name", Message: "name too short"},
			{Path: "note", Message: "note too long"},
		}, verr.Violations)
	})
}

func TestPayload(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		p := validate.Payload{"s": "v", "n": 1.0, "null": nil}
		v, ok := p.String("s")
		assert.True(t, ok)
		assert.Equal(t, "v", v)

		_, ok = p.String("n")
		assert.False(t, ok)

		v, ok = p.String("missing")
		assert.True(t, ok)
		assert.Empty(t, v)

		v, ok = p.String("null")
		assert.True(t, ok)
		assert.Empty(t, v)
	})

	t.Run("OptionalString", func(t *testing.T) {
		p := validate.Payload{"s": "v", "b": true}
		v, ok := p.OptionalString("s")
		assert.True(t, ok)
		assert.Equal(t, "v", *v)

		v, ok = p.OptionalString("missing")
		assert.True(t, ok)
		assert.Nil(t, v)

		_, ok = p.OptionalString("b")
		assert.False(t, ok)
	})

	t.Run("Int64", func(t *testing.T) {
		cases := []struct {
			name   string
			raw    any
			want   int64
			wantOK bool
		}{
			{name: "integral float", raw: 9999.0, want: 9999, wantOK: true},
			{name: "fractional float", raw: 12.5, wantOK: false},
			{name: "json number", raw: json.Number("42"), want: 42, wantOK: true},
			{name: "fractional json number", raw: json.Number("4.2"), wantOK: false},
			{name: "string", raw: "100", wantOK: false},
			{name: "bool", raw: true, wantOK: false},
			{name: "huge", raw: 1e300, wantOK: false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, ok := validate.Payload{"k": tc.raw}.Int64("k")
				assert.Equal(t, tc.wantOK, ok)
				if tc.wantOK {
					assert.Equal(t, tc.want, got)
				}
			})
		}

		got, ok := validate.Payload{}.Int64("k")
		assert.True(t, ok)
		assert.Zero(t, got)
	})

	t.Run("Decimal", func(t *testing.T) {
		d, ok := validate.Payload{"k": 99.99}.Decimal("k")
		assert.True(t, ok)
		assert.True(t, d.Equal(decimal.RequireFromString("99.99")))

		d, ok = validate.Payload{"k": json.Number("0.01")}.Decimal("k")
		assert.True(t, ok)
		assert.True(t, d.Equal(decimal.RequireFromString("0.01")))

		_, ok = validate.Payload{"k": "cheap"}.Decimal("k")
		assert.False(t, ok)
	})
}

func TestUTF16Len(t *testing.T) {
	assert.Equal(t, 0, validate.UTF16Len(""))
	assert.Equal(t, 2, validate.UTF16Len("ab"))
	assert.Equal(t, 2, validate.UTF16Len("傘傘"))
	assert.Equal(t, 2, validate.UTF16Len("😀"))
}
