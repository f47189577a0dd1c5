package schema

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	out, err := String().Parse("hello")
	assert.NoError(t, err)
	assert.Equal(t, "hello", out)

	_, err = String().Parse(5)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeInvalidType, verr.Issues[0].Code)

	_, err = String().Parse(Undefined)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeRequired, verr.Issues[0].Code)
}

func TestBool(t *testing.T) {
	out, err := Bool().Parse(true)
	assert.NoError(t, err)
	assert.Equal(t, true, out)

	_, err = Bool().Parse("true")
	assert.Error(t, err)
}

func TestNumber(t *testing.T) {
	out, err := Number().Parse(42.5)
	assert.NoError(t, err)
	assert.Equal(t, 42.5, out)

	out, err = Number().Parse(7)
	assert.NoError(t, err)
	assert.Equal(t, 7.0, out)

	_, err = Number().Parse("42.5")
	assert.Error(t, err)
}

func TestInt(t *testing.T) {
	out, err := Int().Parse(42)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), out)

	// Integral floats are what JSON decoding hands us.
	out, err = Int().Parse(42.0)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), out)

	_, err = Int().Parse(42.5)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeInvalidType, verr.Issues[0].Code)
}

func TestLiteral(t *testing.T) {
	out, err := Literal("on").Parse("on")
	assert.NoError(t, err)
	assert.Equal(t, "on", out)

	_, err = Literal("on").Parse("off")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeInvalidLiteral, verr.Issues[0].Code)
}

func TestObject_Basic(t *testing.T) {
	validator := Object(Shape{
		"name": String(),
		"age":  Int(),
	})

	out, err := validator.Parse(map[string]any{"name": "jane", "age": 30})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "jane", "age": int64(30)}, out)
}

func TestObject_MissingFieldPath(t *testing.T) {
	validator := Object(Shape{"email": String()})

	_, err := validator.Parse(map[string]any{"name": "jane"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Issues, 1)
	assert.Equal(t, []any{"email"}, verr.Issues[0].Path)
	assert.Equal(t, CodeRequired, verr.Issues[0].Code)
}

func TestObject_StripsUnknownKeys(t *testing.T) {
	validator := Object(Shape{"name": String()})

	out, err := validator.Parse(map[string]any{"name": "jane", "extra": "ignored"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "jane"}, out)
}

func TestObject_OptionalFieldAbsent(t *testing.T) {
	validator := Object(Shape{
		"name": String(),
		"nick": String().Optional(),
	})

	out, err := validator.Parse(map[string]any{"name": "jane"})
	require.NoError(t, err)
	result := out.(map[string]any)
	_, present := result["nick"]
	assert.False(t, present)
}

func TestObject_NestedPath(t *testing.T) {
	validator := Object(Shape{
		"user": Object(Shape{"name": String()}),
	})

	_, err := validator.Parse(map[string]any{"user": map[string]any{}})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []any{"user", "name"}, verr.Issues[0].Path)
}

func TestObject_StableIssueOrder(t *testing.T) {
	validator := Object(Shape{
		"b": String(),
		"a": String(),
	})

	_, err := validator.Parse(map[string]any{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Issues, 2)
	assert.Equal(t, []any{"a"}, verr.Issues[0].Path)
	assert.Equal(t, []any{"b"}, verr.Issues[1].Path)
}

func TestArray(t *testing.T) {
	out, err := Array(String()).Parse([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, out)

	_, err = Array(String()).Parse("a")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeInvalidType, verr.Issues[0].Code)

	_, err = Array(String()).Parse([]any{"a", 5})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []any{1}, verr.Issues[0].Path)
}

func TestRefine(t *testing.T) {
	nonEmpty := String().Refine(func(v any) bool {
		return v.(string) != ""
	}, "must not be empty")

	out, err := nonEmpty.Parse("x")
	assert.NoError(t, err)
	assert.Equal(t, "x", out)

	_, err = nonEmpty.Parse("")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeCustom, verr.Issues[0].Code)
	assert.Equal(t, "must not be empty", verr.Issues[0].Message)
}

func TestTransform(t *testing.T) {
	upper := String().Transform(func(v any) (any, error) {
		return strings.ToUpper(v.(string)), nil
	})
	out, err := upper.Parse("abc")
	assert.NoError(t, err)
	assert.Equal(t, "ABC", out)

	failing := String().Transform(func(v any) (any, error) {
		return nil, fmt.Errorf("no good")
	})
	_, err = failing.Parse("abc")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "no good", verr.Issues[0].Message)
}

func TestPreprocess(t *testing.T) {
	boxed := Preprocess(func(v any) any {
		if s, ok := v.(string); ok {
			return []string{s}
		}
		return v
	}, Array(String()))

	out, err := boxed.Parse("solo")
	require.NoError(t, err)
	assert.Equal(t, []any{"solo"}, out)
}

func TestAsync_GuardsSynchronousParse(t *testing.T) {
	validator := String().RefineAsync(func(ctx context.Context, v any) (bool, error) {
		return true, nil
	}, "never")

	_, err := validator.Parse("x")
	assert.ErrorIs(t, err, ErrAsyncType)

	res := validator.SafeParse("x")
	require.False(t, res.Success)
	assert.Equal(t, CodeAsync, res.Error.Issues[0].Code)

	out, err := validator.ParseAsync(context.Background(), "x")
	assert.NoError(t, err)
	assert.Equal(t, "x", out)
}

func TestAsync_PropagatesThroughObject(t *testing.T) {
	validator := Object(Shape{
		"email": String().RefineAsync(func(ctx context.Context, v any) (bool, error) {
			return strings.Contains(v.(string), "@"), nil
		}, "invalid email"),
	})
	assert.True(t, validator.Def().Async)

	_, err := validator.Parse(map[string]any{"email": "a@b.c"})
	assert.ErrorIs(t, err, ErrAsyncType)

	out, err := validator.ParseAsync(context.Background(), map[string]any{"email": "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"email": "a@b.c"}, out)

	_, err = validator.ParseAsync(context.Background(), map[string]any{"email": "nope"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "invalid email", verr.Issues[0].Message)
}

func TestSafeParse_Envelope(t *testing.T) {
	res := String().SafeParse("ok")
	assert.True(t, res.Success)
	assert.Equal(t, "ok", res.Data)
	assert.Nil(t, res.Error)

	res = String().SafeParse(5)
	assert.False(t, res.Success)
	assert.Nil(t, res.Data)
	require.NotNil(t, res.Error)
	assert.NotEmpty(t, res.Error.Issues)
}

func TestValidationError_Message(t *testing.T) {
	_, err := Object(Shape{"age": Int()}).Parse(map[string]any{"age": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "age")

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
}

func TestDefMarker(t *testing.T) {
	assert.NotNil(t, String().Def())
	assert.Equal(t, "object", Object(Shape{}).Def().TypeName)
	assert.True(t, String().Optional().Def().Optional)
}
