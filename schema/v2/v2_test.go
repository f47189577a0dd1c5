package v2

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Primitives(t *testing.T) {
	out, err := Parse(String(), "hello")
	assert.NoError(t, err)
	assert.Equal(t, "hello", out)

	_, err = Parse(String(), 5)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeInvalidType, verr.Issues[0].Code)
	assert.Equal(t, 5, verr.Issues[0].Input)

	out, err = Parse(Int(), 42.0)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), out)

	_, err = Parse(Int(), 42.5)
	assert.Error(t, err)

	out, err = Parse(Bool(), false)
	assert.NoError(t, err)
	assert.Equal(t, false, out)

	out, err = Parse(Number(), 1.5)
	assert.NoError(t, err)
	assert.Equal(t, 1.5, out)

	_, err = Parse(Literal("on"), "off")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeInvalidLiteral, verr.Issues[0].Code)
}

func TestObject(t *testing.T) {
	sch := Object(map[string]Schema{
		"name": String(),
		"age":  Int(),
	})

	out, err := Parse(sch, map[string]any{"name": "jane", "age": 30, "extra": "ignored"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "jane", "age": int64(30)}, out)

	_, err = Parse(sch, map[string]any{"name": "jane"})
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []any{"age"}, verr.Issues[0].Path)
	assert.Equal(t, CodeRequired, verr.Issues[0].Code)
}

func TestObject_OptionalFieldAbsent(t *testing.T) {
	sch := Object(map[string]Schema{
		"name": String(),
		"nick": Optional(String()),
	})

	out, err := Parse(sch, map[string]any{"name": "jane"})
	require.NoError(t, err)
	_, present := out.(map[string]any)["nick"]
	assert.False(t, present)
}

func TestArray(t *testing.T) {
	out, err := Parse(Array(String()), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, out)

	_, err = Parse(Array(String()), []any{"a", 1})
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []any{1}, verr.Issues[0].Path)
}

func TestRefineAndPipe(t *testing.T) {
	nonEmpty := Refine(String(), func(v any) bool {
		return v.(string) != ""
	}, "must not be empty")

	_, err := Parse(nonEmpty, "")
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must not be empty", verr.Issues[0].Message)

	upper := Pipe(String(), func(v any) (any, error) {
		return strings.ToUpper(v.(string)), nil
	})
	out, err := Parse(upper, "abc")
	assert.NoError(t, err)
	assert.Equal(t, "ABC", out)
}

func TestPreprocess(t *testing.T) {
	boxed := Preprocess(func(v any) any {
		if s, ok := v.(string); ok {
			return []string{s}
		}
		return v
	}, Array(String()))

	out, err := Parse(boxed, "solo")
	require.NoError(t, err)
	assert.Equal(t, []any{"solo"}, out)
}

func TestAsync_GuardsSynchronousEntryPoints(t *testing.T) {
	sch := RefineAsync(String(), func(ctx context.Context, v any) (bool, error) {
		return true, nil
	}, "never")

	_, err := Parse(sch, "x")
	assert.ErrorIs(t, err, ErrAsyncSchema)

	res := SafeParse(sch, "x")
	require.False(t, res.Success)
	require.NotNil(t, res.Error)

	out, err := ParseAsync(context.Background(), sch, "x")
	assert.NoError(t, err)
	assert.Equal(t, "x", out)

	res = SafeParseAsync(context.Background(), sch, "x")
	assert.True(t, res.Success)
}

type hollowSchema struct{}

func (hollowSchema) Internals() *Internals { return &Internals{TypeName: "hollow"} }

func TestParse_RejectsForeignSchema(t *testing.T) {
	_, err := Parse(hollowSchema{}, "x")
	assert.ErrorIs(t, err, ErrInvalidSchema)

	res := SafeParse(hollowSchema{}, "x")
	assert.False(t, res.Success)
	require.NotNil(t, res.Error)
}

func TestSafeParse_Envelope(t *testing.T) {
	res := SafeParse(String(), "ok")
	assert.True(t, res.Success)
	assert.Equal(t, "ok", res.Data)
	assert.Nil(t, res.Error)

	res = SafeParse(String(), 5)
	assert.False(t, res.Success)
	require.NotNil(t, res.Error)
	assert.NotEmpty(t, res.Error.Issues)
}

func TestInternalsMarker(t *testing.T) {
	assert.NotNil(t, String().Internals())
	assert.Equal(t, "object", Object(nil).Internals().TypeName)
	assert.True(t, Optional(String()).Internals().Optional)
	assert.True(t, RefineAsync(String(), func(context.Context, any) (bool, error) { return true, nil }, "").Internals().Async)
}
