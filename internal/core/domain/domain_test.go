package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_IsMatchesByCode(t *testing.T) {
	err := ErrNotFound.WithMessage("Decision not found.")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))

	wrapped := fmt.Errorf("get decision: %w", err)
	assert.ErrorIs(t, wrapped, ErrNotFound)

	var de *Error
	require.ErrorAs(t, wrapped, &de)
	assert.Equal(t, "Decision not found.", de.Message)
	assert.Equal(t, 404, de.Status)
}

func TestError_CopiesDoNotMutateSentinels(t *testing.T) {
	_ = ErrConflict.WithDetails(map[string]any{"constraint": "users_email_key"})
	_ = ErrConflict.WithMessage("Email already registered.")

	assert.Nil(t, ErrConflict.Details)
	assert.Equal(t, "Resource already exists.", ErrConflict.Message)
}

func TestError_WrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := ErrInvalidInput.Wrap(cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestJSONValue_RoundTrip(t *testing.T) {
	in := `{"b":[1,2.50,"x",true,null],"a":{"n":12345678901234567890}}`

	var v JSONValue
	require.NoError(t, json.Unmarshal([]byte(in), &v))
	assert.Equal(t, JSONObject, v.Kind)
	assert.Equal(t, 2, v.Len())

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"n":12345678901234567890},"b":[1,2.50,"x",true,null]}`, string(out))
}

func TestJSONValue_ScanAndValue(t *testing.T) {
	var v JSONValue
	require.NoError(t, v.Scan([]byte(`["a","b"]`)))
	assert.True(t, v.IsArray())
	assert.Equal(t, 2, v.Len())

	dv, err := v.Value()
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, dv)

	require.NoError(t, v.Scan(nil))
	assert.Equal(t, JSONNull, v.Kind)

	assert.Error(t, v.Scan(42))
}

func TestJSONValue_EmptyConstructors(t *testing.T) {
	a, err := json.Marshal(ArrayValue())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(a))

	o, err := json.Marshal(ObjectValue(nil))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(o))

	assert.Equal(t, "array", JSONArray.String())
	assert.Equal(t, "null", JSONNull.String())
}
