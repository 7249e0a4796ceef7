package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAML_EncodeEmpty(t *testing.T) {
	data, err := YAML{}.Encode(Document{})
	require.NoError(t, err)
	assert.Equal(t, "take: []\nput: []\n", string(data))
}

func TestYAML_EncodeDecode(t *testing.T) {
	target := int64(900)
	doc := Document{
		Take:   []string{"23 - 10.25 Lunch"},
		Put:    []string{"22 + 200.50 Payment"},
		Target: &target,
		Extra:  map[string]any{"note": "hello"},
	}

	data, err := YAML{}.Encode(doc)
	require.NoError(t, err)

	raw, err := YAML{}.Decode(data)
	require.NoError(t, err)
	require.Empty(t, ValidateTypes(raw))
	assert.Equal(t, doc, fromRaw(raw))
}

func TestYAML_DecodeBlank(t *testing.T) {
	raw, err := YAML{}.Decode([]byte(""))
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestValidateTypes(t *testing.T) {
	ok := map[string]any{"take": []any{}, "put": []any{"1 + 2 x"}, "target": 10}
	assert.Empty(t, ValidateTypes(ok))

	bad := map[string]any{"put": []any{1}, "target": "10"}
	errs := ValidateTypes(bad)
	require.Len(t, errs, 3)
	assert.Equal(t, ValidationError{Field: "take", Description: "missing list"}, errs[0])
	assert.Equal(t, "put", errs[1].Field)
	assert.Equal(t, "target", errs[2].Field)
	assert.Equal(t, "target: expected an integer, got string", errs[2].Error())
}
