package codec

import (
	"errors"
	"testing"

	"github.com/josephgoksu/todo/models"
	"github.com/josephgoksu/todo/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Empty(t *testing.T) {
	data, err := Encode(models.NewTaskList())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	data, err = Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		`[]`,
		`[{"description":"buy milk","date":"2024-01-15 09:30:00"}]`,
		`[{"description":"a","date":"2024-01-15 09:30:00"},{"description":"a","date":"2024-01-15 09:30:00"},{"description":" leading space","date":"1999-12-31 23:59:59"}]`,
		`[{"description":"unicode ✓ задача","date":"2030-06-01 00:00:00"}]`,
		`[{"description":"fix <b> & a\\b \"q\"","date":"2024-02-29 12:00:00"}]`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			list, err := Decode([]byte(input))
			require.NoError(t, err)

			data, err := Encode(list)
			require.NoError(t, err)
			assert.Equal(t, input, string(data))
		})
	}
}

func TestRoundTrip_FreshList(t *testing.T) {
	list := models.NewTaskList()
	list.Add("first")
	list.Add("second")

	encoded, err := Encode(list)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)

	reencoded, err := Encode(decoded)
	require.NoError(t, err)
	assert.Equal(t, string(encoded), string(reencoded))
	assert.Equal(t, 2, decoded.Len())
}

func TestDecode_Whitespace(t *testing.T) {
	list, err := Decode([]byte("\n  [ {\"description\": \"x\", \"date\": \"2024-01-15 09:30:00\"} ]\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, list.Len())
}

func TestDecode_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty file", ``},
		{"truncated array", `[{"description":"a","date":"2024-01-15 09:30:00"}`},
		{"not json", `buy milk`},
		{"top-level object", `{"description":"a","date":"2024-01-15 09:30:00"}`},
		{"top-level null", `null`},
		{"top-level string", `"a"`},
		{"array of strings", `["buy milk"," walk dog"]`},
		{"missing date", `[{"description":"a"}]`},
		{"missing description", `[{"date":"2024-01-15 09:30:00"}]`},
		{"wrong description type", `[{"description":1,"date":"2024-01-15 09:30:00"}]`},
		{"wrong date pattern", `[{"description":"a","date":"15/01/2024"}]`},
		{"impossible date", `[{"description":"a","date":"2024-13-45 09:30:00"}]`},
		{"trailing data", `[] []`},
		{"fractional seconds", `[{"description":"a","date":"2024-01-15 09:30:00.5"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := Decode([]byte(tt.input))
			require.Error(t, err)
			assert.Nil(t, list)
			assert.True(t, errors.Is(err, types.ErrSyntax), "got %v", err)
			assert.Equal(t, types.KindSyntax, types.KindOf(err))
		})
	}
}

func TestJSONPointerToPath(t *testing.T) {
	assert.Equal(t, "", jsonPointerToPath(""))
	assert.Equal(t, "[0].date", jsonPointerToPath("/0/date"))
	assert.Equal(t, "[2]", jsonPointerToPath("#/2"))
}
