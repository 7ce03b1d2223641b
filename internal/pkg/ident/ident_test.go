package ident

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDMarshalsAsDecimalString(t *testing.T) {
	out, err := json.Marshal(ID(9007199254740993)) // beyond float64 precision
	require.NoError(t, err)
	assert.Equal(t, `"9007199254740993"`, string(out))
}

func TestIDUnmarshal(t *testing.T) {
	cases := []struct {
		input string
		want  ID
	}{
		{`"42"`, 42},
		{`42`, 42},
		{`"9007199254740993"`, 9007199254740993},
		{`null`, 0},
	}
	for _, c := range cases {
		var id ID
		err := json.Unmarshal([]byte(c.input), &id)
		require.NoError(t, err, c.input)
		assert.Equal(t, c.want, id, c.input)
	}
}

func TestIDUnmarshalRejectsGarbage(t *testing.T) {
	for _, input := range []string{`"abc"`, `"12.5"`, `"12abc"`, `true`} {
		var id ID
		assert.Error(t, json.Unmarshal([]byte(input), &id), input)
	}
}

func TestParse(t *testing.T) {
	id, err := Parse(" 17 ")
	require.NoError(t, err)
	assert.Equal(t, ID(17), id)

	_, err = Parse("seventeen")
	assert.Error(t, err)
}
