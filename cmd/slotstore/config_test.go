package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlots(t *testing.T) {
	data := []byte(`
slots:
  theme:
    type: string
    default: dark
  retries:
    key: app.retries
    type: int
    default: "3"
  timeout:
    type: duration
    default: 30s
  user:
    type: json
    default: '{"name":"","age":0}'
`)

	defs, err := parseSlots(data)
	require.NoError(t, err)
	require.Len(t, defs, 4)

	assert.Equal(t, "dark", defs["theme"].Default)
	assert.False(t, defs["theme"].JSON)

	assert.Equal(t, "app.retries", defs["retries"].Key)
	assert.Equal(t, 3, defs["retries"].Default)

	assert.Equal(t, 30*time.Second, defs["timeout"].Default)

	assert.True(t, defs["user"].JSON)
	assert.Equal(t, map[string]any{"name": "", "age": float64(0)}, defs["user"].Default)
}

func TestParseSlotsUnknownType(t *testing.T) {
	_, err := parseSlots([]byte("slots:\n  x:\n    type: tuple\n"))
	assert.ErrorContains(t, err, "unknown slot type")
}

func TestParseSlotsInvalidDefault(t *testing.T) {
	_, err := parseSlots([]byte("slots:\n  retries:\n    type: int\n    default: lots\n"))
	assert.ErrorContains(t, err, "invalid default")
}

func TestParseSlotsEmpty(t *testing.T) {
	defs, err := parseSlots([]byte("slots: {}\n"))
	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestParseAndRenderValue(t *testing.T) {
	defs, err := parseSlots([]byte(`
slots:
  retries:
    type: int
    default: "3"
  user:
    type: json
    default: '{"name":"","age":0}'
`))
	require.NoError(t, err)

	value, err := parseText(defs["retries"], "42")
	require.NoError(t, err)
	assert.Equal(t, 42, value)

	text, err := renderValue(defs["retries"], value)
	require.NoError(t, err)
	assert.Equal(t, "42", text)

	_, err = parseText(defs["retries"], "many")
	assert.Error(t, err)

	decoded, err := parseText(defs["user"], `{"name":"John","age":30}`)
	require.NoError(t, err)
	rendered, err := renderValue(defs["user"], decoded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"John","age":30}`, rendered)

	_, err = parseText(defs["user"], `{"name":`)
	assert.Error(t, err)
}
