package dynarray

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugTrace(t *testing.T) {
	var buf bytes.Buffer
	prevOut := SetDebugOutput(&buf)
	prevOn := SetDebug(true)
	defer func() {
		SetDebug(prevOn)
		SetDebugOutput(prevOut)
	}()

	l := NewWithCapacity[int](1)
	l.Add(1)
	l.Add(2)
	require.NoError(t, l.Split(1))
	l.Clear()

	out := buf.String()
	assert.Contains(t, out, "[dynarray] grow: cap 1 -> 2")
	assert.Contains(t, out, "[dynarray] split: size 2 -> 1")
	assert.Contains(t, out, "[dynarray] clear: size 1, cap 2 -> 15")
}

func TestDebugTraceOff(t *testing.T) {
	var buf bytes.Buffer
	prevOut := SetDebugOutput(&buf)
	prevOn := SetDebug(false)
	defer func() {
		SetDebug(prevOn)
		SetDebugOutput(prevOut)
	}()

	l := NewWithCapacity[int](1)
	l.Add(1)
	l.Add(2)
	l.Clear()
	assert.Empty(t, buf.String())

	_, err := l.Get(5)
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}
