package dynarray

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexErrorMessage(t *testing.T) {
	err := checkIndex("get", 5, 3)
	assert.EqualError(t, err, "dynarray: get: index 5 out of range [0,3) with size 3")
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.False(t, errors.Is(err, ErrInvalidArgument))

	err = checkInsertIndex("insert", 4, 3)
	assert.EqualError(t, err, "dynarray: insert: index 4 out of range [0,4) with size 3")
	assert.NoError(t, checkInsertIndex("insert", 3, 3))
	assert.NoError(t, checkIndex("get", 0, 1))
}

func TestArgumentErrorMessage(t *testing.T) {
	err := From(1, 2).Split(-1)
	assert.EqualError(t, err, "dynarray: split: invalid size -1, must be in [0,2]")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.NotErrorIs(t, err, ErrIndexOutOfRange)
}
