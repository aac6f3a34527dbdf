// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dynarray

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is wrapped by every *IndexError.
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")

	// ErrInvalidArgument is wrapped by every *ArgumentError.
	ErrInvalidArgument = errors.New("dynarray: invalid argument")
)

// IndexError reports an index outside the valid range of an operation.
// Limit is the exclusive upper bound that applied: Size for Get, Set,
// Remove and Swap, Size+1 for Insert.
type IndexError struct {
	Op    string
	Index int
	Size  int
	Limit int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("dynarray: %s: index %d out of range [0,%d) with size %d",
		e.Op, e.Index, e.Limit, e.Size)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// ArgumentError reports a non-index argument outside its valid range.
type ArgumentError struct {
	Op    string
	Arg   string
	Value int
	Size  int
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("dynarray: %s: invalid %s %d, must be in [0,%d]",
		e.Op, e.Arg, e.Value, e.Size)
}

// Unwrap returns ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func checkIndex(op string, index, size int) error {
	if index < 0 || index >= size {
		return &IndexError{Op: op, Index: index, Size: size, Limit: size}
	}
	return nil
}

func checkInsertIndex(op string, index, size int) error {
	if index < 0 || index > size {
		return &IndexError{Op: op, Index: index, Size: size, Limit: size + 1}
	}
	return nil
}
