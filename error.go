/*
  The MIT License (MIT)

  Copyright (c) 2015 Nirbhay Choubey

  Permission is hereby granted, free of charge, to any person obtaining a copy
  of this software and associated documentation files (the "Software"), to deal
  in the Software without restriction, including without limitation the rights
  to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
  copies of the Software, and to permit persons to whom the Software is
  furnished to do so, subject to the following conditions:

  The above copyright notice and this permission notice shall be included in all
  copies or substantial portions of the Software.

  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
  IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
  FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
  AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
  LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
  OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
  SOFTWARE.
*/

package oracle

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel conditions returned by SqlValue and Statement operations.
//
// ErrNoMoreData terminates fetch loops and is not a failure; the other
// sentinels indicate caller errors.
var (
	ErrNullValue              = errors.New("NULL value found")
	ErrNoMoreData             = errors.New("no more data to be fetched")
	ErrUninitializedBindValue = errors.New("try to access uninitialized bind value")
)

// InvalidTypeConversionError is returned when a conversion between an Oracle
// type and a Go type is not defined.
type InvalidTypeConversionError struct {
	From string
	To   string
}

func (e *InvalidTypeConversionError) Error() string {
	return fmt.Sprintf("invalid type conversion from %s to %s", e.From, e.To)
}

// OverflowError is returned when a numeric value does not fit the requested
// destination type.
type OverflowError struct {
	Value string
	Type  string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("number too large to convert %s to %s", e.Value, e.Type)
}

// NotSupportedError is returned by the type catalog for Oracle types this
// package cannot allocate buffers for yet.
type NotSupportedError struct {
	Type string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("not supported oracle type %s", e.Type)
}

type InvalidBindIndexError struct {
	Index int
}

func (e *InvalidBindIndexError) Error() string {
	return fmt.Sprintf("invalid bind index %d (one-based)", e.Index)
}

type InvalidBindNameError struct {
	Name string
}

func (e *InvalidBindNameError) Error() string {
	return fmt.Sprintf("invalid bind name %s", e.Name)
}

type InvalidColumnIndexError struct {
	Index int
}

func (e *InvalidColumnIndexError) Error() string {
	return fmt.Sprintf("invalid column index %d (zero-based)", e.Index)
}

type InvalidColumnNameError struct {
	Name string
}

func (e *InvalidColumnNameError) Error() string {
	return fmt.Sprintf("invalid column name %s", e.Name)
}

// Error is a failure reported by the native client. It is propagated to the
// caller unchanged; this package neither retries nor interprets the code.
type Error struct {
	code    int32
	message string
	offset  uint16
	fnName  string
	action  string
	when    time.Time
}

// NewError builds a native client error. Exported for capability
// implementations.
func NewError(code int32, message, fnName, action string, offset uint16) *Error {
	return &Error{
		code:    code,
		message: message,
		offset:  offset,
		fnName:  fnName,
		action:  action,
		when:    time.Now(),
	}
}

func (e *Error) Error() string {
	return e.message
}

// Code returns the Oracle error number, e.g. 1017 for ORA-01017.
func (e *Error) Code() int32 {
	return e.code
}

// Message returns the error message.
func (e *Error) Message() string {
	return e.message
}

// Offset returns the offset into the statement text at which the error was
// detected, when the server reports one.
func (e *Error) Offset() uint16 {
	return e.offset
}

// FnName returns the native client function that failed.
func (e *Error) FnName() string {
	return e.fnName
}

// Action returns what the native client was doing when the failure occurred.
func (e *Error) Action() string {
	return e.action
}

// When returns time when error occurred.
func (e *Error) When() time.Time {
	return e.when
}
