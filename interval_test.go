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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalDSString(t *testing.T) {
	tests := []struct {
		it   IntervalDS
		want string
	}{
		{IntervalDS{}, "+00 00:00:00.000000000"},
		{IntervalDS{Days: 1, Hours: 2, Minutes: 3, Seconds: 4, Nanoseconds: 500000000}, "+01 02:03:04.500000000"},
		{IntervalDS{Days: -1, Hours: -2, Minutes: -3, Seconds: -4, Nanoseconds: -500000000}, "-01 02:03:04.500000000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.it.String())
	}
}

func TestParseIntervalDS(t *testing.T) {
	tests := []struct {
		in   string
		want IntervalDS
	}{
		{"+01 02:03:04.500000000", IntervalDS{Days: 1, Hours: 2, Minutes: 3, Seconds: 4, Nanoseconds: 500000000}},
		{"1 02:03:04", IntervalDS{Days: 1, Hours: 2, Minutes: 3, Seconds: 4}},
		{"+123 10:20:30.4", IntervalDS{Days: 123, Hours: 10, Minutes: 20, Seconds: 30, Nanoseconds: 400000000}},
		{"-02 03:04:05", IntervalDS{Days: -2, Hours: -3, Minutes: -4, Seconds: -5}},
	}
	for _, tt := range tests {
		got, err := ParseIntervalDS(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "1", "01 25:00:00", "01 02:03", "01 02:03:04.", "xx 01:02:03"} {
		_, err := ParseIntervalDS(bad)
		assert.Error(t, err, bad)
	}
}

func TestIntervalDSRoundTrip(t *testing.T) {
	it := IntervalDS{Days: -7, Hours: -23, Minutes: -59, Seconds: -59, Nanoseconds: -999999999}
	got, err := ParseIntervalDS(it.String())
	require.NoError(t, err)
	assert.Equal(t, it, got)
}

func TestIntervalYMString(t *testing.T) {
	assert.Equal(t, "+00-00", IntervalYM{}.String())
	assert.Equal(t, "+01-02", IntervalYM{Years: 1, Months: 2}.String())
	assert.Equal(t, "-10-11", IntervalYM{Years: -10, Months: -11}.String())
}

func TestParseIntervalYM(t *testing.T) {
	tests := []struct {
		in   string
		want IntervalYM
	}{
		{"+01-02", IntervalYM{Years: 1, Months: 2}},
		{"1-2", IntervalYM{Years: 1, Months: 2}},
		{"-10-11", IntervalYM{Years: -10, Months: -11}},
		{"+1234-00", IntervalYM{Years: 1234}},
	}
	for _, tt := range tests {
		got, err := ParseIntervalYM(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "5", "-5", "01-12", "x-1"} {
		_, err := ParseIntervalYM(bad)
		assert.Error(t, err, bad)
	}
}
