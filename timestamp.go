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
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Timestamp holds an Oracle DATE or TIMESTAMP value. Unlike time.Time it
// keeps the time zone as a plain offset and allows year zero, matching what
// the server stores.
type Timestamp struct {
	Year           int
	Month          int
	Day            int
	Hour           int
	Minute         int
	Second         int
	Nanosecond     uint32
	TZHourOffset   int
	TZMinuteOffset int
}

// NewTimestamp builds a Timestamp with a zero time zone offset.
func NewTimestamp(year, month, day, hour, minute, second int, nanosecond uint32) Timestamp {
	return Timestamp{
		Year:       year,
		Month:      month,
		Day:        day,
		Hour:       hour,
		Minute:     minute,
		Second:     second,
		Nanosecond: nanosecond,
	}
}

// TimestampFromTime converts a time.Time.
func TimestampFromTime(t time.Time) Timestamp {
	_, off := t.Zone()
	return Timestamp{
		Year:           t.Year(),
		Month:          int(t.Month()),
		Day:            t.Day(),
		Hour:           t.Hour(),
		Minute:         t.Minute(),
		Second:         t.Second(),
		Nanosecond:     uint32(t.Nanosecond()),
		TZHourOffset:   off / 3600,
		TZMinuteOffset: off % 3600 / 60,
	}
}

// TZOffsetSeconds returns the time zone offset in seconds.
func (ts Timestamp) TZOffsetSeconds() int {
	return ts.TZHourOffset*3600 + ts.TZMinuteOffset*60
}

func (ts Timestamp) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%04d-%02d-%02d %02d:%02d:%02d.%09d",
		ts.Year, ts.Month, ts.Day, ts.Hour, ts.Minute, ts.Second, ts.Nanosecond)
	sign := '+'
	h, m := ts.TZHourOffset, ts.TZMinuteOffset
	if h < 0 || m < 0 {
		sign = '-'
		h, m = -h, -m
	}
	fmt.Fprintf(&b, " %c%02d:%02d", sign, h, m)
	return b.String()
}

// ParseTimestamp accepts "YYYY-MM-DD", optionally followed by
// " HH:MM:SS[.fffffffff]" and an optional time zone " +HH:MM" or "Z".
func ParseTimestamp(s string) (Timestamp, error) {
	var ts Timestamp
	bad := func() (Timestamp, error) {
		return Timestamp{}, errors.Errorf("cannot parse %q as timestamp", s)
	}
	if len(s) < 10 || s[4] != '-' || s[7] != '-' {
		return bad()
	}
	var err error
	if ts.Year, err = strconv.Atoi(s[0:4]); err != nil {
		return bad()
	}
	if ts.Month, err = strconv.Atoi(s[5:7]); err != nil {
		return bad()
	}
	if ts.Day, err = strconv.Atoi(s[8:10]); err != nil {
		return bad()
	}
	if ts.Month < 1 || ts.Month > 12 || ts.Day < 1 || ts.Day > 31 {
		return bad()
	}
	rest := s[10:]
	if rest == "" {
		return ts, nil
	}
	if rest[0] != ' ' && rest[0] != 'T' {
		return bad()
	}
	rest = rest[1:]
	if len(rest) < 8 || rest[2] != ':' || rest[5] != ':' {
		return bad()
	}
	if ts.Hour, err = strconv.Atoi(rest[0:2]); err != nil {
		return bad()
	}
	if ts.Minute, err = strconv.Atoi(rest[3:5]); err != nil {
		return bad()
	}
	if ts.Second, err = strconv.Atoi(rest[6:8]); err != nil {
		return bad()
	}
	if ts.Hour > 23 || ts.Minute > 59 || ts.Second > 59 {
		return bad()
	}
	rest = rest[8:]
	if rest != "" && rest[0] == '.' {
		end := 1
		for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
			end++
		}
		frac := rest[1:end]
		if frac == "" || len(frac) > 9 {
			return bad()
		}
		n, err := strconv.Atoi(frac)
		if err != nil {
			return bad()
		}
		for i := len(frac); i < 9; i++ {
			n *= 10
		}
		ts.Nanosecond = uint32(n)
		rest = rest[end:]
	}
	switch {
	case rest == "":
		return ts, nil
	case rest == "Z":
		return ts, nil
	}
	if rest[0] == ' ' {
		rest = rest[1:]
	}
	if len(rest) != 6 || (rest[0] != '+' && rest[0] != '-') || rest[3] != ':' {
		return bad()
	}
	h, err := strconv.Atoi(rest[1:3])
	if err != nil {
		return bad()
	}
	m, err := strconv.Atoi(rest[4:6])
	if err != nil {
		return bad()
	}
	if rest[0] == '-' {
		h, m = -h, -m
	}
	ts.TZHourOffset, ts.TZMinuteOffset = h, m
	return ts, nil
}
