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

	"github.com/pkg/errors"
)

// IntervalDS holds an Oracle INTERVAL DAY TO SECOND value. All fields carry
// the same sign.
type IntervalDS struct {
	Days        int32
	Hours       int32
	Minutes     int32
	Seconds     int32
	Nanoseconds int32
}

func (it IntervalDS) negative() bool {
	return it.Days < 0 || it.Hours < 0 || it.Minutes < 0 || it.Seconds < 0 || it.Nanoseconds < 0
}

func (it IntervalDS) String() string {
	sign := '+'
	d, h, m, s, ns := it.Days, it.Hours, it.Minutes, it.Seconds, it.Nanoseconds
	if it.negative() {
		sign = '-'
		d, h, m, s, ns = -d, -h, -m, -s, -ns
	}
	return fmt.Sprintf("%c%02d %02d:%02d:%02d.%09d", sign, d, h, m, s, ns)
}

// ParseIntervalDS parses the format produced by String: "+DD HH:MM:SS.fffffffff"
// with an optional sign and day field of any width.
func ParseIntervalDS(s string) (IntervalDS, error) {
	bad := func() (IntervalDS, error) {
		return IntervalDS{}, errors.Errorf("cannot parse %q as INTERVAL DAY TO SECOND", s)
	}
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	sp := strings.IndexByte(s, ' ')
	if sp < 1 {
		return bad()
	}
	days, err := strconv.ParseInt(s[:sp], 10, 32)
	if err != nil {
		return bad()
	}
	rest := s[sp+1:]
	if len(rest) < 8 || rest[2] != ':' || rest[5] != ':' {
		return bad()
	}
	hours, err1 := strconv.Atoi(rest[0:2])
	minutes, err2 := strconv.Atoi(rest[3:5])
	seconds, err3 := strconv.Atoi(rest[6:8])
	if err1 != nil || err2 != nil || err3 != nil || hours > 23 || minutes > 59 || seconds > 59 {
		return bad()
	}
	var nsec int
	if frac := rest[8:]; frac != "" {
		if frac[0] != '.' || len(frac) < 2 || len(frac) > 10 {
			return bad()
		}
		if nsec, err = strconv.Atoi(frac[1:]); err != nil {
			return bad()
		}
		for i := len(frac) - 1; i < 9; i++ {
			nsec *= 10
		}
	}
	it := IntervalDS{
		Days:        int32(days),
		Hours:       int32(hours),
		Minutes:     int32(minutes),
		Seconds:     int32(seconds),
		Nanoseconds: int32(nsec),
	}
	if neg {
		it.Days, it.Hours, it.Minutes = -it.Days, -it.Hours, -it.Minutes
		it.Seconds, it.Nanoseconds = -it.Seconds, -it.Nanoseconds
	}
	return it, nil
}

// IntervalYM holds an Oracle INTERVAL YEAR TO MONTH value. Both fields carry
// the same sign.
type IntervalYM struct {
	Years  int32
	Months int32
}

func (it IntervalYM) String() string {
	sign := '+'
	y, m := it.Years, it.Months
	if y < 0 || m < 0 {
		sign = '-'
		y, m = -y, -m
	}
	return fmt.Sprintf("%c%02d-%02d", sign, y, m)
}

// ParseIntervalYM parses the format produced by String: "+YY-MM" with an
// optional sign and year field of any width.
func ParseIntervalYM(s string) (IntervalYM, error) {
	bad := func() (IntervalYM, error) {
		return IntervalYM{}, errors.Errorf("cannot parse %q as INTERVAL YEAR TO MONTH", s)
	}
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	dash := strings.IndexByte(s, '-')
	if dash < 1 {
		return bad()
	}
	years, err1 := strconv.ParseInt(s[:dash], 10, 32)
	months, err2 := strconv.Atoi(s[dash+1:])
	if err1 != nil || err2 != nil || months > 11 {
		return bad()
	}
	it := IntervalYM{Years: int32(years), Months: int32(months)}
	if neg {
		it.Years, it.Months = -it.Years, -it.Months
	}
	return it, nil
}
