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
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// hexString renders raw bytes the way Oracle displays RAW values.
func hexString(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// parseHexString converts a hexadecimal string (either case) into raw bytes.
func parseHexString(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse %q as RAW", s)
	}
	return b, nil
}

// checkNumberFormat validates an Oracle number literal: optional sign, digits
// with at most one decimal point, optional E+-exponent. The text is written
// into the numeric buffer verbatim, so malformed input must be rejected here.
func checkNumberFormat(s string) error {
	badFormat := func() error {
		return errors.Errorf("invalid number format: %q", s)
	}
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits, dot := 0, false
	for i < len(s) {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			if dot {
				return badFormat()
			}
			dot = true
		case c == 'e' || c == 'E':
			if digits == 0 {
				return badFormat()
			}
			return checkExponent(s, i+1)
		default:
			return badFormat()
		}
		i++
	}
	if digits == 0 {
		return badFormat()
	}
	return nil
}

func checkExponent(s string, i int) error {
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if i >= len(s) {
		return errors.Errorf("invalid number format: %q", s)
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return errors.Errorf("invalid number format: %q", s)
		}
	}
	return nil
}
