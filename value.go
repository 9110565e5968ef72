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
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// SqlValue holds one Oracle value inside a native buffer.
//
// A SqlValue is either backed by a client-allocated buffer (bind variables and
// query columns, array capacity >= 1) or borrows a single buffer slot owned by
// an enclosing object value. Getters dispatch on the buffer's native encoding,
// check NULL first, and convert to the requested Go type; a value outside the
// destination's range fails with *OverflowError, an undefined conversion with
// *InvalidTypeConversionError. Setters are symmetric and always clear the NULL
// flag on success.
type SqlValue struct {
	client         NativeClient
	ctxt           *Context
	handle         VarHandle
	data           []Data
	native         NativeType
	oratype        *OracleType // nil until the first initHandle
	arraySize      uint32
	bufferRowIndex uint32
	keepBytes      []byte
	keepObject     ObjectHandle
}

// newSqlValue returns an unbound cell for bind variables and query columns.
// The buffer is allocated lazily by initHandle.
func newSqlValue(client NativeClient, ctxt *Context) *SqlValue {
	return &SqlValue{client: client, ctxt: ctxt, native: NativeInt64}
}

// NewSqlValueFromOratype wraps a buffer slot supplied by an owning object
// value. The capacity is fixed at one element and no allocation takes place.
func NewSqlValueFromOratype(client NativeClient, ctxt *Context, oratype *OracleType, data []Data) (*SqlValue, error) {
	_, native, _, _, err := oratype.varCreateParam()
	if err != nil {
		return nil, err
	}
	return &SqlValue{
		client:  client,
		ctxt:    ctxt,
		data:    data,
		native:  native,
		oratype: oratype,
	}, nil
}

func (v *SqlValue) handleIsReusable(oratype *OracleType, arraySize uint32) (bool, error) {
	if v.handle == nil {
		return false, nil
	}
	if v.arraySize != arraySize {
		return false, nil
	}
	if v.oratype == nil {
		return false, nil
	}
	curNum, curNative, curSize, _, err := v.oratype.varCreateParam()
	if err != nil {
		return false, err
	}
	newNum, newNative, newSize, _, err := oratype.varCreateParam()
	if err != nil {
		return false, err
	}
	if curNum != newNum {
		return false, nil
	}
	switch curNum {
	case TypeVarchar2, TypeNvarchar2, TypeChar, TypeNchar, TypeRaw:
		return curSize >= newSize, nil
	case TypeObject:
		return curNative == newNative, nil
	}
	return true, nil
}

// initHandle reconciles the buffer against the requested type and capacity.
// It returns false without touching the buffer when the existing one can be
// reused; otherwise it releases the old buffer, allocates a new one and
// returns true so the owner re-attaches it to the statement.
func (v *SqlValue) initHandle(oratype *OracleType, arraySize uint32) (bool, error) {
	reusable, err := v.handleIsReusable(oratype, arraySize)
	if err != nil {
		return false, err
	}
	if reusable {
		return false, nil
	}
	if v.handle != nil {
		if err := v.client.ReleaseVar(v.handle); err != nil {
			return false, err
		}
		v.handle = nil
	}
	num, native, size, sizeIsBytes, err := oratype.varCreateParam()
	if err != nil {
		return false, err
	}
	var objHandle ObjectTypeHandle
	if objType := oratype.ObjectType(); objType != nil {
		objHandle = objType.Handle()
	}
	handle, data, err := v.client.NewVar(num, native, arraySize, size, sizeIsBytes, objHandle)
	if err != nil {
		return false, errors.Wrap(err, "allocating value buffer")
	}
	v.handle = handle
	v.data = data
	v.native = native
	v.oratype = oratype
	v.arraySize = arraySize
	return true, nil
}

// Clone shares the underlying buffer; the reference count on the native
// buffer is bumped so that both cells release it exactly once each.
func (v *SqlValue) Clone() (*SqlValue, error) {
	if v.handle != nil {
		if err := v.client.AddRefVar(v.handle); err != nil {
			return nil, err
		}
	}
	return &SqlValue{
		client:         v.client,
		ctxt:           v.ctxt,
		handle:         v.handle,
		data:           v.data,
		native:         v.native,
		oratype:        v.oratype,
		arraySize:      v.arraySize,
		bufferRowIndex: v.bufferRowIndex,
	}, nil
}

// close releases the native buffer and any retained object handle, each
// exactly once.
func (v *SqlValue) close() error {
	var result *multierror.Error
	if v.handle != nil {
		result = multierror.Append(result, v.client.ReleaseVar(v.handle))
		v.handle = nil
	}
	if v.keepObject != nil {
		result = multierror.Append(result, v.client.ReleaseObject(v.keepObject))
		v.keepObject = nil
	}
	return result.ErrorOrNil()
}

func (v *SqlValue) activeData() *Data {
	return &v.data[v.bufferRowIndex]
}

func (v *SqlValue) invalidConversionToGoType(to string) error {
	if v.oratype == nil {
		return ErrUninitializedBindValue
	}
	return &InvalidTypeConversionError{From: v.oratype.String(), To: to}
}

func (v *SqlValue) invalidConversionFromGoType(from string) error {
	if v.oratype == nil {
		return ErrUninitializedBindValue
	}
	return &InvalidTypeConversionError{From: from, To: v.oratype.String()}
}

func (v *SqlValue) checkNotNull() error {
	null, err := v.IsNull()
	if err != nil {
		return err
	}
	if null {
		return ErrNullValue
	}
	return nil
}

// IsNull reports whether the value is NULL.
func (v *SqlValue) IsNull() (bool, error) {
	if v.data == nil {
		return false, ErrUninitializedBindValue
	}
	return v.activeData().IsNull(), nil
}

// SetNull sets the value to NULL. The encoded payload is left untouched.
func (v *SqlValue) SetNull() error {
	if v.data == nil {
		return ErrUninitializedBindValue
	}
	v.activeData().SetNull()
	return nil
}

// OracleType returns the Oracle type of the value.
func (v *SqlValue) OracleType() (*OracleType, error) {
	if v.oratype == nil {
		return nil, ErrUninitializedBindValue
	}
	return v.oratype, nil
}

func (v *SqlValue) String() string {
	if v.oratype == nil {
		return "SqlValue(uninitialized)"
	}
	return fmt.Sprintf("SqlValue(%s)", v.oratype)
}

//
// unchecked getters: the native type must match, callers dispatch first
//

func (v *SqlValue) getInt64Unchecked() (int64, error) {
	if err := v.checkNotNull(); err != nil {
		return 0, err
	}
	return v.activeData().GetInt64(), nil
}

func (v *SqlValue) getUint64Unchecked() (uint64, error) {
	if err := v.checkNotNull(); err != nil {
		return 0, err
	}
	return v.activeData().GetUint64(), nil
}

func (v *SqlValue) getFloatUnchecked() (float32, error) {
	if err := v.checkNotNull(); err != nil {
		return 0, err
	}
	return v.activeData().GetFloat(), nil
}

func (v *SqlValue) getDoubleUnchecked() (float64, error) {
	if err := v.checkNotNull(); err != nil {
		return 0, err
	}
	return v.activeData().GetDouble(), nil
}

func (v *SqlValue) getStringUnchecked() (string, error) {
	if err := v.checkNotNull(); err != nil {
		return "", err
	}
	return string(v.activeData().GetBytes()), nil
}

func (v *SqlValue) getRawUnchecked() ([]byte, error) {
	if err := v.checkNotNull(); err != nil {
		return nil, err
	}
	b := v.activeData().GetBytes()
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (v *SqlValue) getTimestampUnchecked() (Timestamp, error) {
	if err := v.checkNotNull(); err != nil {
		return Timestamp{}, err
	}
	return v.activeData().GetTimestamp(), nil
}

func (v *SqlValue) getIntervalDSUnchecked() (IntervalDS, error) {
	if err := v.checkNotNull(); err != nil {
		return IntervalDS{}, err
	}
	return v.activeData().GetIntervalDS(), nil
}

func (v *SqlValue) getIntervalYMUnchecked() (IntervalYM, error) {
	if err := v.checkNotNull(); err != nil {
		return IntervalYM{}, err
	}
	return v.activeData().GetIntervalYM(), nil
}

func (v *SqlValue) getBoolUnchecked() (bool, error) {
	if err := v.checkNotNull(); err != nil {
		return false, err
	}
	return v.activeData().GetBool(), nil
}

// getClobAsStringUnchecked streams the CLOB in bounded chunks so that peak
// memory stays independent of the object size.
func (v *SqlValue) getClobAsStringUnchecked() (string, error) {
	if err := v.checkNotNull(); err != nil {
		return "", err
	}
	chunkChars := uint64(v.ctxt.LobChunkSize)
	lob := v.activeData().GetLob()
	totalChars, err := v.client.LobSize(lob)
	if err != nil {
		return "", err
	}
	totalBytes, err := v.client.LobBufferSize(lob, totalChars)
	if err != nil {
		return "", err
	}
	bufSize, err := v.client.LobBufferSize(lob, chunkChars)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(int(totalBytes))
	buf := make([]byte, bufSize)
	for offset := uint64(1); offset <= totalChars; offset += chunkChars {
		n, err := v.client.LobRead(lob, offset, chunkChars, buf)
		if err != nil {
			return "", errors.Wrap(err, "reading CLOB chunk")
		}
		b.Write(buf[:n])
	}
	return b.String(), nil
}

func (v *SqlValue) getBlobAsHexStringUnchecked() (string, error) {
	if err := v.checkNotNull(); err != nil {
		return "", err
	}
	chunkSize := uint64(v.ctxt.LobChunkSize)
	lob := v.activeData().GetLob()
	totalSize, err := v.client.LobSize(lob)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(int(totalSize * 2))
	buf := make([]byte, chunkSize)
	for offset := uint64(1); offset <= totalSize; offset += chunkSize {
		n, err := v.client.LobRead(lob, offset, chunkSize, buf)
		if err != nil {
			return "", errors.Wrap(err, "reading BLOB chunk")
		}
		b.WriteString(hexString(buf[:n]))
	}
	return b.String(), nil
}

func (v *SqlValue) getObjectUnchecked() (ObjectHandle, error) {
	if err := v.checkNotNull(); err != nil {
		return nil, err
	}
	return v.activeData().GetObject(), nil
}

// getString reads character-ish encodings only; used by the numeric getters
// for the text fallback.
func (v *SqlValue) getString() (string, error) {
	switch v.native {
	case NativeChar, NativeNumber:
		return v.getStringUnchecked()
	case NativeCLOB:
		return v.getClobAsStringUnchecked()
	}
	return "", v.invalidConversionToGoType("string")
}

//
// unchecked setters
//

func (v *SqlValue) setBytesUnchecked(b []byte) error {
	if v.handle == nil {
		// Attribute cell with no client-owned buffer: retain our own copy.
		v.keepBytes = make([]byte, len(b))
		copy(v.keepBytes, b)
		v.activeData().SetBytes(v.keepBytes)
		return nil
	}
	return v.client.SetVarFromBytes(v.handle, v.bufferRowIndex, b)
}

func (v *SqlValue) setStringToClobUnchecked(s string) error {
	lob := v.activeData().GetLob()
	if err := v.client.LobTrim(lob, 0); err != nil {
		return err
	}
	if err := v.client.LobWrite(lob, 1, []byte(s)); err != nil {
		return err
	}
	v.activeData().SetLob(lob)
	return nil
}

func (v *SqlValue) setRawToBlobUnchecked(b []byte) error {
	lob := v.activeData().GetLob()
	if err := v.client.LobTrim(lob, 0); err != nil {
		return err
	}
	if err := v.client.LobWrite(lob, 1, b); err != nil {
		return err
	}
	v.activeData().SetLob(lob)
	return nil
}

func (v *SqlValue) setObjectUnchecked(obj ObjectHandle) error {
	if v.handle == nil {
		if v.keepObject != nil {
			if err := v.client.ReleaseObject(v.keepObject); err != nil {
				return err
			}
			v.keepObject = nil
		}
		if err := v.client.AddRefObject(obj); err != nil {
			return err
		}
		v.activeData().SetObject(obj)
		v.keepObject = obj
		return nil
	}
	return v.client.SetVarFromObject(v.handle, v.bufferRowIndex, obj)
}

//
// numeric conversion helpers
//

func fltToInt(val float64, min, max int64, destType string) (int64, error) {
	// float64(MaxInt64) rounds up to 2^63, which int64 cannot hold; the
	// upper bound must stay exclusive there or the conversion wraps.
	if float64(min) <= val && val <= float64(max) && val < 1<<63 {
		return int64(val), nil
	}
	return 0, &OverflowError{Value: strconv.FormatFloat(val, 'g', -1, 64), Type: destType}
}

func fltToUint(val float64, max uint64, destType string) (uint64, error) {
	// Same rounding hazard as fltToInt: float64(MaxUint64) is exactly 2^64.
	if 0 <= val && val <= float64(max) && val < 1<<64 {
		return uint64(val), nil
	}
	return 0, &OverflowError{Value: strconv.FormatFloat(val, 'g', -1, 64), Type: destType}
}

func parseSignedText(s, destType string, bitSize int) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, bitSize)
	if nerr, ok := err.(*strconv.NumError); ok && nerr.Err == strconv.ErrRange {
		return 0, &OverflowError{Value: s, Type: destType}
	}
	if err != nil {
		return 0, errors.Wrapf(err, "cannot parse %q as %s", s, destType)
	}
	return n, nil
}

func parseUnsignedText(s, destType string, bitSize int) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, bitSize)
	if nerr, ok := err.(*strconv.NumError); ok && nerr.Err == strconv.ErrRange {
		return 0, &OverflowError{Value: s, Type: destType}
	}
	if err != nil {
		return 0, errors.Wrapf(err, "cannot parse %q as %s", s, destType)
	}
	return n, nil
}

// asInt64Named is the common dispatch for the signed integer getters.
func (v *SqlValue) asInt64Named(destType string, min, max int64, bitSize int) (int64, error) {
	var n int64
	switch v.native {
	case NativeInt64:
		got, err := v.getInt64Unchecked()
		if err != nil {
			return 0, err
		}
		n = got
	case NativeUint64:
		u, err := v.getUint64Unchecked()
		if err != nil {
			return 0, err
		}
		if u > uint64(max) {
			return 0, &OverflowError{Value: strconv.FormatUint(u, 10), Type: destType}
		}
		return int64(u), nil
	case NativeFloat:
		f, err := v.getFloatUnchecked()
		if err != nil {
			return 0, err
		}
		return fltToInt(float64(f), min, max, destType)
	case NativeDouble:
		f, err := v.getDoubleUnchecked()
		if err != nil {
			return 0, err
		}
		return fltToInt(f, min, max, destType)
	case NativeChar, NativeNumber, NativeCLOB:
		s, err := v.getString()
		if err != nil {
			return 0, err
		}
		return parseSignedText(s, destType, bitSize)
	default:
		return 0, v.invalidConversionToGoType(destType)
	}
	if n < min || n > max {
		return 0, &OverflowError{Value: strconv.FormatInt(n, 10), Type: destType}
	}
	return n, nil
}

// asUint64Named is the common dispatch for the unsigned integer getters.
func (v *SqlValue) asUint64Named(destType string, max uint64, bitSize int) (uint64, error) {
	var n uint64
	switch v.native {
	case NativeInt64:
		got, err := v.getInt64Unchecked()
		if err != nil {
			return 0, err
		}
		if got < 0 {
			return 0, &OverflowError{Value: strconv.FormatInt(got, 10), Type: destType}
		}
		n = uint64(got)
	case NativeUint64:
		got, err := v.getUint64Unchecked()
		if err != nil {
			return 0, err
		}
		n = got
	case NativeFloat:
		f, err := v.getFloatUnchecked()
		if err != nil {
			return 0, err
		}
		return fltToUint(float64(f), max, destType)
	case NativeDouble:
		f, err := v.getDoubleUnchecked()
		if err != nil {
			return 0, err
		}
		return fltToUint(f, max, destType)
	case NativeChar, NativeNumber, NativeCLOB:
		s, err := v.getString()
		if err != nil {
			return 0, err
		}
		return parseUnsignedText(s, destType, bitSize)
	default:
		return 0, v.invalidConversionToGoType(destType)
	}
	if n > max {
		return 0, &OverflowError{Value: strconv.FormatUint(n, 10), Type: destType}
	}
	return n, nil
}

//
// typed getters
//

// AsInt64 gets the value as int64. The Oracle type must be numeric or a
// string type.
func (v *SqlValue) AsInt64() (int64, error) {
	return v.asInt64Named("int64", math.MinInt64, math.MaxInt64, 64)
}

func (v *SqlValue) AsInt32() (int32, error) {
	n, err := v.asInt64Named("int32", math.MinInt32, math.MaxInt32, 32)
	return int32(n), err
}

func (v *SqlValue) AsInt16() (int16, error) {
	n, err := v.asInt64Named("int16", math.MinInt16, math.MaxInt16, 16)
	return int16(n), err
}

func (v *SqlValue) AsInt8() (int8, error) {
	n, err := v.asInt64Named("int8", math.MinInt8, math.MaxInt8, 8)
	return int8(n), err
}

// AsUint64 gets the value as uint64. The Oracle type must be numeric or a
// string type.
func (v *SqlValue) AsUint64() (uint64, error) {
	return v.asUint64Named("uint64", math.MaxUint64, 64)
}

func (v *SqlValue) AsUint32() (uint32, error) {
	n, err := v.asUint64Named("uint32", math.MaxUint32, 32)
	return uint32(n), err
}

func (v *SqlValue) AsUint16() (uint16, error) {
	n, err := v.asUint64Named("uint16", math.MaxUint16, 16)
	return uint16(n), err
}

func (v *SqlValue) AsUint8() (uint8, error) {
	n, err := v.asUint64Named("uint8", math.MaxUint8, 8)
	return uint8(n), err
}

// AsFloat64 gets the value as float64.
func (v *SqlValue) AsFloat64() (float64, error) {
	switch v.native {
	case NativeInt64:
		n, err := v.getInt64Unchecked()
		return float64(n), err
	case NativeUint64:
		n, err := v.getUint64Unchecked()
		return float64(n), err
	case NativeFloat:
		f, err := v.getFloatUnchecked()
		return float64(f), err
	case NativeDouble:
		return v.getDoubleUnchecked()
	case NativeChar, NativeNumber, NativeCLOB:
		s, err := v.getString()
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, errors.Wrapf(err, "cannot parse %q as float64", s)
		}
		return f, nil
	}
	return 0, v.invalidConversionToGoType("float64")
}

// AsFloat32 gets the value as float32.
func (v *SqlValue) AsFloat32() (float32, error) {
	switch v.native {
	case NativeFloat:
		return v.getFloatUnchecked()
	case NativeInt64, NativeUint64, NativeDouble, NativeChar, NativeNumber, NativeCLOB:
		f, err := v.AsFloat64()
		return float32(f), err
	}
	return 0, v.invalidConversionToGoType("float32")
}

// AsString gets the value as a string. Every Oracle type is renderable:
// numbers via default formatting, RAW as hexadecimal, LOBs by chunked
// streaming and objects via their structural form.
func (v *SqlValue) AsString() (string, error) {
	switch v.native {
	case NativeInt64:
		n, err := v.getInt64Unchecked()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	case NativeUint64:
		n, err := v.getUint64Unchecked()
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(n, 10), nil
	case NativeFloat:
		f, err := v.getFloatUnchecked()
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(float64(f), 'g', -1, 32), nil
	case NativeDouble:
		f, err := v.getDoubleUnchecked()
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case NativeChar, NativeNumber:
		return v.getStringUnchecked()
	case NativeRaw:
		b, err := v.getRawUnchecked()
		if err != nil {
			return "", err
		}
		return hexString(b), nil
	case NativeTimestamp:
		ts, err := v.getTimestampUnchecked()
		if err != nil {
			return "", err
		}
		return ts.String(), nil
	case NativeIntervalDS:
		it, err := v.getIntervalDSUnchecked()
		if err != nil {
			return "", err
		}
		return it.String(), nil
	case NativeIntervalYM:
		it, err := v.getIntervalYMUnchecked()
		if err != nil {
			return "", err
		}
		return it.String(), nil
	case NativeCLOB:
		return v.getClobAsStringUnchecked()
	case NativeBLOB:
		return v.getBlobAsHexStringUnchecked()
	case NativeBoolean:
		b, err := v.getBoolUnchecked()
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(b), nil
	case NativeObject:
		handle, err := v.getObjectUnchecked()
		if err != nil {
			return "", err
		}
		return v.client.ObjectString(handle)
	}
	return "", v.invalidConversionToGoType("string")
}

// AsBytes gets the value as raw bytes. Character data is parsed as a
// hexadecimal string.
func (v *SqlValue) AsBytes() ([]byte, error) {
	switch v.native {
	case NativeRaw:
		return v.getRawUnchecked()
	case NativeChar, NativeCLOB:
		s, err := v.getString()
		if err != nil {
			return nil, err
		}
		return parseHexString(s)
	}
	return nil, v.invalidConversionToGoType("bytes")
}

// AsTimestamp gets the value as a Timestamp. The Oracle type must be DATE or
// one of the TIMESTAMP types; character data is parsed.
func (v *SqlValue) AsTimestamp() (Timestamp, error) {
	switch v.native {
	case NativeTimestamp:
		return v.getTimestampUnchecked()
	case NativeChar, NativeCLOB:
		s, err := v.getString()
		if err != nil {
			return Timestamp{}, err
		}
		return ParseTimestamp(s)
	}
	return Timestamp{}, v.invalidConversionToGoType("Timestamp")
}

// AsIntervalDS gets the value as an IntervalDS.
func (v *SqlValue) AsIntervalDS() (IntervalDS, error) {
	switch v.native {
	case NativeIntervalDS:
		return v.getIntervalDSUnchecked()
	case NativeChar, NativeCLOB:
		s, err := v.getString()
		if err != nil {
			return IntervalDS{}, err
		}
		return ParseIntervalDS(s)
	}
	return IntervalDS{}, v.invalidConversionToGoType("IntervalDS")
}

// AsIntervalYM gets the value as an IntervalYM.
func (v *SqlValue) AsIntervalYM() (IntervalYM, error) {
	switch v.native {
	case NativeIntervalYM:
		return v.getIntervalYMUnchecked()
	case NativeChar, NativeCLOB:
		s, err := v.getString()
		if err != nil {
			return IntervalYM{}, err
		}
		return ParseIntervalYM(s)
	}
	return IntervalYM{}, v.invalidConversionToGoType("IntervalYM")
}

// AsBool gets the value as bool. The Oracle type must be BOOLEAN (PL/SQL
// only).
func (v *SqlValue) AsBool() (bool, error) {
	if v.native != NativeBoolean {
		return false, v.invalidConversionToGoType("bool")
	}
	return v.getBoolUnchecked()
}

// AsObject gets the value as a non-collection object.
func (v *SqlValue) AsObject() (*Object, error) {
	if v.native != NativeObject || v.oratype.ObjectType() == nil ||
		v.oratype.ObjectType().IsCollection() {
		return nil, v.invalidConversionToGoType("Object")
	}
	handle, err := v.getObjectUnchecked()
	if err != nil {
		return nil, err
	}
	return newObject(v.client, handle, v.oratype.ObjectType()), nil
}

// AsCollection gets the value as a collection.
func (v *SqlValue) AsCollection() (*Collection, error) {
	if v.native != NativeObject || v.oratype.ObjectType() == nil ||
		!v.oratype.ObjectType().IsCollection() {
		return nil, v.invalidConversionToGoType("Collection")
	}
	handle, err := v.getObjectUnchecked()
	if err != nil {
		return nil, err
	}
	return newCollection(v.client, handle, v.oratype.ObjectType()), nil
}

//
// typed setters
//

func (v *SqlValue) setInt64Named(n int64, fromType string) error {
	if v.data == nil {
		return ErrUninitializedBindValue
	}
	switch v.native {
	case NativeInt64:
		v.activeData().SetInt64(n)
	case NativeUint64:
		v.activeData().SetUint64(uint64(n))
	case NativeFloat:
		v.activeData().SetFloat(float32(n))
	case NativeDouble:
		v.activeData().SetDouble(float64(n))
	case NativeChar, NativeNumber:
		return v.setBytesUnchecked([]byte(strconv.FormatInt(n, 10)))
	default:
		return v.invalidConversionFromGoType(fromType)
	}
	return nil
}

func (v *SqlValue) setUint64Named(n uint64, fromType string) error {
	if v.data == nil {
		return ErrUninitializedBindValue
	}
	switch v.native {
	case NativeInt64:
		v.activeData().SetInt64(int64(n))
	case NativeUint64:
		v.activeData().SetUint64(n)
	case NativeFloat:
		v.activeData().SetFloat(float32(n))
	case NativeDouble:
		v.activeData().SetDouble(float64(n))
	case NativeChar, NativeNumber:
		return v.setBytesUnchecked([]byte(strconv.FormatUint(n, 10)))
	default:
		return v.invalidConversionFromGoType(fromType)
	}
	return nil
}

func (v *SqlValue) setFloat64Named(f float64, fromType string) error {
	if v.data == nil {
		return ErrUninitializedBindValue
	}
	switch v.native {
	case NativeInt64:
		n, err := fltToInt(f, math.MinInt64, math.MaxInt64, "int64")
		if err != nil {
			return err
		}
		v.activeData().SetInt64(n)
	case NativeUint64:
		n, err := fltToUint(f, math.MaxUint64, "uint64")
		if err != nil {
			return err
		}
		v.activeData().SetUint64(n)
	case NativeFloat:
		v.activeData().SetFloat(float32(f))
	case NativeDouble:
		v.activeData().SetDouble(f)
	case NativeChar, NativeNumber:
		return v.setBytesUnchecked([]byte(strconv.FormatFloat(f, 'g', -1, 64)))
	default:
		return v.invalidConversionFromGoType(fromType)
	}
	return nil
}

func (v *SqlValue) SetInt64(n int64) error { return v.setInt64Named(n, "int64") }
func (v *SqlValue) SetInt32(n int32) error { return v.setInt64Named(int64(n), "int32") }
func (v *SqlValue) SetInt16(n int16) error { return v.setInt64Named(int64(n), "int16") }
func (v *SqlValue) SetInt8(n int8) error   { return v.setInt64Named(int64(n), "int8") }

func (v *SqlValue) SetUint64(n uint64) error { return v.setUint64Named(n, "uint64") }
func (v *SqlValue) SetUint32(n uint32) error { return v.setUint64Named(uint64(n), "uint32") }
func (v *SqlValue) SetUint16(n uint16) error { return v.setUint64Named(uint64(n), "uint16") }
func (v *SqlValue) SetUint8(n uint8) error   { return v.setUint64Named(uint64(n), "uint8") }

func (v *SqlValue) SetFloat64(f float64) error { return v.setFloat64Named(f, "float64") }
func (v *SqlValue) SetFloat32(f float32) error { return v.setFloat64Named(float64(f), "float32") }

// SetString sets a string, converting to the buffer's native encoding where
// needed: parsed for numeric and date/interval buffers, hex-decoded for RAW
// and BLOB, written whole for CLOB.
func (v *SqlValue) SetString(s string) error {
	if v.data == nil {
		return ErrUninitializedBindValue
	}
	switch v.native {
	case NativeInt64:
		n, err := parseSignedText(s, "int64", 64)
		if err != nil {
			return err
		}
		v.activeData().SetInt64(n)
	case NativeUint64:
		n, err := parseUnsignedText(s, "uint64", 64)
		if err != nil {
			return err
		}
		v.activeData().SetUint64(n)
	case NativeFloat:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return errors.Wrapf(err, "cannot parse %q as float32", s)
		}
		v.activeData().SetFloat(float32(f))
	case NativeDouble:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.Wrapf(err, "cannot parse %q as float64", s)
		}
		v.activeData().SetDouble(f)
	case NativeChar:
		return v.setBytesUnchecked([]byte(s))
	case NativeNumber:
		if err := checkNumberFormat(s); err != nil {
			return err
		}
		return v.setBytesUnchecked([]byte(s))
	case NativeRaw:
		b, err := parseHexString(s)
		if err != nil {
			return err
		}
		return v.setBytesUnchecked(b)
	case NativeTimestamp:
		ts, err := ParseTimestamp(s)
		if err != nil {
			return err
		}
		v.activeData().SetTimestamp(ts)
	case NativeIntervalDS:
		it, err := ParseIntervalDS(s)
		if err != nil {
			return err
		}
		v.activeData().SetIntervalDS(it)
	case NativeIntervalYM:
		it, err := ParseIntervalYM(s)
		if err != nil {
			return err
		}
		v.activeData().SetIntervalYM(it)
	case NativeCLOB:
		return v.setStringToClobUnchecked(s)
	case NativeBLOB:
		b, err := parseHexString(s)
		if err != nil {
			return err
		}
		return v.setRawToBlobUnchecked(b)
	default:
		return v.invalidConversionFromGoType("string")
	}
	return nil
}

// SetBytes sets raw bytes. The Oracle type must be RAW or BLOB.
func (v *SqlValue) SetBytes(b []byte) error {
	if v.data == nil {
		return ErrUninitializedBindValue
	}
	switch v.native {
	case NativeRaw:
		return v.setBytesUnchecked(b)
	case NativeBLOB:
		return v.setRawToBlobUnchecked(b)
	}
	return v.invalidConversionFromGoType("bytes")
}

// SetTimestamp sets a Timestamp. The Oracle type must be DATE or one of the
// TIMESTAMP types.
func (v *SqlValue) SetTimestamp(ts Timestamp) error {
	if v.data == nil {
		return ErrUninitializedBindValue
	}
	if v.native != NativeTimestamp {
		return v.invalidConversionFromGoType("Timestamp")
	}
	v.activeData().SetTimestamp(ts)
	return nil
}

// SetIntervalDS sets an IntervalDS. The Oracle type must be INTERVAL DAY TO
// SECOND.
func (v *SqlValue) SetIntervalDS(it IntervalDS) error {
	if v.data == nil {
		return ErrUninitializedBindValue
	}
	if v.native != NativeIntervalDS {
		return v.invalidConversionFromGoType("IntervalDS")
	}
	v.activeData().SetIntervalDS(it)
	return nil
}

// SetIntervalYM sets an IntervalYM. The Oracle type must be INTERVAL YEAR TO
// MONTH.
func (v *SqlValue) SetIntervalYM(it IntervalYM) error {
	if v.data == nil {
		return ErrUninitializedBindValue
	}
	if v.native != NativeIntervalYM {
		return v.invalidConversionFromGoType("IntervalYM")
	}
	v.activeData().SetIntervalYM(it)
	return nil
}

// SetBool sets a bool. The Oracle type must be BOOLEAN (PL/SQL only).
func (v *SqlValue) SetBool(b bool) error {
	if v.data == nil {
		return ErrUninitializedBindValue
	}
	if v.native != NativeBoolean {
		return v.invalidConversionFromGoType("bool")
	}
	v.activeData().SetBool(b)
	return nil
}

// SetObject sets an object value.
func (v *SqlValue) SetObject(obj *Object) error {
	if v.data == nil {
		return ErrUninitializedBindValue
	}
	if v.native != NativeObject {
		return v.invalidConversionFromGoType("Object")
	}
	return v.setObjectUnchecked(obj.Handle())
}

// SetCollection sets a collection value.
func (v *SqlValue) SetCollection(col *Collection) error {
	if v.data == nil {
		return ErrUninitializedBindValue
	}
	if v.native != NativeObject {
		return v.invalidConversionFromGoType("Collection")
	}
	return v.setObjectUnchecked(col.Handle())
}

// Set dispatches on the Go type of val. nil sets NULL.
func (v *SqlValue) Set(val interface{}) error {
	switch val := val.(type) {
	case nil:
		return v.SetNull()
	case int:
		return v.SetInt64(int64(val))
	case int8:
		return v.SetInt8(val)
	case int16:
		return v.SetInt16(val)
	case int32:
		return v.SetInt32(val)
	case int64:
		return v.SetInt64(val)
	case uint:
		return v.SetUint64(uint64(val))
	case uint8:
		return v.SetUint8(val)
	case uint16:
		return v.SetUint16(val)
	case uint32:
		return v.SetUint32(val)
	case uint64:
		return v.SetUint64(val)
	case float32:
		return v.SetFloat32(val)
	case float64:
		return v.SetFloat64(val)
	case string:
		return v.SetString(val)
	case []byte:
		return v.SetBytes(val)
	case bool:
		return v.SetBool(val)
	case Timestamp:
		return v.SetTimestamp(val)
	case time.Time:
		return v.SetTimestamp(TimestampFromTime(val))
	case IntervalDS:
		return v.SetIntervalDS(val)
	case IntervalYM:
		return v.SetIntervalYM(val)
	case *Object:
		return v.SetObject(val)
	case *Collection:
		return v.SetCollection(val)
	}
	return v.invalidConversionFromGoType(fmt.Sprintf("%T", val))
}

// oracleTypeOf determines the Oracle type used to allocate a bind buffer for
// a Go value. A *OracleType passes through so that callers can declare typed
// NULL binds and out binds.
func oracleTypeOf(val interface{}) (*OracleType, error) {
	switch val := val.(type) {
	case *OracleType:
		return val, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32:
		return Int64(), nil
	case uint64:
		return Uint64(), nil
	case float32:
		return BinaryFloat(), nil
	case float64:
		return BinaryDouble(), nil
	case string:
		size := len(val)
		if size == 0 {
			size = 1
		}
		return Varchar2(uint32(size)), nil
	case []byte:
		size := len(val)
		if size == 0 {
			size = 1
		}
		return Raw(uint32(size)), nil
	case bool:
		return Boolean(), nil
	case Timestamp, time.Time:
		return TimestampTZ(9), nil
	case IntervalDS:
		return IntervalDSType(9, 9), nil
	case IntervalYM:
		return IntervalYMType(9), nil
	case *Object:
		return ObjectOf(val.ObjectType()), nil
	case *Collection:
		return ObjectOf(val.ObjectType()), nil
	}
	return nil, errors.Errorf("cannot determine Oracle type for Go type %T", val)
}
