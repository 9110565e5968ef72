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
)

// TypeNum identifies an Oracle type in the native client protocol.
type TypeNum uint32

const (
	TypeNone TypeNum = iota
	TypeVarchar2
	TypeNvarchar2
	TypeChar
	TypeNchar
	TypeRaw
	TypeNumber
	TypeBinaryFloat
	TypeBinaryDouble
	TypeInt64
	TypeUint64
	TypeDate
	TypeTimestamp
	TypeTimestampTZ
	TypeTimestampLTZ
	TypeIntervalDS
	TypeIntervalYM
	TypeCLOB
	TypeNCLOB
	TypeBLOB
	TypeLong
	TypeLongRaw
	TypeBoolean
	TypeObject
)

// NativeType identifies the in-memory representation held by a value buffer.
// Every OracleType maps to exactly one NativeType.
type NativeType uint32

const (
	NativeInt64 NativeType = iota
	NativeUint64
	NativeFloat
	NativeDouble
	NativeChar
	NativeNumber
	NativeRaw
	NativeTimestamp
	NativeIntervalDS
	NativeIntervalYM
	NativeCLOB
	NativeBLOB
	NativeBoolean
	NativeObject
)

func (t NativeType) String() string {
	switch t {
	case NativeInt64:
		return "int64"
	case NativeUint64:
		return "uint64"
	case NativeFloat:
		return "float"
	case NativeDouble:
		return "double"
	case NativeChar:
		return "char"
	case NativeNumber:
		return "number"
	case NativeRaw:
		return "raw"
	case NativeTimestamp:
		return "timestamp"
	case NativeIntervalDS:
		return "interval day to second"
	case NativeIntervalYM:
		return "interval year to month"
	case NativeCLOB:
		return "clob"
	case NativeBLOB:
		return "blob"
	case NativeBoolean:
		return "boolean"
	case NativeObject:
		return "object"
	}
	return fmt.Sprintf("native type %d", uint32(t))
}

// maxInt64Precision is the largest NUMBER precision whose scale-zero values
// always fit in an int64.
const maxInt64Precision = 18

// OracleType describes the declared type of a column, bind variable or object
// attribute. Values are immutable once constructed.
type OracleType struct {
	num       TypeNum
	size      uint32 // char length or byte length for the char/raw family
	precision uint8  // NUMBER precision, 0 if unspecified
	scale     int8   // NUMBER scale
	lfprec    uint8  // interval leading field precision
	fsprec    uint8  // fractional second precision
	objType   *ObjectType
}

func Varchar2(size uint32) *OracleType { return &OracleType{num: TypeVarchar2, size: size} }

func Nvarchar2(size uint32) *OracleType { return &OracleType{num: TypeNvarchar2, size: size} }

func Char(size uint32) *OracleType { return &OracleType{num: TypeChar, size: size} }

func Nchar(size uint32) *OracleType { return &OracleType{num: TypeNchar, size: size} }

func Raw(size uint32) *OracleType { return &OracleType{num: TypeRaw, size: size} }

// Number describes NUMBER(precision, scale). Number(0, 0) is an unconstrained
// NUMBER.
func Number(precision uint8, scale int8) *OracleType {
	return &OracleType{num: TypeNumber, precision: precision, scale: scale}
}

func BinaryFloat() *OracleType { return &OracleType{num: TypeBinaryFloat} }

func BinaryDouble() *OracleType { return &OracleType{num: TypeBinaryDouble} }

// Int64 is used internally when a scale-zero NUMBER column fits in an int64
// and for integer binds. It never appears as a server-declared column type.
func Int64() *OracleType { return &OracleType{num: TypeInt64} }

func Uint64() *OracleType { return &OracleType{num: TypeUint64} }

func Date() *OracleType { return &OracleType{num: TypeDate} }

func TimestampType(fsprec uint8) *OracleType {
	return &OracleType{num: TypeTimestamp, fsprec: fsprec}
}

func TimestampTZ(fsprec uint8) *OracleType {
	return &OracleType{num: TypeTimestampTZ, fsprec: fsprec}
}

func TimestampLTZ(fsprec uint8) *OracleType {
	return &OracleType{num: TypeTimestampLTZ, fsprec: fsprec}
}

func IntervalDSType(lfprec, fsprec uint8) *OracleType {
	return &OracleType{num: TypeIntervalDS, lfprec: lfprec, fsprec: fsprec}
}

func IntervalYMType(lfprec uint8) *OracleType {
	return &OracleType{num: TypeIntervalYM, lfprec: lfprec}
}

func CLOB() *OracleType { return &OracleType{num: TypeCLOB} }

func NCLOB() *OracleType { return &OracleType{num: TypeNCLOB} }

func BLOB() *OracleType { return &OracleType{num: TypeBLOB} }

func Long() *OracleType { return &OracleType{num: TypeLong} }

func LongRaw() *OracleType { return &OracleType{num: TypeLongRaw} }

func Boolean() *OracleType { return &OracleType{num: TypeBoolean} }

func ObjectOf(objType *ObjectType) *OracleType {
	return &OracleType{num: TypeObject, objType: objType}
}

// TypeNum returns the protocol type identifier.
func (t *OracleType) TypeNum() TypeNum { return t.num }

// Size returns the declared length for the char/raw family, 0 otherwise.
func (t *OracleType) Size() uint32 { return t.size }

// Precision returns the NUMBER precision.
func (t *OracleType) Precision() uint8 { return t.precision }

// Scale returns the NUMBER scale.
func (t *OracleType) Scale() int8 { return t.scale }

// ObjectType returns the object type descriptor for object/collection types,
// nil otherwise.
func (t *OracleType) ObjectType() *ObjectType { return t.objType }

func (t *OracleType) String() string {
	switch t.num {
	case TypeVarchar2:
		return fmt.Sprintf("VARCHAR2(%d)", t.size)
	case TypeNvarchar2:
		return fmt.Sprintf("NVARCHAR2(%d)", t.size)
	case TypeChar:
		return fmt.Sprintf("CHAR(%d)", t.size)
	case TypeNchar:
		return fmt.Sprintf("NCHAR(%d)", t.size)
	case TypeRaw:
		return fmt.Sprintf("RAW(%d)", t.size)
	case TypeNumber:
		switch {
		case t.precision == 0:
			return "NUMBER"
		case t.scale == 0:
			return fmt.Sprintf("NUMBER(%d)", t.precision)
		default:
			return fmt.Sprintf("NUMBER(%d,%d)", t.precision, t.scale)
		}
	case TypeBinaryFloat:
		return "BINARY_FLOAT"
	case TypeBinaryDouble:
		return "BINARY_DOUBLE"
	case TypeInt64:
		return "INT64"
	case TypeUint64:
		return "UINT64"
	case TypeDate:
		return "DATE"
	case TypeTimestamp:
		return fmt.Sprintf("TIMESTAMP(%d)", t.fsprec)
	case TypeTimestampTZ:
		return fmt.Sprintf("TIMESTAMP(%d) WITH TIME ZONE", t.fsprec)
	case TypeTimestampLTZ:
		return fmt.Sprintf("TIMESTAMP(%d) WITH LOCAL TIME ZONE", t.fsprec)
	case TypeIntervalDS:
		return fmt.Sprintf("INTERVAL DAY(%d) TO SECOND(%d)", t.lfprec, t.fsprec)
	case TypeIntervalYM:
		return fmt.Sprintf("INTERVAL YEAR(%d) TO MONTH", t.lfprec)
	case TypeCLOB:
		return "CLOB"
	case TypeNCLOB:
		return "NCLOB"
	case TypeBLOB:
		return "BLOB"
	case TypeLong:
		return "LONG"
	case TypeLongRaw:
		return "LONG RAW"
	case TypeBoolean:
		return "BOOLEAN"
	case TypeObject:
		if t.objType != nil {
			return t.objType.FullName()
		}
		return "OBJECT"
	}
	return fmt.Sprintf("unknown oracle type %d", uint32(t.num))
}

// varCreateParam maps an OracleType to the parameters needed to allocate a
// value buffer: type number, native encoding, element size and its unit. The
// mapping is total over supported types and deterministic.
func (t *OracleType) varCreateParam() (TypeNum, NativeType, uint32, bool, error) {
	switch t.num {
	case TypeVarchar2, TypeNvarchar2, TypeChar, TypeNchar:
		return t.num, NativeChar, t.size, false, nil
	case TypeRaw:
		return t.num, NativeRaw, t.size, true, nil
	case TypeNumber:
		return t.num, NativeNumber, 0, false, nil
	case TypeBinaryFloat:
		return t.num, NativeFloat, 0, false, nil
	case TypeBinaryDouble:
		return t.num, NativeDouble, 0, false, nil
	case TypeInt64:
		return t.num, NativeInt64, 0, false, nil
	case TypeUint64:
		return t.num, NativeUint64, 0, false, nil
	case TypeDate, TypeTimestamp, TypeTimestampTZ, TypeTimestampLTZ:
		return t.num, NativeTimestamp, 0, false, nil
	case TypeIntervalDS:
		return t.num, NativeIntervalDS, 0, false, nil
	case TypeIntervalYM:
		return t.num, NativeIntervalYM, 0, false, nil
	case TypeCLOB, TypeNCLOB:
		return t.num, NativeCLOB, 0, false, nil
	case TypeBLOB:
		return t.num, NativeBLOB, 0, false, nil
	case TypeLong:
		// LONG columns transfer as character data with a large fixed buffer.
		return t.num, NativeChar, 1 << 15, true, nil
	case TypeLongRaw:
		return t.num, NativeRaw, 1 << 15, true, nil
	case TypeBoolean:
		return t.num, NativeBoolean, 0, false, nil
	case TypeObject:
		return t.num, NativeObject, 0, false, nil
	}
	return TypeNone, NativeInt64, 0, false, &NotSupportedError{Type: t.String()}
}
