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

// Opaque handles owned by the native client. The concrete types behind them
// belong to the capability implementation; this package only passes them back.
type (
	StmtHandle       interface{}
	VarHandle        interface{}
	LobHandle        interface{}
	ObjectHandle     interface{}
	ObjectTypeHandle interface{}
)

// ExecMode selects the execution mode passed to the native client.
type ExecMode uint32

const (
	ExecDefault ExecMode = 0
)

// StmtType is the statement classification reported by the native client at
// prepare time.
type StmtType uint16

const (
	StmtTypeUnknown StmtType = iota
	StmtTypeSelect
	StmtTypeInsert
	StmtTypeUpdate
	StmtTypeDelete
	StmtTypeMerge
	StmtTypeCreate
	StmtTypeAlter
	StmtTypeDrop
	StmtTypeBegin
	StmtTypeDeclare
)

// StmtInfo is returned by NativeClient.StmtInfo after a prepare.
type StmtInfo struct {
	StmtType    StmtType
	IsReturning bool
}

// QueryColumn describes one column of an executed query.
type QueryColumn struct {
	Name       string
	OracleType *OracleType
	Nullable   bool
}

// Data is one element of a value buffer. Buffers are allocated by the native
// client as arrays of Data; SqlValue addresses one element at a time through
// its buffer row index. Fields mirror the client's union layout: exactly one
// of them is meaningful for a given native type.
type Data struct {
	isNull    bool
	intVal    int64
	uintVal   uint64
	floatVal  float32
	doubleVal float64
	byteVal   []byte
	tsVal     Timestamp
	dsVal     IntervalDS
	ymVal     IntervalYM
	boolVal   bool
	lobVal    LobHandle
	objVal    ObjectHandle
}

func (d *Data) IsNull() bool  { return d.isNull }
func (d *Data) SetNull()      { d.isNull = true }
func (d *Data) GetInt64() int64 { return d.intVal }

func (d *Data) SetInt64(v int64) {
	d.intVal = v
	d.isNull = false
}

func (d *Data) GetUint64() uint64 { return d.uintVal }

func (d *Data) SetUint64(v uint64) {
	d.uintVal = v
	d.isNull = false
}

func (d *Data) GetFloat() float32 { return d.floatVal }

func (d *Data) SetFloat(v float32) {
	d.floatVal = v
	d.isNull = false
}

func (d *Data) GetDouble() float64 { return d.doubleVal }

func (d *Data) SetDouble(v float64) {
	d.doubleVal = v
	d.isNull = false
}

func (d *Data) GetBytes() []byte { return d.byteVal }

func (d *Data) SetBytes(b []byte) {
	d.byteVal = b
	d.isNull = false
}

func (d *Data) GetTimestamp() Timestamp { return d.tsVal }

func (d *Data) SetTimestamp(ts Timestamp) {
	d.tsVal = ts
	d.isNull = false
}

func (d *Data) GetIntervalDS() IntervalDS { return d.dsVal }

func (d *Data) SetIntervalDS(it IntervalDS) {
	d.dsVal = it
	d.isNull = false
}

func (d *Data) GetIntervalYM() IntervalYM { return d.ymVal }

func (d *Data) SetIntervalYM(it IntervalYM) {
	d.ymVal = it
	d.isNull = false
}

func (d *Data) GetBool() bool { return d.boolVal }

func (d *Data) SetBool(v bool) {
	d.boolVal = v
	d.isNull = false
}

func (d *Data) GetLob() LobHandle { return d.lobVal }

func (d *Data) SetLob(lob LobHandle) {
	d.lobVal = lob
	d.isNull = false
}

func (d *Data) GetObject() ObjectHandle { return d.objVal }

func (d *Data) SetObject(obj ObjectHandle) {
	d.objVal = obj
	d.isNull = false
}

// NativeClient is the boundary to the native Oracle client library. An
// implementation owns cursor management and network I/O; this package drives
// it through handles. Calls block until the round trip completes. Failing
// calls return a *Error (possibly wrapped) carrying the client's structured
// error fields.
type NativeClient interface {
	// Statement lifecycle.
	PrepareStmt(sql string, scrollable bool, tag string) (StmtHandle, error)
	StmtInfo(stmt StmtHandle) (StmtInfo, error)
	BindCount(stmt StmtHandle) (int, error)
	BindNames(stmt StmtHandle) ([]string, error)
	Execute(stmt StmtHandle, mode ExecMode) (numQueryColumns int, err error)
	FetchArraySize(stmt StmtHandle) (uint32, error)
	QueryColumnInfo(stmt StmtHandle, pos int) (QueryColumn, error)
	Fetch(stmt StmtHandle) (found bool, bufferRowIndex uint32, err error)
	RowCount(stmt StmtHandle) (uint64, error)
	CloseStmt(stmt StmtHandle, tag string) error
	ReleaseStmt(stmt StmtHandle) error

	// Value buffers.
	NewVar(num TypeNum, native NativeType, arraySize, size uint32,
		sizeIsBytes bool, objType ObjectTypeHandle) (VarHandle, []Data, error)
	BindByPos(stmt StmtHandle, pos int, v VarHandle) error
	BindByName(stmt StmtHandle, name string, v VarHandle) error
	Define(stmt StmtHandle, pos int, v VarHandle) error
	SetVarFromBytes(v VarHandle, idx uint32, b []byte) error
	SetVarFromObject(v VarHandle, idx uint32, obj ObjectHandle) error
	AddRefVar(v VarHandle) error
	ReleaseVar(v VarHandle) error

	// Large objects.
	LobSize(lob LobHandle) (uint64, error)
	LobBufferSize(lob LobHandle, sizeInChars uint64) (uint64, error)
	LobRead(lob LobHandle, offset, amount uint64, buf []byte) (int, error)
	LobTrim(lob LobHandle, newSize uint64) error
	LobWrite(lob LobHandle, offset uint64, b []byte) error

	// Objects and collections.
	AddRefObject(obj ObjectHandle) error
	ReleaseObject(obj ObjectHandle) error
	ObjectString(obj ObjectHandle) (string, error)

	// Session operations.
	Commit() error
	Rollback() error
	Ping() error
	BreakExecution() error
	Close() error
}
