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
	"strings"
)

// fakeClient is an in-memory NativeClient. It understands just enough of the
// statement text to report bind markers and the statement classification, and
// serves query results registered by the test.
type fakeClient struct {
	fetchArraySize uint32
	allocCount     int
	releaseCount   int

	queries   map[string]*fakeResult
	execHooks map[string]func(stmt *fakeStmt) error

	commits   int
	rollbacks int
	pings     int
	breaks    int
	closed    bool
}

type fakeResult struct {
	columns []QueryColumn
	rows    [][]interface{}
}

type fakeVar struct {
	num       TypeNum
	native    NativeType
	arraySize uint32
	size      uint32
	data      []Data
	refCount  int
}

type fakeStmt struct {
	sql        string
	stmtType   StmtType
	bindNames  []string // unique, upper-cased, in order of appearance
	namesByPos []string // one entry per bind slot
	bindCount  int
	binds      map[string]*fakeVar
	defines    []*fakeVar
	result     *fakeResult
	fetchPos   int
	rowCount   uint64
	closed     bool
	released   bool
}

type fakeLob struct {
	buf []byte
}

type fakeObject struct {
	repr string
	refs int
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		fetchArraySize: 4,
		queries:        map[string]*fakeResult{},
		execHooks:      map[string]func(stmt *fakeStmt) error{},
	}
}

func (c *fakeClient) addQuery(sql string, columns []QueryColumn, rows [][]interface{}) {
	c.queries[sql] = &fakeResult{columns: columns, rows: rows}
}

func (c *fakeClient) onExec(sql string, hook func(stmt *fakeStmt) error) {
	c.execHooks[sql] = hook
}

func classifyStmt(sql string) StmtType {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return StmtTypeUnknown
	}
	switch strings.ToUpper(fields[0]) {
	case "SELECT", "WITH":
		return StmtTypeSelect
	case "INSERT":
		return StmtTypeInsert
	case "UPDATE":
		return StmtTypeUpdate
	case "DELETE":
		return StmtTypeDelete
	case "MERGE":
		return StmtTypeMerge
	case "CREATE":
		return StmtTypeCreate
	case "ALTER":
		return StmtTypeAlter
	case "DROP":
		return StmtTypeDrop
	case "BEGIN":
		return StmtTypeBegin
	case "DECLARE":
		return StmtTypeDeclare
	}
	return StmtTypeUnknown
}

func isBindNameChar(b byte) bool {
	return b == '_' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// scanBindMarkers returns every :name marker outside of string literals, in
// order of appearance and upper-cased.
func scanBindMarkers(sql string) []string {
	var markers []string
	inString := false
	for i := 0; i < len(sql); i++ {
		switch {
		case sql[i] == '\'':
			inString = !inString
		case !inString && sql[i] == ':':
			j := i + 1
			for j < len(sql) && isBindNameChar(sql[j]) {
				j++
			}
			if j > i+1 {
				markers = append(markers, strings.ToUpper(sql[i+1:j]))
				i = j - 1
			}
		}
	}
	return markers
}

func uniqueNames(markers []string) []string {
	var unique []string
	seen := map[string]bool{}
	for _, name := range markers {
		if !seen[name] {
			seen[name] = true
			unique = append(unique, name)
		}
	}
	return unique
}

func (c *fakeClient) PrepareStmt(sql string, scrollable bool, tag string) (StmtHandle, error) {
	stmtType := classifyStmt(sql)
	markers := scanBindMarkers(sql)
	unique := uniqueNames(markers)
	stmt := &fakeStmt{
		sql:       sql,
		stmtType:  stmtType,
		bindNames: unique,
		binds:     map[string]*fakeVar{},
		result:    c.queries[sql],
	}
	if stmtType == StmtTypeBegin || stmtType == StmtTypeDeclare {
		// PL/SQL unifies repeated markers of the same name into one slot.
		stmt.bindCount = len(unique)
		stmt.namesByPos = unique
	} else {
		stmt.bindCount = len(markers)
		stmt.namesByPos = markers
	}
	return stmt, nil
}

func (c *fakeClient) StmtInfo(stmt StmtHandle) (StmtInfo, error) {
	s := stmt.(*fakeStmt)
	return StmtInfo{
		StmtType:    s.stmtType,
		IsReturning: strings.Contains(strings.ToUpper(s.sql), "RETURNING"),
	}, nil
}

func (c *fakeClient) BindCount(stmt StmtHandle) (int, error) {
	return stmt.(*fakeStmt).bindCount, nil
}

func (c *fakeClient) BindNames(stmt StmtHandle) ([]string, error) {
	return stmt.(*fakeStmt).bindNames, nil
}

func (c *fakeClient) NewVar(num TypeNum, native NativeType, arraySize, size uint32,
	sizeIsBytes bool, objType ObjectTypeHandle) (VarHandle, []Data, error) {
	c.allocCount++
	data := make([]Data, arraySize)
	for i := range data {
		data[i].isNull = true
		if native == NativeCLOB || native == NativeBLOB {
			data[i].lobVal = &fakeLob{}
		}
	}
	v := &fakeVar{
		num:       num,
		native:    native,
		arraySize: arraySize,
		size:      size,
		data:      data,
		refCount:  1,
	}
	return v, data, nil
}

func (c *fakeClient) BindByPos(stmt StmtHandle, pos int, v VarHandle) error {
	s := stmt.(*fakeStmt)
	if pos < 1 || pos > len(s.namesByPos) {
		return NewError(1036, "ORA-01036: illegal variable name/number", "bindByPos", "bind", 0)
	}
	s.binds[s.namesByPos[pos-1]] = v.(*fakeVar)
	return nil
}

func (c *fakeClient) BindByName(stmt StmtHandle, name string, v VarHandle) error {
	s := stmt.(*fakeStmt)
	s.binds[strings.ToUpper(name)] = v.(*fakeVar)
	return nil
}

func (c *fakeClient) Execute(stmt StmtHandle, mode ExecMode) (int, error) {
	s := stmt.(*fakeStmt)
	s.fetchPos = 0
	if hook := c.execHooks[s.sql]; hook != nil {
		if err := hook(s); err != nil {
			return 0, err
		}
	}
	if s.result != nil {
		return len(s.result.columns), nil
	}
	return 0, nil
}

func (c *fakeClient) FetchArraySize(stmt StmtHandle) (uint32, error) {
	return c.fetchArraySize, nil
}

func (c *fakeClient) QueryColumnInfo(stmt StmtHandle, pos int) (QueryColumn, error) {
	s := stmt.(*fakeStmt)
	if s.result == nil || pos < 1 || pos > len(s.result.columns) {
		return QueryColumn{}, NewError(24334, "ORA-24334: no descriptor for this position", "queryInfo", "describe", 0)
	}
	return s.result.columns[pos-1], nil
}

func (c *fakeClient) Define(stmt StmtHandle, pos int, v VarHandle) error {
	s := stmt.(*fakeStmt)
	for len(s.defines) < pos {
		s.defines = append(s.defines, nil)
	}
	s.defines[pos-1] = v.(*fakeVar)
	return nil
}

func (c *fakeClient) fillData(d *Data, native NativeType, val interface{}) error {
	if val == nil {
		d.SetNull()
		return nil
	}
	switch native {
	case NativeInt64:
		switch val := val.(type) {
		case int:
			d.SetInt64(int64(val))
		case int64:
			d.SetInt64(val)
		default:
			return fmt.Errorf("fake: cannot fill int64 column from %T", val)
		}
	case NativeUint64:
		d.SetUint64(val.(uint64))
	case NativeFloat:
		d.SetFloat(val.(float32))
	case NativeDouble:
		d.SetDouble(val.(float64))
	case NativeChar, NativeNumber:
		d.SetBytes([]byte(val.(string)))
	case NativeRaw:
		d.SetBytes(val.([]byte))
	case NativeTimestamp:
		d.SetTimestamp(val.(Timestamp))
	case NativeIntervalDS:
		d.SetIntervalDS(val.(IntervalDS))
	case NativeIntervalYM:
		d.SetIntervalYM(val.(IntervalYM))
	case NativeBoolean:
		d.SetBool(val.(bool))
	case NativeCLOB:
		d.SetLob(&fakeLob{buf: []byte(val.(string))})
	case NativeBLOB:
		d.SetLob(&fakeLob{buf: val.([]byte)})
	case NativeObject:
		d.SetObject(val.(*fakeObject))
	default:
		return fmt.Errorf("fake: cannot fill column of native type %s", native)
	}
	return nil
}

func (c *fakeClient) Fetch(stmt StmtHandle) (bool, uint32, error) {
	s := stmt.(*fakeStmt)
	if s.result == nil || s.fetchPos >= len(s.result.rows) {
		return false, 0, nil
	}
	idx := uint32(s.fetchPos) % c.fetchArraySize
	row := s.result.rows[s.fetchPos]
	for i, v := range s.defines {
		if v == nil {
			continue
		}
		if err := c.fillData(&v.data[idx], v.native, row[i]); err != nil {
			return false, 0, err
		}
	}
	s.fetchPos++
	s.rowCount++
	return true, idx, nil
}

func (c *fakeClient) RowCount(stmt StmtHandle) (uint64, error) {
	return stmt.(*fakeStmt).rowCount, nil
}

func (c *fakeClient) CloseStmt(stmt StmtHandle, tag string) error {
	s := stmt.(*fakeStmt)
	if s.closed {
		return NewError(1003, "ORA-01003: no statement parsed", "closeStmt", "close", 0)
	}
	s.closed = true
	return nil
}

func (c *fakeClient) ReleaseStmt(stmt StmtHandle) error {
	s := stmt.(*fakeStmt)
	if s.released {
		return NewError(1003, "ORA-01003: no statement parsed", "releaseStmt", "release", 0)
	}
	s.released = true
	return nil
}

func (c *fakeClient) SetVarFromBytes(v VarHandle, idx uint32, b []byte) error {
	fv := v.(*fakeVar)
	buf := make([]byte, len(b))
	copy(buf, b)
	fv.data[idx].SetBytes(buf)
	return nil
}

func (c *fakeClient) SetVarFromObject(v VarHandle, idx uint32, obj ObjectHandle) error {
	fv := v.(*fakeVar)
	obj.(*fakeObject).refs++
	fv.data[idx].SetObject(obj)
	return nil
}

func (c *fakeClient) AddRefVar(v VarHandle) error {
	v.(*fakeVar).refCount++
	return nil
}

func (c *fakeClient) ReleaseVar(v VarHandle) error {
	fv := v.(*fakeVar)
	if fv.refCount <= 0 {
		return NewError(24372, "ORA-24372: invalid object for describe", "releaseVar", "release", 0)
	}
	fv.refCount--
	c.releaseCount++
	return nil
}

func (c *fakeClient) LobSize(lob LobHandle) (uint64, error) {
	return uint64(len(lob.(*fakeLob).buf)), nil
}

func (c *fakeClient) LobBufferSize(lob LobHandle, sizeInChars uint64) (uint64, error) {
	// The fake stores single-byte characters only.
	return sizeInChars, nil
}

func (c *fakeClient) LobRead(lob LobHandle, offset, amount uint64, buf []byte) (int, error) {
	l := lob.(*fakeLob)
	if offset < 1 {
		return 0, NewError(22990, "ORA-22990: LOB locators cannot span transactions", "lobRead", "read", 0)
	}
	start := int(offset - 1)
	if start >= len(l.buf) {
		return 0, nil
	}
	end := start + int(amount)
	if end > len(l.buf) {
		end = len(l.buf)
	}
	return copy(buf, l.buf[start:end]), nil
}

func (c *fakeClient) LobTrim(lob LobHandle, newSize uint64) error {
	l := lob.(*fakeLob)
	if newSize < uint64(len(l.buf)) {
		l.buf = l.buf[:newSize]
	}
	return nil
}

func (c *fakeClient) LobWrite(lob LobHandle, offset uint64, b []byte) error {
	l := lob.(*fakeLob)
	start := int(offset - 1)
	for len(l.buf) < start {
		l.buf = append(l.buf, 0)
	}
	l.buf = append(l.buf[:start], b...)
	return nil
}

func (c *fakeClient) AddRefObject(obj ObjectHandle) error {
	obj.(*fakeObject).refs++
	return nil
}

func (c *fakeClient) ReleaseObject(obj ObjectHandle) error {
	o := obj.(*fakeObject)
	if o.refs <= 0 {
		return NewError(21500, "ORA-21500: internal error code", "releaseObject", "release", 0)
	}
	o.refs--
	return nil
}

func (c *fakeClient) ObjectString(obj ObjectHandle) (string, error) {
	return obj.(*fakeObject).repr, nil
}

func (c *fakeClient) Commit() error {
	c.commits++
	return nil
}

func (c *fakeClient) Rollback() error {
	c.rollbacks++
	return nil
}

func (c *fakeClient) Ping() error {
	c.pings++
	return nil
}

func (c *fakeClient) BreakExecution() error {
	c.breaks++
	return nil
}

func (c *fakeClient) Close() error {
	c.closed = true
	return nil
}

var _ NativeClient = (*fakeClient)(nil)
