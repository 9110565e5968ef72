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

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

func (t StmtType) String() string {
	switch t {
	case StmtTypeSelect:
		return "select"
	case StmtTypeInsert:
		return "insert"
	case StmtTypeUpdate:
		return "update"
	case StmtTypeDelete:
		return "delete"
	case StmtTypeMerge:
		return "merge"
	case StmtTypeCreate:
		return "create"
	case StmtTypeAlter:
		return "alter"
	case StmtTypeDrop:
		return "drop"
	case StmtTypeBegin:
		return "PL/SQL(begin)"
	case StmtTypeDeclare:
		return "PL/SQL(declare)"
	}
	return fmt.Sprintf("other(%d)", uint16(t))
}

// NamedParam pairs a bind variable name with its value for ExecuteNamed.
type NamedParam struct {
	Name  string
	Value interface{}
}

// Statement is a prepared SQL or PL/SQL statement. It owns one value cell per
// bind variable and, after executing a query, one per result column. Bind and
// execute may be repeated any number of times; Close must be called exactly
// once and the statement must not be used afterwards.
//
// A Statement is not safe for concurrent use.
type Statement struct {
	conn           *Conn
	handle         StmtHandle
	row            Row
	fetchArraySize uint32
	stmtType       StmtType
	isReturning    bool
	bindCount      int
	bindNames      []string
	bindValues     []*SqlValue
}

func newStatement(conn *Conn, sql string, scrollable bool, tag string) (*Statement, error) {
	handle, err := conn.client.PrepareStmt(sql, scrollable, tag)
	if err != nil {
		return nil, errors.Wrap(err, "preparing statement")
	}
	fail := func(err error) (*Statement, error) {
		_ = conn.client.ReleaseStmt(handle)
		return nil, err
	}
	info, err := conn.client.StmtInfo(handle)
	if err != nil {
		return fail(err)
	}
	bindCount, err := conn.client.BindCount(handle)
	if err != nil {
		return fail(err)
	}
	var bindNames []string
	if bindCount > 0 {
		if bindNames, err = conn.client.BindNames(handle); err != nil {
			return fail(err)
		}
	}
	bindValues := make([]*SqlValue, bindCount)
	for i := range bindValues {
		bindValues[i] = newSqlValue(conn.client, conn.ctxt)
	}
	return &Statement{
		conn:        conn,
		handle:      handle,
		stmtType:    info.StmtType,
		isReturning: info.IsReturning,
		bindCount:   bindCount,
		bindNames:   bindNames,
		bindValues:  bindValues,
	}, nil
}

// Close releases the prepared statement and every value buffer it owns.
func (stmt *Statement) Close() error {
	if stmt.handle == nil {
		return nil
	}
	var result *multierror.Error
	result = multierror.Append(result, stmt.conn.client.CloseStmt(stmt.handle, ""))
	for _, v := range stmt.bindValues {
		result = multierror.Append(result, v.close())
	}
	for _, v := range stmt.row.columnValues {
		result = multierror.Append(result, v.close())
	}
	result = multierror.Append(result, stmt.conn.client.ReleaseStmt(stmt.handle))
	stmt.handle = nil
	return result.ErrorOrNil()
}

// bindIndex resolves a 1-based position or a case-insensitive bind name to
// the internal slot index.
func (stmt *Statement) bindIndex(index interface{}) (int, error) {
	switch idx := index.(type) {
	case int:
		if idx < 1 || idx > stmt.bindCount {
			return 0, &InvalidBindIndexError{Index: idx}
		}
		return idx - 1, nil
	case string:
		for i, name := range stmt.bindNames {
			if strings.EqualFold(name, idx) {
				return i, nil
			}
		}
		return 0, &InvalidBindNameError{Name: idx}
	}
	return 0, errors.Errorf("bind index must be an int or a string, got %T", index)
}

// Bind sets a bind value. The index is either a 1-based position (int) or a
// bind variable name (string, compared case-insensitively). Binding an
// *OracleType allocates the buffer and leaves the value NULL, which declares
// out binds for PL/SQL and RETURNING clauses.
func (stmt *Statement) Bind(index interface{}, value interface{}) error {
	pos, err := stmt.bindIndex(index)
	if err != nil {
		return err
	}
	oratype, err := oracleTypeOf(value)
	if err != nil {
		return err
	}
	cell := stmt.bindValues[pos]
	realloc, err := cell.initHandle(oratype, 1)
	if err != nil {
		return err
	}
	if realloc {
		switch idx := index.(type) {
		case int:
			err = stmt.conn.client.BindByPos(stmt.handle, idx, cell.handle)
		case string:
			err = stmt.conn.client.BindByName(stmt.handle, idx, cell.handle)
		}
		if err != nil {
			return errors.Wrap(err, "attaching bind buffer")
		}
	}
	if _, ok := value.(*OracleType); ok {
		// Typed bind: no value is written. A fresh buffer reads as NULL; a
		// reused one keeps its previous contents.
		return nil
	}
	return cell.Set(value)
}

// BindValue returns the value cell of a bind variable, typically to read an
// out bind after execution. The index rules match Bind.
func (stmt *Statement) BindValue(index interface{}) (*SqlValue, error) {
	pos, err := stmt.bindIndex(index)
	if err != nil {
		return nil, err
	}
	return stmt.bindValues[pos], nil
}

// Execute binds the given values by position and executes the statement.
func (stmt *Statement) Execute(params ...interface{}) error {
	for i, param := range params {
		if err := stmt.Bind(i+1, param); err != nil {
			return err
		}
	}
	return stmt.executeInternal()
}

// ExecuteNamed binds the given values by name and executes the statement.
func (stmt *Statement) ExecuteNamed(params []NamedParam) error {
	for _, param := range params {
		if err := stmt.Bind(param.Name, param.Value); err != nil {
			return err
		}
	}
	return stmt.executeInternal()
}

func (stmt *Statement) executeInternal() error {
	numCols, err := stmt.conn.client.Execute(stmt.handle, ExecDefault)
	if err != nil {
		return errors.Wrap(err, "executing statement")
	}
	if stmt.fetchArraySize, err = stmt.conn.client.FetchArraySize(stmt.handle); err != nil {
		return err
	}
	if stmt.stmtType != StmtTypeSelect {
		return nil
	}

	// Re-discover column metadata and rebuild the column buffers; both can
	// change between executions of the same statement text.
	var result *multierror.Error
	for _, v := range stmt.row.columnValues {
		result = multierror.Append(result, v.close())
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}
	stmt.row.columnInfo = make([]ColumnInfo, 0, numCols)
	stmt.row.columnValues = make([]*SqlValue, 0, numCols)

	for i := 0; i < numCols; i++ {
		ci, err := newColumnInfo(stmt, i)
		if err != nil {
			return err
		}
		stmt.row.columnInfo = append(stmt.row.columnInfo, ci)

		oratype := ci.oracleType
		// A scale-zero NUMBER below the int64 precision bound is fetched as
		// a native int64 instead of numeric text.
		if oratype.num == TypeNumber && oratype.scale == 0 &&
			0 < oratype.precision && oratype.precision < maxInt64Precision {
			oratype = Int64()
		}
		cell := newSqlValue(stmt.conn.client, stmt.conn.ctxt)
		if _, err := cell.initHandle(oratype, stmt.fetchArraySize); err != nil {
			return err
		}
		if err := stmt.conn.client.Define(stmt.handle, i+1, cell.handle); err != nil {
			return errors.Wrap(err, "attaching column buffer")
		}
		stmt.row.columnValues = append(stmt.row.columnValues, cell)
	}
	return nil
}

// Fetch returns the next row, or ErrNoMoreData once the result set is
// exhausted. The returned Row is a view over the statement's column buffers
// and is only valid until the next Fetch or Close.
func (stmt *Statement) Fetch() (*Row, error) {
	found, bufferRowIndex, err := stmt.conn.client.Fetch(stmt.handle)
	if err != nil {
		return nil, errors.Wrap(err, "fetching row")
	}
	if !found {
		return nil, ErrNoMoreData
	}
	for _, v := range stmt.row.columnValues {
		v.bufferRowIndex = bufferRowIndex
	}
	return &stmt.row, nil
}

// BindCount returns the number of bind variables. In SQL statements this
// counts every bind marker including duplicates; in PL/SQL it counts unique
// names only.
func (stmt *Statement) BindCount() int {
	return stmt.bindCount
}

// BindNames returns the unique bind variable names, upper-cased.
func (stmt *Statement) BindNames() []string {
	names := make([]string, len(stmt.bindNames))
	copy(names, stmt.bindNames)
	return names
}

// ColumnCount returns the number of result columns; zero for non-queries.
func (stmt *Statement) ColumnCount() int {
	return len(stmt.row.columnInfo)
}

// ColumnNames returns the result column names; empty for non-queries.
func (stmt *Statement) ColumnNames() []string {
	names := make([]string, 0, len(stmt.row.columnInfo))
	for _, info := range stmt.row.columnInfo {
		names = append(names, info.Name())
	}
	return names
}

// ColumnInfo returns the result column metadata discovered by the last
// execution.
func (stmt *Statement) ColumnInfo() []ColumnInfo {
	return stmt.row.columnInfo
}

// StmtType returns the statement classification.
func (stmt *Statement) StmtType() StmtType {
	return stmt.stmtType
}

// IsReturning reports whether the statement has a RETURNING INTO clause.
func (stmt *Statement) IsReturning() bool {
	return stmt.isReturning
}

// RowCount returns the number of rows affected or fetched so far.
func (stmt *Statement) RowCount() (uint64, error) {
	return stmt.conn.client.RowCount(stmt.handle)
}

// FetchArraySize returns the number of rows buffered per network round trip.
func (stmt *Statement) FetchArraySize() uint32 {
	return stmt.fetchArraySize
}

//
// ColumnInfo
//

// ColumnInfo describes one column of an executed query. It is immutable for
// that execution.
type ColumnInfo struct {
	name       string
	oracleType *OracleType
	nullable   bool
}

func newColumnInfo(stmt *Statement, idx int) (ColumnInfo, error) {
	qc, err := stmt.conn.client.QueryColumnInfo(stmt.handle, idx+1)
	if err != nil {
		return ColumnInfo{}, errors.Wrapf(err, "describing column %d", idx+1)
	}
	return ColumnInfo{name: qc.Name, oracleType: qc.OracleType, nullable: qc.Nullable}, nil
}

func (ci ColumnInfo) Name() string { return ci.name }

func (ci ColumnInfo) OracleType() *OracleType { return ci.oracleType }

// Nullable is false when the column is declared NOT NULL.
func (ci ColumnInfo) Nullable() bool { return ci.nullable }

func (ci ColumnInfo) String() string {
	if ci.nullable {
		return fmt.Sprintf("%s %s", ci.name, ci.oracleType)
	}
	return fmt.Sprintf("%s %s NOT NULL", ci.name, ci.oracleType)
}

//
// Row
//

// Row is a view over the current fetch buffer. It stays owned by the
// statement; values read from it must be consumed before the next Fetch.
type Row struct {
	columnInfo   []ColumnInfo
	columnValues []*SqlValue
}

// Get returns the value cell of a column, addressed by 0-based position
// (int) or case-insensitive column name (string).
func (r *Row) Get(index interface{}) (*SqlValue, error) {
	switch idx := index.(type) {
	case int:
		if idx < 0 || idx >= len(r.columnValues) {
			return nil, &InvalidColumnIndexError{Index: idx}
		}
		return r.columnValues[idx], nil
	case string:
		for i, info := range r.columnInfo {
			if strings.EqualFold(info.name, idx) {
				return r.columnValues[i], nil
			}
		}
		return nil, &InvalidColumnNameError{Name: idx}
	}
	return nil, errors.Errorf("column index must be an int or a string, got %T", index)
}

// Columns returns every column cell of the current row.
func (r *Row) Columns() []*SqlValue {
	return r.columnValues
}
