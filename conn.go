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
	"github.com/pkg/errors"
)

// DefaultLobChunkSize is the number of character units read per LOB round
// trip when streaming large objects.
const DefaultLobChunkSize = 8192

// Context carries the creation parameters shared by every statement and
// value cell of a connection. It replaces process-wide mutable state; build
// one explicitly and pass it to NewConn.
type Context struct {
	// LobChunkSize bounds the window used when streaming LOB values.
	LobChunkSize uint32
}

// NewContext returns a Context with default parameters.
func NewContext() *Context {
	return &Context{LobChunkSize: DefaultLobChunkSize}
}

// Conn drives statements over an established session. Establishing the
// session (credentials, network transport, pooling) belongs to the native
// client; Conn takes over once a NativeClient is available.
//
// A Conn and its statements are not safe for concurrent use without external
// locking.
type Conn struct {
	client NativeClient
	ctxt   *Context
}

// NewConn wraps an established native client session. A nil ctxt selects the
// defaults.
func NewConn(client NativeClient, ctxt *Context) (*Conn, error) {
	if client == nil {
		return nil, errors.New("native client must not be nil")
	}
	if ctxt == nil {
		ctxt = NewContext()
	}
	return &Conn{client: client, ctxt: ctxt}, nil
}

// Prepare readies a statement for execution and fetching.
func (c *Conn) Prepare(sql string) (*Statement, error) {
	return newStatement(c, sql, false, "")
}

// PrepareTagged is Prepare with an explicit scroll flag and statement cache
// tag, both forwarded to the native client.
func (c *Conn) PrepareTagged(sql string, scrollable bool, tag string) (*Statement, error) {
	return newStatement(c, sql, scrollable, tag)
}

// Execute prepares a statement, binds values by position and executes it in
// one call. The returned statement is ready for Fetch on queries and for
// BindValue on out binds; the caller owns closing it.
func (c *Conn) Execute(sql string, params ...interface{}) (*Statement, error) {
	stmt, err := c.Prepare(sql)
	if err != nil {
		return nil, err
	}
	if err := stmt.Execute(params...); err != nil {
		_ = stmt.Close()
		return nil, err
	}
	return stmt, nil
}

// ExecuteNamed is Execute with named binds.
func (c *Conn) ExecuteNamed(sql string, params []NamedParam) (*Statement, error) {
	stmt, err := c.Prepare(sql)
	if err != nil {
		return nil, err
	}
	if err := stmt.ExecuteNamed(params); err != nil {
		_ = stmt.Close()
		return nil, err
	}
	return stmt, nil
}

// Commit commits the current active transaction.
func (c *Conn) Commit() error {
	return errors.Wrap(c.client.Commit(), "commit")
}

// Rollback rolls back the current active transaction.
func (c *Conn) Rollback() error {
	return errors.Wrap(c.client.Rollback(), "rollback")
}

// Ping checks that the session is still alive.
func (c *Conn) Ping() error {
	return errors.Wrap(c.client.Ping(), "ping")
}

// BreakExecution interrupts a statement running on this session from another
// goroutine. It is the only operation safe to call concurrently.
func (c *Conn) BreakExecution() error {
	return errors.Wrap(c.client.BreakExecution(), "break execution")
}

// Close releases the underlying session.
func (c *Conn) Close() error {
	return errors.Wrap(c.client.Close(), "closing connection")
}
