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

// ObjectType describes a server-side object or collection type. Only the
// minimum needed to read and write object values is modeled here; full
// attribute introspection belongs to the native client.
type ObjectType struct {
	schema     string
	name       string
	collection bool
	handle     ObjectTypeHandle
}

// NewObjectType builds an object type descriptor around a native handle.
func NewObjectType(schema, name string, collection bool, handle ObjectTypeHandle) *ObjectType {
	return &ObjectType{schema: schema, name: name, collection: collection, handle: handle}
}

func (t *ObjectType) Schema() string { return t.schema }

func (t *ObjectType) Name() string { return t.name }

// IsCollection reports whether values of this type are collections rather
// than plain objects.
func (t *ObjectType) IsCollection() bool { return t.collection }

func (t *ObjectType) Handle() ObjectTypeHandle { return t.handle }

// FullName returns SCHEMA.NAME.
func (t *ObjectType) FullName() string {
	if t.schema == "" {
		return t.name
	}
	return t.schema + "." + t.name
}

func (t *ObjectType) String() string { return t.FullName() }

// Object is a value of a non-collection object type. The native handle stays
// owned by the client; Object only borrows it for the lifetime of the row or
// bind value it was read from.
type Object struct {
	client  NativeClient
	handle  ObjectHandle
	objType *ObjectType
}

func newObject(client NativeClient, handle ObjectHandle, objType *ObjectType) *Object {
	return &Object{client: client, handle: handle, objType: objType}
}

func (o *Object) ObjectType() *ObjectType { return o.objType }

func (o *Object) Handle() ObjectHandle { return o.handle }

// String renders the object's structural form, e.g. TYPE(1, 'a').
func (o *Object) String() string {
	s, err := o.client.ObjectString(o.handle)
	if err != nil {
		return o.objType.FullName() + "(?)"
	}
	return s
}

// Collection is a value of a collection type.
type Collection struct {
	Object
}

func newCollection(client NativeClient, handle ObjectHandle, objType *ObjectType) *Collection {
	return &Collection{Object{client: client, handle: handle, objType: objType}}
}
