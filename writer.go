// schreibgut.de/go/pdfwrite - a library for writing PDF files
// Copyright (C) 2026  Henrik Ottens <henrik@schreibgut.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdfwrite

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Writer builds a PDF file in memory.
//
// At most one indirect object can be open at any time; the next
// object can only be started once the value of the previous one has
// been completed.  All output is appended to an internal buffer, so
// no method of this package returns an error.
type Writer struct {
	buf  bytes.Buffer
	xref map[Ref]int64

	// inObject is set while an indirect object is open.  depth is the
	// current dictionary nesting level, used for indentation only.
	inObject bool
	depth    int

	indent   int
	finished bool
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{
		xref: make(map[Ref]int64),
	}
}

// SetIndent sets the number of spaces written per nesting level when
// dictionaries are pretty-printed.  The default of 0 disables
// indentation.
func (w *Writer) SetIndent(indent int) {
	w.indent = indent
}

// WriteHeader writes the PDF version header, followed by an empty
// line.  This must be the first output of the file.
func (w *Writer) WriteHeader(major, minor int) {
	fmt.Fprintf(&w.buf, "%%PDF-%d.%d\n\n", major, minor)
}

// Obj starts a new indirect object and returns the slot writer for
// its value.  The object is closed automatically when the value is
// complete: immediately for primitive values, or when the top-level
// [Array] or [Dict] is closed.
//
// Obj panics if another indirect object is still open, or if an
// object with the same number has already been written.
func (w *Writer) Obj(ref Ref) *Obj {
	w.beginIndirect(ref)
	return &Obj{w: w, indirect: true}
}

// Bytes returns the finished file.  It panics if [Writer.End] has
// not been called.  The Writer must not be used afterwards.
func (w *Writer) Bytes() []byte {
	if !w.finished {
		panic("pdfwrite: document not finished")
	}
	return w.buf.Bytes()
}

func (w *Writer) beginIndirect(ref Ref) {
	if w.finished {
		panic("pdfwrite: document already finished")
	}
	if w.inObject {
		panic("pdfwrite: previous indirect object still open")
	}
	if ref < 1 {
		panic("pdfwrite: invalid indirect object number")
	}
	if _, seen := w.xref[ref]; seen {
		panic(fmt.Sprintf("pdfwrite: object %d already written", ref))
	}

	w.inObject = true
	w.depth++
	w.xref[ref] = int64(w.buf.Len())
	fmt.Fprintf(&w.buf, "%d 0 obj\n", ref)
}

func (w *Writer) endIndirect() {
	if b := w.buf.Bytes(); len(b) == 0 || b[len(b)-1] != '\n' {
		w.buf.WriteByte('\n')
	}
	w.depth--
	w.inObject = false
	w.buf.WriteString("endobj\n\n")
}

func (w *Writer) writeIndent() {
	for n := w.indent * w.depth; n > 0; n-- {
		w.buf.WriteByte(' ')
	}
}

// Obj is the writer for a single value: an entire indirect object, an
// array item, or a dictionary value.  Exactly one of the methods must
// be called; each of them fills the slot and invalidates the Obj.
// An Obj which is dropped without a call writes nothing.
type Obj struct {
	w        *Writer
	indirect bool
	filled   bool
}

func (o *Obj) slot() *Writer {
	if o.filled {
		panic("pdfwrite: value slot already filled")
	}
	o.filled = true
	return o.w
}

func (o *Obj) close() {
	if o.indirect {
		o.w.endIndirect()
	}
}

// Bool writes a boolean.
func (o *Obj) Bool(v bool) {
	w := o.slot()
	if v {
		w.buf.WriteString("true")
	} else {
		w.buf.WriteString("false")
	}
	o.close()
}

// Int writes an integer number.
func (o *Obj) Int(v int) {
	w := o.slot()
	w.buf.WriteString(strconv.Itoa(v))
	o.close()
}

// Real writes a real number.
func (o *Obj) Real(v float64) {
	w := o.slot()
	w.buf.WriteString(formatReal(v))
	o.close()
}

// Name writes a name object.  The leading slash is added by the
// writer and must not be part of name.
func (o *Obj) Name(name string) {
	w := o.slot()
	writeName(&w.buf, name)
	o.close()
}

// Str writes a string object.
func (o *Obj) Str(s String) {
	w := o.slot()
	writeString(&w.buf, s)
	o.close()
}

// TextStr writes s as a text string, using [TextString] encoding.
func (o *Obj) TextStr(s string) {
	o.Str(TextString(s))
}

// Date writes t as a date string.
func (o *Obj) Date(t time.Time) {
	o.Str(Date(t))
}

// Ref writes a reference to an indirect object.
func (o *Obj) Ref(ref Ref) {
	if ref < 1 {
		panic("pdfwrite: invalid indirect object number")
	}
	w := o.slot()
	fmt.Fprintf(&w.buf, "%d 0 R", ref)
	o.close()
}

// Rect writes a rectangle as a four-element array.
func (o *Obj) Rect(r Rect) {
	a := o.Array()
	a.Item().Real(r.X1)
	a.Item().Real(r.Y1)
	a.Item().Real(r.X2)
	a.Item().Real(r.Y2)
	a.Close()
}

// Array starts an array.  The returned writer must be closed before
// the enclosing writer is used again.
func (o *Obj) Array() *Array {
	w := o.slot()
	w.buf.WriteByte('[')
	return &Array{w: w, indirect: o.indirect}
}

// Dict starts a dictionary.  The returned writer must be closed
// before the enclosing writer is used again.
func (o *Obj) Dict() *Dict {
	w := o.slot()
	w.writeIndent()
	w.buf.WriteString("<<\n")
	w.depth++
	return &Dict{w: w, indirect: o.indirect}
}

// Array writes an array of objects.  Items are laid out on a single
// line, independent of the indentation setting.
type Array struct {
	w        *Writer
	indirect bool
	n        int
	closed   bool
}

// Item returns the slot writer for the next array element.
func (a *Array) Item() *Obj {
	if a.closed {
		panic("pdfwrite: array already closed")
	}
	if a.n > 0 {
		a.w.buf.WriteByte(' ')
	}
	a.n++
	return &Obj{w: a.w}
}

// Len returns the number of items written so far.
func (a *Array) Len() int {
	return a.n
}

// Close writes the closing bracket.  If the array is the value of an
// indirect object, the object is closed as well.  Close is
// idempotent, so it can be used with defer.
func (a *Array) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.w.buf.WriteByte(']')
	if a.indirect {
		a.w.endIndirect()
	}
}

// Dict writes a dictionary.  Keys are written in call order and are
// not checked for uniqueness; this is the caller's responsibility.
type Dict struct {
	w        *Writer
	indirect bool
	n        int
	closed   bool
}

// Key writes a dictionary key and returns the slot writer for the
// corresponding value.  The leading slash is added by the writer and
// must not be part of name.
func (d *Dict) Key(name string) *Obj {
	if d.closed {
		panic("pdfwrite: dictionary already closed")
	}
	if d.n > 0 {
		d.w.buf.WriteByte('\n')
	}
	d.n++
	d.w.writeIndent()
	writeName(&d.w.buf, name)
	d.w.buf.WriteByte(' ')
	return &Obj{w: d.w}
}

// Close writes the closing marker.  If the dictionary is the value of
// an indirect object, the object is closed as well.  Close is
// idempotent, so it can be used with defer.
func (d *Dict) Close() {
	if d.closed {
		return
	}
	d.closed = true
	if d.n > 0 {
		d.w.buf.WriteByte('\n')
	}
	d.w.depth--
	d.w.writeIndent()
	d.w.buf.WriteString(">>\n")
	if d.indirect {
		d.w.endIndirect()
	}
}
