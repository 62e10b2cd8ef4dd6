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

// Package pdfwrite generates PDF files one object at a time.
//
// A [Writer] accumulates the file in memory.  Indirect objects are
// written strictly one after the other; the writer records the byte
// offset of each object and emits the cross-reference table and the
// file trailer when [Writer.End] is called.
//
// The value of an indirect object is filled in through a chain of
// scoped writers.  [Writer.Obj] returns an [Obj], which accepts
// exactly one value: a primitive, an [Array], or a [Dict].  Array
// items and dictionary values are again represented by [Obj] slots,
// so arbitrarily nested structures can be written without first
// building them in memory.  Every Array and Dict must be closed
// before its parent is used again.
//
//	w := pdfwrite.NewWriter()
//	w.WriteHeader(1, 7)
//
//	catalog := pdfwrite.NewRef(1)
//	tree := pdfwrite.NewRef(2)
//	page := pdfwrite.NewRef(3)
//
//	w.Catalog(catalog).Pages(tree).Close()
//	w.Pages(tree).Kids([]pdfwrite.Ref{page}).Close()
//	p := w.Page(page)
//	p.Parent(tree)
//	p.MediaBox(pdfwrite.Rect{X1: 0, Y1: 0, X2: 595, Y2: 842})
//	p.Close()
//
//	w.End(catalog)
//	err := os.WriteFile("hello.pdf", w.Bytes(), 0666)
//
// All methods append to the in-memory buffer and cannot fail with an
// error.  Misuse of the API (opening a second indirect object while
// one is still open, filling a value slot twice, finishing the
// document with an object still open) is a programmer error and
// panics at the offending call.
package pdfwrite
