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
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// End writes the cross-reference table and the file trailer.  The
// trailer names root as the document catalog.  After End, the only
// permitted operation on the Writer is [Writer.Bytes].
//
// End panics if an indirect object is still open.
func (w *Writer) End(root Ref) {
	if w.finished {
		panic("pdfwrite: document already finished")
	}
	if w.inObject {
		panic("pdfwrite: indirect object still open")
	}
	if root < 1 {
		panic("pdfwrite: invalid indirect object number")
	}

	xrefLen, xrefPos := w.writeXRefTable()
	w.writeTrailer(root, xrefLen, xrefPos)
	w.finished = true
}

// writeXRefTable emits one subsection covering the object numbers
// from 0 up to the largest number in use.  Numbers which were never
// written get a zero-filled free entry; no linked free list is
// formed, since this writer never frees objects.
func (w *Writer) writeXRefTable() (int, int64) {
	ids := maps.Keys(w.xref)
	slices.Sort(ids)

	xrefLen := 1
	if len(ids) > 0 {
		xrefLen = int(ids[len(ids)-1]) + 1
	}
	xrefPos := int64(w.buf.Len())

	fmt.Fprintf(&w.buf, "xref\n0 %d\n", xrefLen)

	// Object number zero is permanently free, with the maximal
	// generation number.
	w.buf.WriteString("0000000000 65535 f\r\n")

	next := Ref(1)
	for _, id := range ids {
		for next < id {
			w.buf.WriteString("0000000000 65535 f\r\n")
			next++
		}
		fmt.Fprintf(&w.buf, "%010d 00000 n\r\n", w.xref[id])
		next = id + 1
	}

	return xrefLen, xrefPos
}

func (w *Writer) writeTrailer(root Ref, xrefLen int, xrefPos int64) {
	w.buf.WriteString("trailer\n")

	dict := (&Obj{w: w}).Dict()
	dict.Key("Size").Int(xrefLen)
	dict.Key("Root").Ref(root)
	dict.Close()

	fmt.Fprintf(&w.buf, "startxref\n%d\n%%%%EOF\n", xrefPos)
}
