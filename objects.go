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
	"math"
	"strconv"
	"strings"
	"time"
)

// Ref is the number of an indirect object.  Valid object numbers are
// strictly positive; the number zero is reserved for the head of the
// free list in the cross-reference table and cannot refer to an
// object.
type Ref int32

// NewRef returns the reference for the given object number.
//
// NewRef panics if id is outside the range 1..math.MaxInt32.
func NewRef(id int) Ref {
	if id < 1 || id > math.MaxInt32 {
		panic("pdfwrite: indirect object number out of range")
	}
	return Ref(id)
}

// Rect is a rectangle, given by the coordinates of two opposite
// corners.  Rectangles are serialized as four-element arrays in the
// order x1, y1, x2, y2.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// String is a PDF string.  The character set encoding, if any, is
// determined by the context; use [TextString] for strings which hold
// human-readable text.
type String []byte

// TextString returns a String holding s in the PDF "text string"
// encoding: PDFDocEncoding where s allows it, UTF-16BE with a byte
// order mark otherwise.
func TextString(s string) String {
	buf, ok := pdfDocEncode(s)
	if ok {
		return buf
	}
	return utf16Encode(s)
}

// Date returns a String encoding the given date and time, using the
// layout D:YYYYMMDDHHmmSSOHH'mm'.
func Date(t time.Time) String {
	s := t.Format("D:20060102150405-0700")
	k := len(s) - 2
	s = s[:k] + "'" + s[k:] + "'"
	return String(s)
}

// formatReal is used for all real numbers in the output.  PDF has no
// exponent syntax, and a bare integer would be read back as an
// Integer object, so a decimal point is always present.
func formatReal(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s = s + "."
	}
	return s
}

// writeName appends the name object for s, including the leading
// slash.  Bytes which cannot appear verbatim in a name are written
// using the #xx hexadecimal form.
func writeName(buf *bytes.Buffer, s string) {
	buf.WriteByte('/')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSpace[c] || isDelimiter[c] || c < 0x21 || c > 0x7e || c == '#' {
			fmt.Fprintf(buf, "#%02x", c)
		} else {
			buf.WriteByte(c)
		}
	}
}

// writeString appends the serialized form of s.  The literal form
// with backslash escapes is used unless so many bytes need escaping
// that the hexadecimal form is shorter.
func writeString(buf *bytes.Buffer, s String) {
	l := []byte(s)

	level := 0
	for _, c := range l {
		if c == '(' {
			level++
		} else if c == ')' {
			level--
			if level < 0 {
				break
			}
		}
	}
	balanced := level == 0

	var funny []int
	for i, c := range l {
		if c == '\r' || c == '\n' || c == '\t' {
			continue
		}
		if c < 32 || c >= 127 || c == '\\' ||
			!balanced && (c == '(' || c == ')') {
			funny = append(funny, i)
		}
	}
	n := len(l)

	if 3*len(funny) <= n {
		buf.WriteByte('(')
		pos := 0
		for _, i := range funny {
			if pos < i {
				buf.Write(l[pos:i])
			}
			c := l[i]
			switch c {
			case '\b':
				buf.WriteString(`\b`)
			case '\f':
				buf.WriteString(`\f`)
			case '(':
				buf.WriteString(`\(`)
			case ')':
				buf.WriteString(`\)`)
			case '\\':
				buf.WriteString(`\\`)
			default:
				fmt.Fprintf(buf, `\%03o`, c)
			}
			pos = i + 1
		}
		if pos < n {
			buf.Write(l[pos:n])
		}
		buf.WriteByte(')')
	} else {
		fmt.Fprintf(buf, "<%x>", l)
	}
}

var (
	isSpace = map[byte]bool{
		0:  true,
		9:  true,
		10: true,
		12: true,
		13: true,
		32: true,
	}
	isDelimiter = map[byte]bool{
		'(': true,
		')': true,
		'<': true,
		'>': true,
		'[': true,
		']': true,
		'{': true,
		'}': true,
		'/': true,
		'%': true,
	}
)
