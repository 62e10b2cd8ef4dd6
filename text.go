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

import "unicode/utf16"

// pdfDocEncode converts s to PDFDocEncoding.  ok is false if s
// contains a character not covered by the encoding.
func pdfDocEncode(s string) (res String, ok bool) {
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		c, ok := pdfDocByte(r)
		if !ok {
			return nil, false
		}
		buf = append(buf, c)
	}
	return String(buf), true
}

// pdfDocByte returns the PDFDocEncoding code for r.  The encoding is
// given in Annex D.2 of PDF 32000-1:2008.
func pdfDocByte(r rune) (byte, bool) {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return byte(r), true
	case r >= 0x20 && r <= 0x7e:
		return byte(r), true
	case r >= 0xa1 && r <= 0xff && r != 0xad:
		// identical to Latin-1, except that 0xad is undefined
		return byte(r), true
	}
	c, ok := pdfDocSpecial[r]
	return c, ok
}

var pdfDocSpecial = map[rune]byte{
	'˘': 0x18, // breve
	'ˇ': 0x19, // caron
	'ˆ': 0x1a, // circumflex
	'˙': 0x1b, // dotaccent
	'˝': 0x1c, // hungarumlaut
	'˛': 0x1d, // ogonek
	'˚': 0x1e, // ring
	'˜': 0x1f, // tilde
	'•': 0x80, // bullet
	'†': 0x81, // dagger
	'‡': 0x82, // daggerdbl
	'…': 0x83, // ellipsis
	'—': 0x84, // emdash
	'–': 0x85, // endash
	'ƒ': 0x86, // florin
	'⁄': 0x87, // fraction
	'‹': 0x88, // guilsinglleft
	'›': 0x89, // guilsinglright
	'−': 0x8a, // minus
	'‰': 0x8b, // perthousand
	'„': 0x8c, // quotedblbase
	'“': 0x8d, // quotedblleft
	'”': 0x8e, // quotedblright
	'‘': 0x8f, // quoteleft
	'’': 0x90, // quoteright
	'‚': 0x91, // quotesinglbase
	'™': 0x92, // trademark
	'ﬁ': 0x93, // fi
	'ﬂ': 0x94, // fl
	'Ł': 0x95, // Lslash
	'Œ': 0x96, // OE
	'Š': 0x97, // Scaron
	'Ÿ': 0x98, // Ydieresis
	'Ž': 0x99, // Zcaron
	'ı': 0x9a, // dotlessi
	'ł': 0x9b, // lslash
	'œ': 0x9c, // oe
	'š': 0x9d, // scaron
	'ž': 0x9e, // zcaron
	'€': 0xa0, // Euro
}

// utf16Encode converts s to UTF-16BE, prefixed with a byte order
// mark.
func utf16Encode(s string) String {
	enc := utf16.Encode([]rune(s))
	buf := make([]byte, 2*len(enc)+2)
	buf[0] = 0xFE
	buf[1] = 0xFF
	for i, c := range enc {
		buf[2*i+2] = byte(c >> 8)
		buf[2*i+3] = byte(c)
	}
	return String(buf)
}
