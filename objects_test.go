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
	"testing"
	"time"
)

func TestValues(t *testing.T) {
	PST := time.FixedZone("PST", -8*60*60)

	cases := []struct {
		name string
		fill func(o *Obj)
		out  string
	}{
		{"true", func(o *Obj) { o.Bool(true) }, "true"},
		{"false", func(o *Obj) { o.Bool(false) }, "false"},
		{"int", func(o *Obj) { o.Int(-42) }, "-42"},
		{"real", func(o *Obj) { o.Real(1.5) }, "1.5"},
		{"real integral", func(o *Obj) { o.Real(-3) }, "-3."},
		{"real small", func(o *Obj) { o.Real(0.0625) }, "0.0625"},
		{"name", func(o *Obj) { o.Name("Catalog") }, "/Catalog"},
		{"name escaped", func(o *Obj) { o.Name("A B#") }, "/A#20B#23"},
		{"ref", func(o *Obj) { o.Ref(NewRef(7)) }, "7 0 R"},
		{"string", func(o *Obj) { o.Str(String("hello")) }, "(hello)"},
		{"string nested parens",
			func(o *Obj) { o.Str(String("a (test version)")) },
			"(a (test version))"},
		{"string unbalanced",
			func(o *Obj) { o.Str(String("a (test version")) },
			`(a \(test version)`},
		{"string binary", func(o *Obj) { o.Str(String("\000")) }, "<00>"},
		{"text ascii", func(o *Obj) { o.TextStr("hello") }, "(hello)"},
		{"text latin",
			func(o *Obj) { o.TextStr("ein Bär") },
			`(ein B\344r)`},
		{"text cjk",
			func(o *Obj) { o.TextStr("中文") },
			"<feff4e2d6587>"},
		{"date",
			func(o *Obj) {
				o.Date(time.Date(1998, 12, 23, 19, 52, 0, 0, PST))
			},
			"(D:19981223195200-08'00')"},
		{"rect",
			func(o *Obj) { o.Rect(Rect{X1: 0, Y1: 0, X2: 10.5, Y2: -3}) },
			"[0. 0. 10.5 -3.]"},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			w := NewWriter()
			test.fill(w.Obj(NewRef(1)))

			want := "1 0 obj\n" + test.out + "\nendobj\n\n"
			if got := w.buf.String(); got != want {
				t.Errorf("got %q, expected %q", got, want)
			}
		})
	}
}

func TestNestedValues(t *testing.T) {
	w := NewWriter()

	dict := w.Obj(NewRef(1)).Dict()
	inner := dict.Key("A").Dict()
	inner.Key("B").Bool(true)
	inner.Close()
	arr := dict.Key("C").Array()
	arr.Item().Int(1)
	sub := arr.Item().Array()
	sub.Item().Int(2)
	sub.Item().Int(3)
	sub.Close()
	arr.Close()
	dict.Close()

	want := "1 0 obj\n" +
		"<<\n" +
		"/A <<\n" +
		"/B true\n" +
		">>\n" +
		"\n" +
		"/C [1 [2 3]]\n" +
		">>\n" +
		"endobj\n" +
		"\n"
	if got := w.buf.String(); got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
}

func TestTextString(t *testing.T) {
	cases := []struct {
		in  string
		out String
	}{
		{"", String("")},
		{"hello", String("hello")},
		{"two\nlines", String("two\nlines")},
		{"ein Bär", String("ein B\xe4r")},
		{"naïve", String("na\xefve")},
		{"€100", String("\xa0100")},
		{"em—dash", String("em\x84dash")},
		{"ﬁnis", String("\x93nis")},
		// 0xAD is undefined in PDFDocEncoding, so the soft hyphen
		// forces the UTF-16 form.
		{"a\u00adb", String("\xfe\xff\x00a\x00\xad\x00b")},
		{"中文", String("\xfe\xff\x4e\x2d\x65\x87")},
	}
	for _, test := range cases {
		if got := TextString(test.in); !bytes.Equal(got, test.out) {
			t.Errorf("%q: got %q, expected %q", test.in, got, test.out)
		}
	}
}

func TestDate(t *testing.T) {
	cases := []struct {
		in  time.Time
		out string
	}{
		{time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			"D:20000101000000+00'00'"},
		{time.Date(2020, 12, 24, 16, 30, 12, 0, time.FixedZone("", 90*60)),
			"D:20201224163012+01'30'"},
	}
	for _, test := range cases {
		if got := Date(test.in); string(got) != test.out {
			t.Errorf("got %q, expected %q", got, test.out)
		}
	}
}

func TestNameEscaping(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"Name", "/Name"},
		{"A;Name_With-Various***Chars?", "/A;Name_With-Various***Chars?"},
		{"paired()parentheses", "/paired#28#29parentheses"},
		{"The_Key_of_F#_Minor", "/The_Key_of_F#23_Minor"},
		{"1.2", "/1.2"},
		{"", "/"},
		{"A B", "/A#20B"},
	}
	for _, test := range cases {
		buf := &bytes.Buffer{}
		writeName(buf, test.in)
		if got := buf.String(); got != test.out {
			t.Errorf("%q: got %q, expected %q", test.in, got, test.out)
		}
	}
}
