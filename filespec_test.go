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
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFileSpec(t *testing.T) {
	w := NewWriter()
	f := w.FileSpec(NewRef(1))
	f.FileSystem("URL")
	f.Path(String("https://example.com/report.pdf"))
	f.UnicodeFile("report.pdf")
	f.Volatile(false)
	f.Description("quarterly report")
	f.EmbeddedFile(NewRef(2))
	f.Close()

	want := "1 0 obj\n" +
		"<<\n" +
		"/Type /Filespec\n" +
		"/FS /URL\n" +
		"/F (https://example.com/report.pdf)\n" +
		"/UF (report.pdf)\n" +
		"/V false\n" +
		"/Desc (quarterly report)\n" +
		"/EF <<\n" +
		"/F 2 0 R\n" +
		">>\n" +
		"\n" +
		">>\n" +
		"endobj\n" +
		"\n"
	if d := cmp.Diff(want, w.buf.String()); d != "" {
		t.Errorf("unexpected output (-want +got):\n%s", d)
	}
}

func TestEmbedParams(t *testing.T) {
	w := NewWriter()
	p := NewEmbedParams(w.Obj(NewRef(9)))
	p.Size(1024)
	p.CreationDate(time.Date(2020, 12, 24, 16, 30, 12, 0,
		time.FixedZone("", 90*60)))
	p.CheckSum(String("\x01\x02"))
	p.Close()

	want := "9 0 obj\n" +
		"<<\n" +
		"/Size 1024\n" +
		"/CreationDate (D:20201224163012+01'30')\n" +
		"/CheckSum <0102>\n" +
		">>\n" +
		"endobj\n" +
		"\n"
	if d := cmp.Diff(want, w.buf.String()); d != "" {
		t.Errorf("unexpected output (-want +got):\n%s", d)
	}
}
