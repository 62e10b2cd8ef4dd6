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

import "time"

// FileSpec writes a file specification dictionary.
//
// File specifications are documented in section 7.11.3 of
// PDF 32000-1:2008.
type FileSpec struct {
	dict *Dict
}

// FileSpec starts a file specification as a new indirect object.
func (w *Writer) FileSpec(ref Ref) *FileSpec {
	return NewFileSpec(w.Obj(ref))
}

// NewFileSpec writes a file specification into the given slot.
func NewFileSpec(obj *Obj) *FileSpec {
	dict := obj.Dict()
	dict.Key("Type").Name("Filespec")
	return &FileSpec{dict: dict}
}

// FileSystem writes the /FS entry, naming the file system this
// specification relates to.  With the value "URL", the path is
// interpreted as a uniform resource locator.
func (f *FileSpec) FileSystem(system string) *FileSpec {
	f.dict.Key("FS").Name(system)
	return f
}

// Path writes the /F entry, the file path.  Directories are
// separated by "/", independent of the platform.
func (f *FileSpec) Path(path String) *FileSpec {
	f.dict.Key("F").Str(path)
	return f
}

// UnicodeFile writes the /UF entry, a Unicode-compatible version of
// the file path.
func (f *FileSpec) UnicodeFile(path string) *FileSpec {
	f.dict.Key("UF").TextStr(path)
	return f
}

// Volatile writes the /V entry, indicating whether the file changes
// frequently and should not be cached.
func (f *FileSpec) Volatile(noCache bool) *FileSpec {
	f.dict.Key("V").Bool(noCache)
	return f
}

// Description writes the /Desc entry, a description of the file.
func (f *FileSpec) Description(desc string) *FileSpec {
	f.dict.Key("Desc").TextStr(desc)
	return f
}

// EmbeddedFile writes the /EF entry, referring to an embedded file
// stream object.
func (f *FileSpec) EmbeddedFile(ref Ref) *FileSpec {
	ef := f.dict.Key("EF").Dict()
	ef.Key("F").Ref(ref)
	ef.Close()
	return f
}

// Close closes the file specification dictionary and the containing
// indirect object.
func (f *FileSpec) Close() {
	f.dict.Close()
}

// EmbedParams writes an embedded file parameter dictionary.
type EmbedParams struct {
	dict *Dict
}

// NewEmbedParams writes an embedded file parameter dictionary into
// the given slot.
func NewEmbedParams(obj *Obj) *EmbedParams {
	return &EmbedParams{dict: obj.Dict()}
}

// Size writes the /Size entry, the uncompressed size of the file in
// bytes.
func (p *EmbedParams) Size(size int) *EmbedParams {
	p.dict.Key("Size").Int(size)
	return p
}

// CreationDate writes the /CreationDate entry.
func (p *EmbedParams) CreationDate(t time.Time) *EmbedParams {
	p.dict.Key("CreationDate").Date(t)
	return p
}

// ModDate writes the /ModDate entry, the date the file was last
// modified.
func (p *EmbedParams) ModDate(t time.Time) *EmbedParams {
	p.dict.Key("ModDate").Date(t)
	return p
}

// CheckSum writes the /CheckSum entry, the MD5 checksum of the
// uncompressed file.
func (p *EmbedParams) CheckSum(sum String) *EmbedParams {
	p.dict.Key("CheckSum").Str(sum)
	return p
}

// Close closes the parameter dictionary and, if it was the value of
// an indirect object, the object as well.
func (p *EmbedParams) Close() {
	p.dict.Close()
}
