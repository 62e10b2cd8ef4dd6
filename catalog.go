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

import "golang.org/x/text/language"

// The writers in this file are thin wrappers around [Dict].  They
// contain no logic of their own; each method writes one key of the
// corresponding dictionary, in the order the methods are called.

// Catalog writes a document catalog dictionary.
//
// The Document Catalog is documented in section 7.7.2 of
// PDF 32000-1:2008.
type Catalog struct {
	dict *Dict
}

// Catalog starts the document catalog as a new indirect object.
func (w *Writer) Catalog(ref Ref) *Catalog {
	return NewCatalog(w.Obj(ref))
}

// NewCatalog writes a document catalog into the given slot.
func NewCatalog(obj *Obj) *Catalog {
	dict := obj.Dict()
	dict.Key("Type").Name("Catalog")
	return &Catalog{dict: dict}
}

// Pages writes the /Pages entry, pointing to the root of the page
// tree.  This entry is required.
func (c *Catalog) Pages(ref Ref) *Catalog {
	c.dict.Key("Pages").Ref(ref)
	return c
}

// Outlines writes the /Outlines entry, pointing to the root of the
// document outline.
func (c *Catalog) Outlines(ref Ref) *Catalog {
	c.dict.Key("Outlines").Ref(ref)
	return c
}

// PageMode writes the /PageMode entry.  Valid values include
// "UseNone", "UseOutlines" and "UseThumbs".
func (c *Catalog) PageMode(mode string) *Catalog {
	c.dict.Key("PageMode").Name(mode)
	return c
}

// Lang writes the /Lang entry, giving the natural language for all
// text in the document.
func (c *Catalog) Lang(lang language.Tag) *Catalog {
	c.dict.Key("Lang").TextStr(lang.String())
	return c
}

// Close closes the catalog dictionary and the containing indirect
// object.
func (c *Catalog) Close() {
	c.dict.Close()
}

// Pages writes a page tree node dictionary.
type Pages struct {
	dict *Dict
}

// Pages starts a page tree node as a new indirect object.
func (w *Writer) Pages(ref Ref) *Pages {
	return NewPages(w.Obj(ref))
}

// NewPages writes a page tree node into the given slot.
func NewPages(obj *Obj) *Pages {
	dict := obj.Dict()
	dict.Key("Type").Name("Pages")
	return &Pages{dict: dict}
}

// Parent writes the /Parent entry.  It is required for all page tree
// nodes except the root.
func (p *Pages) Parent(ref Ref) *Pages {
	p.dict.Key("Parent").Ref(ref)
	return p
}

// Kids writes the /Kids and /Count entries.
func (p *Pages) Kids(kids []Ref) *Pages {
	arr := p.dict.Key("Kids").Array()
	for _, kid := range kids {
		arr.Item().Ref(kid)
	}
	count := arr.Len()
	arr.Close()
	p.dict.Key("Count").Int(count)
	return p
}

// MediaBox writes the /MediaBox entry, which is inherited by all
// pages below this node.
func (p *Pages) MediaBox(r Rect) *Pages {
	p.dict.Key("MediaBox").Rect(r)
	return p
}

// Close closes the page tree dictionary and the containing indirect
// object.
func (p *Pages) Close() {
	p.dict.Close()
}

// Page writes a page dictionary.
type Page struct {
	dict *Dict
}

// Page starts a page as a new indirect object.
func (w *Writer) Page(ref Ref) *Page {
	return NewPage(w.Obj(ref))
}

// NewPage writes a page into the given slot.
func NewPage(obj *Obj) *Page {
	dict := obj.Dict()
	dict.Key("Type").Name("Page")
	return &Page{dict: dict}
}

// Parent writes the /Parent entry.  This entry is required.
func (p *Page) Parent(ref Ref) *Page {
	p.dict.Key("Parent").Ref(ref)
	return p
}

// MediaBox writes the /MediaBox entry, the boundaries of the medium
// the page is printed on.
func (p *Page) MediaBox(r Rect) *Page {
	p.dict.Key("MediaBox").Rect(r)
	return p
}

// Contents writes the /Contents entry, pointing to the content
// stream of the page.
func (p *Page) Contents(ref Ref) *Page {
	p.dict.Key("Contents").Ref(ref)
	return p
}

// Resources starts the /Resources dictionary.  The returned writer
// must be closed before the page is used again.
func (p *Page) Resources() *Dict {
	return p.dict.Key("Resources").Dict()
}

// Close closes the page dictionary and the containing indirect
// object.
func (p *Page) Close() {
	p.dict.Close()
}
