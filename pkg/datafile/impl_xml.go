/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package datafile

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/voedger/modlint/pkg/schema"
)

var evalRefRegexp = regexp.MustCompile(`\bref\(\s*['"]([^'"]+)['"]\s*\)`)

func parseXMLImpl(fileName string, data []byte) (*File, error) {
	p := &xmlParser{
		fileName: fileName,
		data:     data,
		lines:    newlineOffsets(data),
		file:     &File{Name: fileName},
	}
	d := xml.NewDecoder(bytes.NewReader(data))
	rootSeen := false
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, p.decodeErr(d, err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if rootSeen {
			return nil, malformed(fileName, p.lineAt(d.InputOffset()), "more than one root element")
		}
		rootSeen = true
		if start.Name.Local != tagOdoo && start.Name.Local != tagOpenERP {
			return nil, malformed(fileName, p.lineAt(d.InputOffset()), "unexpected root element <%s>", start.Name.Local)
		}
		if err := p.container(d); err != nil {
			return nil, err
		}
	}
	if !rootSeen {
		return nil, malformed(fileName, 0, "no root element")
	}
	return p.file, nil
}

// container reads the children of <odoo> and <data> up to the closing tag
func (p *xmlParser) container(d *xml.Decoder) error {
	for {
		off := d.InputOffset()
		tok, err := d.Token()
		if err != nil {
			return p.decodeErr(d, err)
		}
		switch t := tok.(type) {
		case xml.EndElement:
			return nil
		case xml.StartElement:
			line := p.lineAt(off)
			switch t.Name.Local {
			case tagData:
				err = p.container(d)
			case tagRecord:
				err = p.record(d, t, line)
			case tagTemplate, tagMenuItem, tagReport, tagActWin:
				if id := attr(t, attrID); id != "" {
					p.file.Defines = append(p.file.Defines, Definition{ID: id, Line: line})
				}
				err = d.Skip()
			default:
				err = d.Skip()
			}
			if err != nil {
				return p.decodeErr(d, err)
			}
		}
	}
}

func (p *xmlParser) record(d *xml.Decoder, start xml.StartElement, line int) error {
	rec := schema.DataRecord{
		ID:       attr(start, attrID),
		Model:    schema.ModelID(attr(start, attrModel)),
		Location: schema.SourceLocation{File: p.fileName, Line: line},
	}
	if rec.ID != "" {
		p.file.Defines = append(p.file.Defines, Definition{ID: rec.ID, Line: line})
	}
	for {
		off := d.InputOffset()
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.EndElement:
			p.file.Records = append(p.file.Records, rec)
			return nil
		case xml.StartElement:
			if t.Name.Local != tagField {
				if err := d.Skip(); err != nil {
					return err
				}
				continue
			}
			entry, err := p.field(d, t, p.lineAt(off))
			if err != nil {
				return err
			}
			rec.Fields = append(rec.Fields, entry)
		}
	}
}

func (p *xmlParser) field(d *xml.Decoder, start xml.StartElement, line int) (schema.FieldEntry, error) {
	name := schema.FieldName(attr(start, attrName))
	entry := schema.FieldEntry{Name: name, Line: line}

	if ref, ok := attrOk(start, attrRef); ok {
		entry.Value = schema.RawValue{Kind: schema.ValueReference, Text: ref}
		p.file.Refs = append(p.file.Refs, Ref{ID: ref, Line: line, Field: name})
		return entry, d.Skip()
	}
	if eval, ok := attrOk(start, attrEval); ok {
		entry.Value = schema.RawValue{Kind: schema.ValueExpression, Text: eval}
		for _, m := range evalRefRegexp.FindAllStringSubmatch(eval, -1) {
			p.file.Refs = append(p.file.Refs, Ref{ID: m[1], Line: line, Field: name})
		}
		return entry, d.Skip()
	}
	if search, ok := attrOk(start, attrSearch); ok {
		entry.Value = schema.RawValue{Kind: schema.ValueExpression, Text: search}
		return entry, d.Skip()
	}
	if file, ok := attrOk(start, attrFile); ok {
		entry.Value = schema.RawValue{Kind: schema.ValueUnparsed, Text: file}
		return entry, d.Skip()
	}

	markup := attr(start, attrType) == "xml" || attr(start, attrType) == "html"
	from := d.InputOffset()
	text := strings.Builder{}
	nested := false
	for {
		to := d.InputOffset()
		tok, err := d.Token()
		if err != nil {
			return entry, err
		}
		switch t := tok.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			nested = true
			if err := d.Skip(); err != nil {
				return entry, err
			}
		case xml.EndElement:
			switch {
			case markup:
				entry.Value = schema.RawValue{Kind: schema.ValueLiteral, Text: strings.TrimSpace(string(p.slice(from, to)))}
			case nested:
				entry.Value = schema.RawValue{Kind: schema.ValueUnparsed}
			default:
				entry.Value = schema.RawValue{Kind: schema.ValueLiteral, Text: strings.TrimSpace(text.String())}
			}
			return entry, nil
		}
	}
}

func (p *xmlParser) decodeErr(d *xml.Decoder, err error) error {
	var me *MalformedError
	if errors.As(err, &me) {
		return err
	}
	var se *xml.SyntaxError
	if errors.As(err, &se) {
		return malformed(p.fileName, se.Line, "%s", se.Msg)
	}
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return malformed(p.fileName, p.lineAt(d.InputOffset()), "%v", err)
}

func (p *xmlParser) lineAt(off int64) int {
	return sort.Search(len(p.lines), func(i int) bool { return int64(p.lines[i]) >= off }) + 1
}

func (p *xmlParser) slice(from, to int64) []byte {
	return p.data[from:to]
}

func newlineOffsets(data []byte) []int {
	res := make([]int, 0, bytes.Count(data, []byte{'\n'}))
	for i, b := range data {
		if b == '\n' {
			res = append(res, i)
		}
	}
	return res
}

func attr(e xml.StartElement, name string) string {
	v, _ := attrOk(e, name)
	return v
}

func attrOk(e xml.StartElement, name string) (string, bool) {
	for _, a := range e.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
