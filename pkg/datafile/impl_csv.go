/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package datafile

import (
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/voedger/modlint/pkg/schema"
)

type csvColumn struct {
	field schema.FieldName
	kind  schema.RawValueKind
	isID  bool
}

func parseCSVImpl(fileName string, r io.Reader) (*File, error) {
	file := &File{Name: fileName}
	model := schema.ModelID(strings.TrimSuffix(filepath.Base(fileName), ExtCSV))

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return file, nil
	}
	if err != nil {
		return nil, csvErr(fileName, err)
	}
	columns := csvColumns(header)

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvErr(fileName, err)
		}
		line, _ := cr.FieldPos(0)
		if len(row) != len(columns) {
			return nil, malformed(fileName, line, "expected %d columns, got %d", len(columns), len(row))
		}
		rec := schema.DataRecord{
			Model:    model,
			Location: schema.SourceLocation{File: fileName, Line: line},
		}
		for i, col := range columns {
			value := row[i]
			if col.isID {
				rec.ID = strings.TrimSpace(value)
				if rec.ID != "" {
					file.Defines = append(file.Defines, Definition{ID: rec.ID, Line: line})
				}
				continue
			}
			if col.kind == schema.ValueReference {
				value = strings.TrimSpace(value)
				for _, id := range strings.Split(value, ",") {
					if id = strings.TrimSpace(id); id != "" {
						file.Refs = append(file.Refs, Ref{ID: id, Line: line, Field: col.field})
					}
				}
			}
			rec.Fields = append(rec.Fields, schema.FieldEntry{
				Name:  col.field,
				Value: schema.RawValue{Kind: col.kind, Text: value},
				Line:  line,
			})
		}
		file.Records = append(file.Records, rec)
	}
	return file, nil
}

func csvColumns(header []string) []csvColumn {
	res := make([]csvColumn, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		switch {
		case h == columnID:
			res[i] = csvColumn{field: columnID, isID: true}
		case strings.HasSuffix(h, suffixDBID):
			res[i] = csvColumn{field: schema.FieldName(strings.TrimSuffix(h, suffixDBID)), kind: schema.ValueUnparsed}
		case strings.HasSuffix(h, suffixXMLID):
			res[i] = csvColumn{field: schema.FieldName(strings.TrimSuffix(h, suffixXMLID)), kind: schema.ValueReference}
		case strings.HasSuffix(h, suffixPathID):
			res[i] = csvColumn{field: schema.FieldName(strings.TrimSuffix(h, suffixPathID)), kind: schema.ValueReference}
		default:
			res[i] = csvColumn{field: schema.FieldName(h), kind: schema.ValueLiteral}
		}
	}
	return res
}

func csvErr(fileName string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return malformed(fileName, pe.StartLine, "%v", pe.Err)
	}
	return malformed(fileName, 0, "%v", err)
}
