/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package datafile

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/voedger/modlint/pkg/issues"
	"github.com/voedger/modlint/pkg/registry"
	"github.com/voedger/modlint/pkg/schema"
)

// Validate checks every record of the file against the registry
func (v *Validator) Validate(file *File) []issues.Issue {
	res := make([]issues.Issue, 0)
	for i := range file.Records {
		res = append(res, v.ValidateRecord(&file.Records[i])...)
	}
	return res
}

func (v *Validator) ValidateRecord(rec *schema.DataRecord) []issues.Issue {
	loc := rec.Location
	if rec.Model == "" {
		return []issues.Issue{issues.Error(issues.CategoryUnknownModel, loc.File, loc.Line,
			"record %q has no model", rec.ID).WithClass(issues.ClassParseError)}
	}
	if !v.reg.Has(rec.Model) {
		return []issues.Issue{issues.Info(issues.CategoryUnknownModel, loc.File, loc.Line,
			"model %q is not known, record %q not verified", rec.Model, rec.ID)}
	}

	res := make([]issues.Issue, 0)
	for _, entry := range rec.Fields {
		if issue, ok := v.validateEntry(rec, entry); ok {
			res = append(res, issue)
		}
	}
	return res
}

func (v *Validator) validateEntry(rec *schema.DataRecord, entry schema.FieldEntry) (issues.Issue, bool) {
	file, line := rec.Location.File, entry.Line
	lr := v.reg.Lookup(rec.Model, entry.Name)
	switch lr.Status {
	case registry.UnknownField:
		return issues.Error(issues.CategoryUnknownField, file, line,
			"model %q has no field %q", rec.Model, entry.Name), true
	case registry.UnknownModel:
		return issues.Info(issues.CategoryUnknownModel, file, line,
			"field %q of model %q cannot be verified", entry.Name, rec.Model), true
	}

	kind := lr.Field.Kind
	switch entry.Value.Kind {
	case schema.ValueExpression:
		return issues.Info(issues.CategoryExpression, file, line,
			"value of field %q is an expression and is not evaluated", entry.Name), true
	case schema.ValueUnparsed:
		return issues.Info(issues.CategoryUnparsed, file, line,
			"value of field %q is not evaluated", entry.Name), true
	case schema.ValueReference:
		if kind.Kind == schema.KindSelection {
			return issues.Error(issues.CategoryReferenceSelection, file, line,
				"field %q is a selection, reference %q is not a selection key", entry.Name, entry.Value.Text), true
		}
		return issues.Issue{}, false
	}

	text := entry.Value.Text
	if text == "" {
		if kind.Kind == schema.KindSelection && !kind.OptionsDynamic && !kind.HasOption(text) {
			return issues.Info(issues.CategoryUnsetSelection, file, line,
				"value of selection %q is empty, the field is left unset", entry.Name), true
		}
		return issues.Issue{}, false
	}
	switch kind.Kind {
	case schema.KindSelection:
		if kind.OptionsDynamic {
			return issues.Info(issues.CategoryDynamicSelection, file, line,
				"options of selection %q are computed at runtime, value %q not verified", entry.Name, text), true
		}
		if !kind.HasOption(text) {
			return issues.Error(issues.CategoryInvalidSelection, file, line,
				"value %q is not one of %s for field %q", text, strings.Join(kind.Options, ", "), entry.Name), true
		}
	case schema.KindDate, schema.KindDatetime:
		if !v.validDate(text) {
			return issues.Error(issues.CategoryInvalidDate, file, line,
				"value %q of field %q does not match any of %s", text, entry.Name, strings.Join(v.formats, ", ")), true
		}
	case schema.KindInteger:
		if _, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64); err != nil {
			return issues.Error(issues.CategoryInvalidNumber, file, line,
				"value %q of field %q is not an integer", text, entry.Name), true
		}
	case schema.KindFloat, schema.KindMonetary:
		if _, err := decimal.NewFromString(strings.TrimSpace(text)); err != nil {
			return issues.Error(issues.CategoryInvalidNumber, file, line,
				"value %q of field %q is not a number", text, entry.Name), true
		}
	}
	return issues.Issue{}, false
}

func (v *Validator) validDate(text string) bool {
	for _, f := range v.formats {
		if _, err := time.Parse(f, text); err == nil {
			return true
		}
	}
	return false
}
