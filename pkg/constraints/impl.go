/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package constraints

import (
	"path"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/shopspring/decimal"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/exp/slices"

	"github.com/voedger/modlint/pkg/issues"
	"github.com/voedger/modlint/pkg/schema"
)

func compile(r Rule) (*rule, error) {
	if r.Name == "" {
		return nil, errInvalidRule(r.Name, "name is empty")
	}
	if _, err := path.Match(r.Models, ""); err != nil || r.Models == "" {
		return nil, errInvalidRule(r.Name, "bad models pattern %q", r.Models)
	}
	switch r.Check {
	case CheckOrdered:
		if len(r.Fields) != 2 || r.Fields[0] == "" || r.Fields[1] == "" {
			return nil, errInvalidRule(r.Name, "check %s needs a pair of fields", r.Check)
		}
	case CheckNotInPast, CheckNonZero, CheckPositive:
		if _, err := path.Match(r.Field, ""); err != nil || r.Field == "" {
			return nil, errInvalidRule(r.Name, "bad field pattern %q", r.Field)
		}
	default:
		return nil, errInvalidRule(r.Name, "unknown check %q", r.Check)
	}
	msg := r.Message
	if msg == "" {
		msg = defaultMessages[r.Check]
	}
	tmpl, err := template.New(r.Name).Option("missingkey=error").Parse(msg)
	if err != nil {
		return nil, errInvalidRule(r.Name, "message: %v", err)
	}
	return &rule{Rule: r, tmpl: tmpl}, nil
}

// Evaluate applies every matching rule to every record. All records share one evaluation instant
func (e *Engine) Evaluate(records []schema.DataRecord) []issues.Issue {
	res := make([]issues.Issue, 0)
	now := e.clock.Now()
	for i := range records {
		res = append(res, e.evaluate(&records[i], now)...)
	}
	return res
}

func (e *Engine) EvaluateRecord(rec *schema.DataRecord) []issues.Issue {
	return e.evaluate(rec, e.clock.Now())
}

func (e *Engine) Rules() []Rule {
	res := make([]Rule, len(e.rules))
	for i, r := range e.rules {
		res[i] = r.Rule
	}
	return res
}

func (e *Engine) evaluate(rec *schema.DataRecord, now time.Time) []issues.Issue {
	var (
		res  []issues.Issue
		lits map[schema.FieldName]schema.FieldEntry
	)
	for _, r := range e.rules {
		if ok, _ := path.Match(r.Models, string(rec.Model)); !ok {
			continue
		}
		if lits == nil {
			lits = literals(rec)
		}
		if r.Check == CheckOrdered {
			res = append(res, e.ordered(r, rec, lits, now)...)
		} else {
			res = append(res, e.single(r, rec, lits, now)...)
		}
	}
	return res
}

func (e *Engine) ordered(r *rule, rec *schema.DataRecord, lits map[schema.FieldName]schema.FieldEntry, now time.Time) []issues.Issue {
	start, ok1 := lits[schema.FieldName(r.Fields[0])]
	end, ok2 := lits[schema.FieldName(r.Fields[1])]
	if !ok1 || !ok2 {
		return nil
	}
	sv, ev := e.resolve(start, now.Location()), e.resolve(end, now.Location())
	switch {
	case sv.isTime && ev.isTime:
		if sv.t.Before(ev.t) {
			return nil
		}
	case sv.isNum && ev.isNum:
		if sv.num.LessThan(ev.num) {
			return nil
		}
	default:
		return nil
	}
	data := r.data(rec, now)
	data.Field, data.Value = r.Fields[0], start.Value.Text
	data.StartField, data.EndField = r.Fields[0], r.Fields[1]
	data.Start, data.End = start.Value.Text, end.Value.Text
	return []issues.Issue{r.issue(rec, end.Line, data)}
}

func (e *Engine) single(r *rule, rec *schema.DataRecord, lits map[schema.FieldName]schema.FieldEntry, now time.Time) []issues.Issue {
	if r.StateField != "" {
		if st, ok := lits[schema.FieldName(r.StateField)]; ok && slices.Contains(r.TerminalStates, st.Value.Text) {
			return nil
		}
	}
	names := make([]schema.FieldName, 0, 1)
	for name := range lits {
		if ok, _ := path.Match(r.Field, string(name)); ok {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	var res []issues.Issue
	for _, name := range names {
		entry := lits[name]
		v := e.resolve(entry, now.Location())
		if !violates(r.Check, v, now) {
			continue
		}
		data := r.data(rec, now)
		data.Field, data.Value = string(name), entry.Value.Text
		res = append(res, r.issue(rec, entry.Line, data))
	}
	return res
}

func violates(check Check, v value, now time.Time) bool {
	switch check {
	case CheckNotInPast:
		if !v.isTime {
			return false
		}
		if v.isDate {
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			return v.t.Before(today)
		}
		return v.t.Before(now)
	case CheckNonZero:
		return v.isNum && v.num.IsZero()
	case CheckPositive:
		return v.isNum && !v.num.IsPositive()
	}
	return false
}

func (e *Engine) resolve(entry schema.FieldEntry, loc *time.Location) value {
	text := strings.TrimSpace(entry.Value.Text)
	v := value{}
	for _, layout := range e.formats {
		if t, err := time.ParseInLocation(layout, text, loc); err == nil {
			v.isTime, v.isDate, v.t = true, layout == dateLayout, t
			return v
		}
	}
	if d, err := decimal.NewFromString(text); err == nil {
		v.isNum, v.num = true, d
	}
	return v
}

// literals returns the non-empty literal values of the record, the last entry of a field wins
func literals(rec *schema.DataRecord) map[schema.FieldName]schema.FieldEntry {
	res := make(map[schema.FieldName]schema.FieldEntry, len(rec.Fields))
	for _, f := range rec.Fields {
		if f.Value.Kind != schema.ValueLiteral || strings.TrimSpace(f.Value.Text) == "" {
			continue
		}
		res[f.Name] = f
	}
	return res
}

func (r *rule) data(rec *schema.DataRecord, now time.Time) MessageData {
	return MessageData{
		Rule:   r.Name,
		Model:  string(rec.Model),
		Record: rec.ID,
		Now:    now.Format(datetimeLayout),
	}
}

func (r *rule) issue(rec *schema.DataRecord, line int, data MessageData) issues.Issue {
	if line == 0 {
		line = rec.Location.Line
	}
	return issues.Error(issues.CategoryBusinessRule, rec.Location.File, line, "%s [%s]", r.render(data), r.Name).
		WithClass(issues.ClassBusinessRuleViolation)
}

func (r *rule) render(data MessageData) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := r.tmpl.Execute(buf, data); err != nil {
		return r.Message
	}
	return buf.String()
}
