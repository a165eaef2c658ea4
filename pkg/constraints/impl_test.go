/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package constraints

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voedger/modlint/pkg/issues"
	"github.com/voedger/modlint/pkg/schema"
	"github.com/voedger/modlint/pkg/timeu"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func testEngine(t *testing.T, rules ...Rule) *Engine {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	e, err := NewEngine(timeu.NewMockTime(testNow), rules...)
	require.NoError(t, err)
	return e
}

func rec(model string, kv ...string) schema.DataRecord {
	r := schema.DataRecord{
		ID:       "rec_1",
		Model:    schema.ModelID(model),
		Location: schema.SourceLocation{File: "data/demo.xml", Line: 3},
	}
	for i := 0; i+1 < len(kv); i += 2 {
		r.Fields = append(r.Fields, schema.FieldEntry{
			Name:  schema.FieldName(kv[i]),
			Value: schema.RawValue{Kind: schema.ValueLiteral, Text: kv[i+1]},
			Line:  4 + i/2,
		})
	}
	return r
}

func TestOrderedSymmetry(t *testing.T) {
	e := testEngine(t)
	pairs := [][2]string{
		{"2024-01-01", "2024-01-02"},
		{"2024-01-01 10:00:00", "2024-01-01 10:00:01"},
		{"2023-12-31", "2024-01-01 00:00:00"},
		{"1", "2.5"},
	}
	for _, p := range pairs {
		t.Run(p[0]+"/"+p[1], func(t *testing.T) {
			require := require.New(t)
			direct := e.EvaluateRecord(&schema.DataRecord{})
			require.Empty(direct)

			r := rec("project.task", "date_start", p[0], "date_end", p[1])
			require.Empty(e.EvaluateRecord(&r))

			swapped := rec("project.task", "date_start", p[1], "date_end", p[0])
			res := e.EvaluateRecord(&swapped)
			require.Len(res, 1)
			require.Equal(issues.SeverityError, res[0].Severity)
			require.Equal(issues.ClassBusinessRuleViolation, res[0].Class)
			require.Equal(issues.CategoryBusinessRule, res[0].Category)
			require.Equal(5, res[0].Line)
			require.Contains(res[0].Message, "date_start must be earlier than date_end")
			require.Contains(res[0].Message, "[date_range_ordered]")
		})
	}

	t.Run("equal values fail both ways", func(t *testing.T) {
		r := rec("x.y", "start_date", "2024-01-01", "end_date", "2024-01-01")
		require.Len(t, e.EvaluateRecord(&r), 1)
	})

	t.Run("incomparable values are skipped", func(t *testing.T) {
		r := rec("x.y", "start_date", "2024-01-01", "end_date", "soon")
		require.Empty(t, e.EvaluateRecord(&r))
		r = rec("x.y", "start_date", "2024-01-01")
		require.Empty(t, e.EvaluateRecord(&r))
	})
}

func TestNotInPast(t *testing.T) {
	require := require.New(t)
	e := testEngine(t)

	r := rec("solar.installation", "scheduled_date", "2024-06-14")
	res := e.EvaluateRecord(&r)
	require.Len(res, 1)
	require.Equal(4, res[0].Line)
	require.Contains(res[0].Message, "scheduled_date of solar.installation record rec_1 is in the past")

	r = rec("solar.installation", "scheduled_date", "2024-06-15")
	require.Empty(e.EvaluateRecord(&r), "today is not in the past")

	r = rec("solar.installation", "scheduled_date", "2024-06-15 11:59:59")
	require.Len(e.EvaluateRecord(&r), 1)

	r = rec("solar.installation", "scheduled_date", "2024-06-14", "state", "done")
	require.Empty(e.EvaluateRecord(&r), "terminal state")

	r = rec("solar.installation", "scheduled_date", "2024-06-14", "state", "draft")
	require.Len(e.EvaluateRecord(&r), 1)

	r = rec("solar.panel", "scheduled_date", "2020-01-01")
	require.Empty(e.EvaluateRecord(&r), "model does not match")

	t.Run("clock moves", func(t *testing.T) {
		clock := timeu.NewMockTime(testNow)
		e, err := NewEngine(clock, DefaultRules()...)
		require.NoError(err)
		r := rec("solar.installation", "scheduled_date", "2024-06-20")
		require.Empty(e.EvaluateRecord(&r))
		clock.Add(10 * 24 * time.Hour)
		require.Len(e.EvaluateRecord(&r), 1)
	})
}

func TestNumeric(t *testing.T) {
	require := require.New(t)
	e := testEngine(t, append(DefaultRules(), Rule{
		Name:    "positive_qty",
		Models:  "stock.*",
		Field:   "*_qty",
		Check:   CheckPositive,
		Message: "{{.Model}}.{{.Field}} = {{.Value}}",
	})...)

	r := rec("account.payment", "amount", "0.00")
	res := e.EvaluateRecord(&r)
	require.Len(res, 1)
	require.Contains(res[0].Message, "amount of account.payment record rec_1 must not be zero")

	r = rec("account.payment", "amount", "-5")
	require.Empty(e.EvaluateRecord(&r))

	r = rec("stock.move", "product_qty", "-1", "reserved_qty", "0", "done_qty", "3")
	res = e.EvaluateRecord(&r)
	require.Len(res, 2)
	require.Equal("stock.move.product_qty = -1 [positive_qty]", res[0].Message)
	require.Equal("stock.move.reserved_qty = 0 [positive_qty]", res[1].Message)
}

func TestOnlyLiteralsTakePart(t *testing.T) {
	require := require.New(t)
	e := testEngine(t)

	r := rec("account.payment")
	r.Fields = []schema.FieldEntry{{Name: "amount", Value: schema.RawValue{Kind: schema.ValueExpression, Text: "0"}}}
	require.Empty(e.EvaluateRecord(&r))

	records := []schema.DataRecord{rec("account.payment", "amount", "0"), rec("account.payment", "amount", "1")}
	require.Len(e.Evaluate(records), 1)
}

func TestInvalidRules(t *testing.T) {
	cases := []Rule{
		{Models: "*", Field: "a", Check: CheckNonZero},
		{Name: "r", Models: "[", Field: "a", Check: CheckNonZero},
		{Name: "r", Models: "*", Fields: []string{"a"}, Check: CheckOrdered},
		{Name: "r", Models: "*", Check: CheckPositive},
		{Name: "r", Models: "*", Field: "a", Check: "odd"},
		{Name: "r", Models: "*", Field: "a", Check: CheckNonZero, Message: "{{.Field"},
	}
	for _, c := range cases {
		_, err := NewEngine(timeu.NewITime(), c)
		require.ErrorIs(t, err, ErrInvalidRule)
	}

	e, err := NewEngine(timeu.NewITime(), DefaultRules()...)
	require.NoError(t, err)
	require.Equal(t, DefaultRules(), e.Rules())
}
