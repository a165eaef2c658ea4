/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package pysrc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleModel = `# -*- coding: utf-8 -*-
from odoo import api, fields, models, _


class Installation(models.Model):
    _name = 'solar.installation'
    _description = "Solar installation"
    _inherit = ['mail.thread']

    name = fields.Char(string=_("Name"), required=True)
    state = fields.Selection([
        ('draft', 'Draft'),  # initial
        ('done', 'Done'),
    ], default='draft')
    power = fields.Float("Power (kW)", digits=(16, 2))
    partner_id = fields.Many2one(
        'res.partner',
        string="Customer",
        ondelete='cascade',
    )
    note = fields.Text("""Multi
line""")
    total = fields.Monetary(compute='_compute_total', store=True)
    kind = fields.Selection(selection=lambda self: self._kinds())

    @api.depends('power')
    def _compute_total(self):
        for rec in self:
            rec.total = rec.power * 2


class Partner(models.Model):
    _inherit = 'res.partner'

    x_code = fields.Char(); y = 1
`

func Test_ParseFile(t *testing.T) {
	require := require.New(t)

	m, err := ParseFile("models/installation.py", sampleModel)
	require.NoError(err)
	require.Len(m.Body, 3)

	_, ok := m.Body[0].(*Other)
	require.True(ok)

	cls := m.Body[1].(*ClassDef)
	require.Equal("Installation", cls.Name)
	require.Equal(5, cls.Pos.Line)
	require.Len(cls.Bases, 1)
	base, ok := cls.Bases[0].Value.DottedName()
	require.True(ok)
	require.Equal("models.Model", base)

	assigns := map[string]*Assign{}
	for _, st := range cls.Body {
		if a, ok := st.(*Assign); ok {
			assigns[a.Targets[0]] = a
		}
	}

	t.Run("string attributes", func(t *testing.T) {
		v, ok := assigns["_name"].Value.Literal()
		require.True(ok)
		require.Equal("solar.installation", v.Str)

		v, ok = assigns["_inherit"].Value.Literal()
		require.True(ok)
		l, ok := v.StringList()
		require.True(ok)
		require.Equal([]string{"mail.thread"}, l)
	})

	t.Run("field calls", func(t *testing.T) {
		callee, args, ok := assigns["name"].Value.CallOf()
		require.True(ok)
		require.Equal("fields.Char", callee)
		require.Len(args, 2)
		require.Equal("string", args[0].Name)
		v, ok := args[0].Value.Literal()
		require.True(ok)
		require.Equal("Name", v.Str)

		a := assigns["state"]
		require.Equal(11, a.Pos.Line)
		_, args, ok = a.Value.CallOf()
		require.True(ok)
		v, ok = args[0].Value.Literal()
		require.True(ok)
		require.Equal(ValueList, v.Kind)
		require.Len(v.Items, 2)
		require.Equal("done", v.Items[1].Items[0].Str)

		_, args, _ = assigns["partner_id"].Value.CallOf()
		require.Len(args, 3)
		require.Equal("ondelete", args[2].Name)

		_, args, _ = assigns["note"].Value.CallOf()
		v, _ = args[0].Value.Literal()
		require.Equal("Multi\nline", v.Str)

		_, args, _ = assigns["kind"].Value.CallOf()
		require.True(args[0].Value.IsLambda())
	})

	t.Run("function definitions", func(t *testing.T) {
		var names []string
		for _, st := range cls.Body {
			if f, ok := st.(*FuncDef); ok {
				names = append(names, f.Name)
				require.Len(f.Body, 1)
			}
		}
		require.Equal([]string{"_compute_total"}, names)
	})

	t.Run("inline statements", func(t *testing.T) {
		partner := m.Body[2].(*ClassDef)
		require.Equal("Partner", partner.Name)
		require.Len(partner.Body, 3)
		require.Equal([]string{"y"}, partner.Body[2].(*Assign).Targets)
	})
}

func Test_SyntaxErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		line int
	}{
		{"unterminated string", "x = 'abc\n", 1},
		{"unterminated triple string", "x = 1\ny = '''abc\n", 2},
		{"never closed", "x = fields.Char(\n  'a',\n", 1},
		{"unmatched", "x = 1)\n", 1},
		{"mismatched", "x = [1, 2)\n", 1},
		{"unexpected indent", "x = 1\n    y = 2\n", 2},
		{"first line indented", "  x = 1\n", 1},
		{"missing block", "class A(models.Model):\nx = 1\n", 1},
		{"bad dedent", "class A:\n    x = 1\n  y = 2\n", 3},
		{"bad class header", "class (A):\n    x = 1\n", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require := require.New(t)
			_, err := ParseFile("a.py", c.src)
			require.ErrorIs(err, ErrSyntax)
			var se *SyntaxError
			require.ErrorAs(err, &se)
			require.Equal(c.line, se.Line)
		})
	}
}

func Test_UnparsedAssignment(t *testing.T) {
	require := require.New(t)

	m, err := ParseFile("a.py", "x = yield_something() if True else\n")
	require.NoError(err)
	a := m.Body[0].(*Assign)
	require.Nil(a.Value)
	require.Equal("yield_something() if True else", a.Raw)
}

func Test_Literals(t *testing.T) {
	cases := []struct {
		src  string
		kind ValueKind
		ok   bool
	}{
		{`"a" "b"`, ValueString, true},
		{`'a' + "b"`, ValueString, true},
		{`r'\d+'`, ValueString, true},
		{`f"{x}"`, 0, false},
		{`-3`, ValueInt, true},
		{`1_000.5`, ValueFloat, true},
		{`0x1F`, ValueInt, true},
		{`None`, ValueNone, true},
		{`not False`, ValueBool, true},
		{`(1,)`, ValueList, true},
		{`(1)`, ValueInt, true},
		{`{'a': 1, 'b': [True]}`, ValueDict, true},
		{`{'a', 'b'}`, ValueList, true},
		{`[x for x in y if x]`, 0, false},
		{`a.b`, 0, false},
		{`1 + 2`, 0, false},
		{`x if y else z`, 0, false},
		{`_('Hello')`, ValueString, true},
		{`lambda self, *a, **kw: self.env['x'].search([])[:1]`, 0, false},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			require := require.New(t)
			e, err := ParseExpr(c.src)
			require.NoError(err)
			v, ok := e.Literal()
			require.Equal(c.ok, ok)
			if ok {
				require.Equal(c.kind, v.Kind)
			}
		})
	}
}

func Test_StringValues(t *testing.T) {
	require := require.New(t)

	e, err := ParseExpr(`'it\'s\n' "\x41" r'\n'`)
	require.NoError(err)
	v, ok := e.Literal()
	require.True(ok)
	require.Equal("it's\nA\\n", v.Str)
}

func Test_DictEntries(t *testing.T) {
	require := require.New(t)

	e, err := ParseExpr(`{'name': 'Solar', 'depends': ['base'], 'version': VERSION}`)
	require.NoError(err)
	entries, ok := e.DictEntries()
	require.True(ok)
	require.Len(entries, 3)
	require.True(entries[1].Literal)
	require.False(entries[2].Literal)

	_, ok = e.Literal()
	require.False(ok)
}

func Test_Expressions(t *testing.T) {
	srcs := []string{
		`self.env['res.partner'].search([('id', 'in', ids)], limit=1)`,
		`a not in b and c is not None or not d`,
		`f(*args, **kwargs)`,
		`sum(x.amount for x in lines)`,
		`{k: v for k, v in items}`,
		`x[1:2, ::3]`,
		`()`,
		`[]`,
		`{}`,
		`-x ** 2 // 3 % 4 @ m`,
		`lambda: 0`,
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			_, err := ParseExpr(src)
			require.NoError(t, err)
		})
	}
}

func Test_SingleElementCollections(t *testing.T) {
	cases := []struct {
		src  string
		kind ValueKind
		len  int
	}{
		{`['a']`, ValueList, 1},
		{`['a',]`, ValueList, 1},
		{`('a')`, ValueString, 0},
		{`('a',)`, ValueList, 1},
		{`[('draft', 'Draft')]`, ValueList, 1},
		{`[(1)]`, ValueList, 1},
		{`((('a')))`, ValueString, 0},
		{`{'depends': ['base'], 'data': ['data/data.xml']}`, ValueDict, 0},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			require := require.New(t)
			e, err := ParseExpr(c.src)
			require.NoError(err)
			v, ok := e.Literal()
			require.True(ok)
			require.Equal(c.kind, v.Kind)
			if c.kind == ValueList {
				require.Len(v.Items, c.len)
			}
		})
	}

	t.Run("calls", func(t *testing.T) {
		require := require.New(t)
		for _, src := range []string{`f(['base'])`, `fields.Selection([('a', 'A')], default='a')`, `f((x))`, `[x for x in (y)]`} {
			_, err := ParseExpr(src)
			require.NoError(err, src)
		}
	})

	t.Run("in a module", func(t *testing.T) {
		require := require.New(t)
		m, err := ParseFile("m.py", "class A(models.Model):\n    _inherit = ['mail.thread']\n    s = fields.Selection([('a', 'A')])\n")
		require.NoError(err)
		cls := m.Body[0].(*ClassDef)
		require.Len(cls.Body, 2)
		for _, st := range cls.Body {
			require.NotNil(st.(*Assign).Value)
		}
	})
}
