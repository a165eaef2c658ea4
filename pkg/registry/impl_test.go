/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package registry

import (
	"fmt"
	"math/rand"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/voedger/modlint/pkg/issues"
	"github.com/voedger/modlint/pkg/schema"
)

func testConfig() Config {
	return Config{
		Hosts: []HostModel{
			{ID: "res.partner", Permissiveness: Permissive, Fields: []schema.FieldSpec{
				{Name: "name", Kind: schema.FieldKind{Kind: schema.KindChar}},
				{Name: "country_id", Kind: schema.FieldKind{Kind: schema.KindMany2one, Target: "res.country"}},
			}},
			{ID: "res.country", Permissiveness: Strict, Fields: []schema.FieldSpec{
				{Name: "code", Kind: schema.FieldKind{Kind: schema.KindChar}},
			}},
			{ID: "res.company", Permissiveness: Unprefixed},
		},
		MagicFields: DefaultMagicFields(),
	}
}

func loc(file string, line int) schema.SourceLocation {
	return schema.SourceLocation{File: file, Line: line}
}

func testFragments() []schema.ModelFragment {
	return []schema.ModelFragment{
		{
			Primary:  "solar.installation",
			Location: loc("models/a.py", 1),
			Fields: []schema.FieldSpec{
				{Name: "name", Kind: schema.FieldKind{Kind: schema.KindChar}, DeclaredAt: loc("models/a.py", 3)},
				{Name: "state", Kind: schema.FieldKind{Kind: schema.KindSelection, Options: []string{"draft", "done"}}, DeclaredAt: loc("models/a.py", 4)},
				{Name: "partner_id", Kind: schema.FieldKind{Kind: schema.KindMany2one, Target: "res.partner"}, DeclaredAt: loc("models/a.py", 5)},
			},
		},
		{
			Inherits: []schema.ModelID{"solar.installation"},
			Location: loc("models/b.py", 1),
			Fields: []schema.FieldSpec{
				{Name: "state", Kind: schema.FieldKind{Kind: schema.KindSelection}, SelectionAdd: []string{"cancelled"}, DeclaredAt: loc("models/b.py", 3)},
				{Name: "note", Kind: schema.FieldKind{Kind: schema.KindText}, DeclaredAt: loc("models/b.py", 4)},
			},
		},
		{
			Inherits: []schema.ModelID{"solar.installation"},
			Location: loc("models/c.py", 1),
			Fields: []schema.FieldSpec{
				{Name: "name", Kind: schema.FieldKind{Kind: schema.KindChar}, Label: "Title", DeclaredAt: loc("models/c.py", 3)},
			},
		},
		{
			Inherits: []schema.ModelID{"res.partner"},
			Location: loc("models/partner.py", 1),
			Fields: []schema.FieldSpec{
				{Name: "x_code", Kind: schema.FieldKind{Kind: schema.KindChar}, DeclaredAt: loc("models/partner.py", 3)},
				{Name: "type", Kind: schema.FieldKind{Kind: schema.KindSelection}, SelectionAdd: []string{"installer"}, DeclaredAt: loc("models/partner.py", 4)},
			},
		},
		{
			Primary:  "res.country",
			Location: loc("models/country.py", 1),
		},
	}
}

func build(t *testing.T, frags []schema.ModelFragment) (*Registry, []issues.Issue) {
	b := NewBuilder(testConfig())
	require.NoError(t, b.Add(frags...))
	reg, iss, err := b.Build()
	require.NoError(t, err)
	issues.Sort(iss)
	return reg, iss
}

func Test_BasicUsage(t *testing.T) {
	require := require.New(t)

	reg, iss := build(t, testFragments())

	t.Run("lookup", func(t *testing.T) {
		cases := []struct {
			model        schema.ModelID
			field        schema.FieldName
			status       LookupStatus
			unverifiable bool
		}{
			{"solar.installation", "name", Found, false},
			{"solar.installation", "id", Found, false},
			{"solar.installation", "foo", UnknownField, false},
			{"nope.model", "name", UnknownModel, false},
			{"res.partner", "phone", UnknownModel, true},
			{"res.partner", "x_code", Found, false},
			{"res.partner", "create_uid", Found, false},
			{"res.country", "zzz", UnknownField, false},
			{"res.company", "x_foo", UnknownField, false},
			{"res.company", "vat", UnknownModel, true},
		}
		for _, c := range cases {
			r := reg.Lookup(c.model, c.field)
			require.Equal(c.status, r.Status, "%s.%s", c.model, c.field)
			require.Equal(c.unverifiable, r.Unverifiable, "%s.%s", c.model, c.field)
		}
	})

	t.Run("merged fields", func(t *testing.T) {
		r := reg.Lookup("solar.installation", "state")
		require.Equal([]string{"draft", "done", "cancelled"}, r.Field.Kind.Options)
		require.False(r.Field.Kind.OptionsDynamic)

		r = reg.Lookup("solar.installation", "name")
		require.Equal("Title", r.Field.Label)

		r = reg.Lookup("res.partner", "type")
		require.True(r.Field.Kind.OptionsDynamic)

		require.Equal(Found, reg.Lookup("solar.installation", "note").Status)
	})

	t.Run("models", func(t *testing.T) {
		require.Equal([]schema.ModelID{"res.company", "res.country", "res.partner", "solar.installation"}, reg.Models())
		require.Equal(4, reg.Len())
		def, ok := reg.Model("solar.installation")
		require.True(ok)
		require.Equal(schema.OriginDeclared, def.Origin)
		require.Len(def.Extensions, 2)
		require.False(reg.IsOpaque("solar.installation"))
		require.True(reg.IsOpaque("res.partner"))
		require.Len(reg.OwnFields("solar.installation"), 4)
		require.Contains(reg.EffectiveFields("solar.installation"), schema.FieldName("write_date"))
	})

	t.Run("issues", func(t *testing.T) {
		require.Len(iss, 2)
		require.Equal(issues.SeverityWarning, iss[0].Severity)
		require.Equal(issues.CategoryFieldConflict, iss[0].Category)
		require.Contains(iss[0].Message, "models/a.py:3")
		require.Contains(iss[0].Message, "models/c.py:3")
		require.Equal(issues.SeverityError, iss[1].Severity)
		require.Equal(issues.CategoryModelRedefinition, iss[1].Category)
		require.Equal("models/country.py", iss[1].File)
	})
}

func Test_Frozen(t *testing.T) {
	require := require.New(t)

	b := NewBuilder(testConfig())
	_, _, err := b.Build()
	require.NoError(err)
	require.ErrorIs(b.Add(schema.ModelFragment{Primary: "a.b"}), ErrFrozen)
	_, _, err = b.Build()
	require.ErrorIs(err, ErrFrozen)
}

func Test_ExtendedOnly(t *testing.T) {
	require := require.New(t)

	reg, iss := build(t, []schema.ModelFragment{
		{Inherits: []schema.ModelID{"sale.order"}, Location: loc("s.py", 2), Fields: []schema.FieldSpec{
			{Name: "x_ref", Kind: schema.FieldKind{Kind: schema.KindChar}, DeclaredAt: loc("s.py", 4)},
		}},
	})
	require.Len(iss, 1)
	require.Equal(issues.CategoryOpaqueModel, iss[0].Category)
	require.Equal(issues.SeverityInfo, iss[0].Severity)

	def, _ := reg.Model("sale.order")
	require.Equal(schema.OriginExtended, def.Origin)
	require.Equal(Found, reg.Lookup("sale.order", "x_ref").Status)
	r := reg.Lookup("sale.order", "x_other")
	require.Equal(UnknownModel, r.Status)
	require.True(r.Unverifiable)
}

func Test_Inheritance(t *testing.T) {
	require := require.New(t)

	reg, iss := build(t, []schema.ModelFragment{
		{Primary: "base.doc", Location: loc("a.py", 1), Fields: []schema.FieldSpec{
			{Name: "date_start", Kind: schema.FieldKind{Kind: schema.KindDate}, DeclaredAt: loc("a.py", 2)},
		}},
		{Primary: "sale.doc", Inherits: []schema.ModelID{"base.doc"}, Location: loc("b.py", 1), Fields: []schema.FieldSpec{
			{Name: "amount", Kind: schema.FieldKind{Kind: schema.KindMonetary}, DeclaredAt: loc("b.py", 2)},
		}},
		{Primary: "partner.user", Delegates: map[schema.ModelID]schema.FieldName{"res.partner": "partner_id"}, Location: loc("c.py", 1)},
	})
	require.Empty(iss)
	require.Equal(Found, reg.Lookup("sale.doc", "date_start").Status)
	require.Equal(UnknownField, reg.Lookup("sale.doc", "foo").Status)
	require.Equal(Found, reg.Lookup("partner.user", "country_id").Status)
	require.True(reg.Lookup("partner.user", "phone").Unverifiable)
}

func Test_InheritanceCycle(t *testing.T) {
	require := require.New(t)

	reg, iss := build(t, []schema.ModelFragment{
		{Primary: "a.a", Inherits: []schema.ModelID{"b.b"}, Location: loc("a.py", 1)},
		{Primary: "b.b", Inherits: []schema.ModelID{"a.a"}, Location: loc("b.py", 1)},
	})
	require.Equal(len(testConfig().Hosts)+2, reg.Len())
	cycles := 0
	for _, i := range iss {
		if i.Category == issues.CategoryInheritanceCycle {
			cycles++
			require.Equal(issues.SeverityWarning, i.Severity)
		}
	}
	require.Equal(1, cycles)
}

func Test_EmptySelection(t *testing.T) {
	require := require.New(t)

	_, iss := build(t, []schema.ModelFragment{
		{Primary: "a.a", Location: loc("a.py", 1), Fields: []schema.FieldSpec{
			{Name: "state", Kind: schema.FieldKind{Kind: schema.KindSelection}, DeclaredAt: loc("a.py", 2)},
			{Name: "kind", Kind: schema.FieldKind{Kind: schema.KindSelection, OptionsDynamic: true}, DeclaredAt: loc("a.py", 3)},
		}},
	})
	require.Len(iss, 1)
	require.Equal(issues.CategoryEmptySelection, iss[0].Category)
	require.Equal(2, iss[0].Line)
}

func Test_DuplicateDeclaration(t *testing.T) {
	require := require.New(t)

	_, iss := build(t, []schema.ModelFragment{
		{Primary: "a.a", Location: loc("a.py", 1)},
		{Primary: "a.a", Location: loc("b.py", 1)},
	})
	require.Len(iss, 1)
	require.Equal(issues.CategoryDuplicateModel, iss[0].Category)
	require.Equal("b.py", iss[0].File)
}

// snapshot renders the merged registry as comparable text
func snapshot(reg *Registry) []string {
	res := []string{}
	for _, id := range reg.Models() {
		for _, name := range reg.EffectiveFields(id) {
			f := reg.Lookup(id, name).Field
			res = append(res, fmt.Sprintf("%s.%s %s %v %v %q %s", id, name, f.Kind, f.Kind.Options, f.Kind.OptionsDynamic, f.Label, f.DeclaredAt))
		}
	}
	return res
}

func randomFragments(f *fuzz.Fuzzer) []schema.ModelFragment {
	res := testFragments()
	var names []string
	f.NumElements(1, 8).Fuzz(&names)
	for i, n := range names {
		res = append(res, schema.ModelFragment{
			Inherits: []schema.ModelID{"solar.installation"},
			Location: loc(fmt.Sprintf("models/gen%d.py", i), i+1),
			Fields: []schema.FieldSpec{
				{Name: schema.FieldName("f_" + n), Kind: schema.FieldKind{Kind: schema.Kind(1 + i%10)}, DeclaredAt: loc(fmt.Sprintf("models/gen%d.py", i), i+2)},
				{Name: "name", Kind: schema.FieldKind{Kind: schema.KindChar}, Label: n, DeclaredAt: loc(fmt.Sprintf("models/gen%d.py", i), i+3)},
			},
		})
	}
	return res
}

func Test_OrderIndependence(t *testing.T) {
	require := require.New(t)
	f := fuzz.New().NilChance(0)

	for iter := 0; iter < 20; iter++ {
		frags := randomFragments(f)
		expectedReg, expectedIssues := build(t, frags)
		expected := snapshot(expectedReg)

		var seed int64
		f.Fuzz(&seed)
		rnd := rand.New(rand.NewSource(seed))
		for perm := 0; perm < 5; perm++ {
			shuffled := append([]schema.ModelFragment(nil), frags...)
			rnd.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

			// fragments arrive in several Add calls
			b := NewBuilder(testConfig())
			half := len(shuffled) / 2
			require.NoError(b.Add(shuffled[:half]...))
			require.NoError(b.Add(shuffled[half:]...))
			reg, iss, err := b.Build()
			require.NoError(err)
			issues.Sort(iss)

			require.Equal(expected, snapshot(reg))
			require.Equal(expectedIssues, iss)
		}
	}
}

func Test_Idempotence(t *testing.T) {
	require := require.New(t)

	frags := testFragments()
	reg1, iss1 := build(t, frags)
	reg2, iss2 := build(t, frags)
	require.Equal(snapshot(reg1), snapshot(reg2))
	require.Equal(iss1, iss2)
}

func Test_ParsePermissiveness(t *testing.T) {
	require := require.New(t)

	p, err := ParsePermissiveness("strict")
	require.NoError(err)
	require.Equal(Strict, p)
	p, err = ParsePermissiveness("")
	require.NoError(err)
	require.Equal(Permissive, p)
	_, err = ParsePermissiveness("lenient")
	require.ErrorIs(err, ErrUnknownPermissiveness)
}

func Test_ReadAccessorsReturnCopies(t *testing.T) {
	require := require.New(t)

	reg, _ := build(t, testFragments())

	def, ok := reg.Model("solar.installation")
	require.True(ok)
	def.Identity = "changed.model"
	def.Parents = append(def.Parents, "res.partner")
	for name, f := range def.Fields {
		f.Kind.Kind = schema.KindBinary
		delete(def.Fields, name)
	}

	own := reg.OwnFields("solar.installation")
	require.NotEmpty(own)
	own[0].Kind.Options = append(own[0].Kind.Options, "tampered")
	own[0].Label = "tampered"

	r := reg.Lookup("solar.installation", "state")
	require.Equal(Found, r.Status)
	r.Field.Kind.Options[0] = "tampered"

	again, ok := reg.Model("solar.installation")
	require.True(ok)
	require.Equal(schema.ModelID("solar.installation"), again.Identity)
	require.Len(again.Fields, 4)
	for _, f := range again.Fields {
		require.NotEqual(schema.KindBinary, f.Kind.Kind)
	}
	require.Equal([]string{"draft", "done", "cancelled"}, reg.Lookup("solar.installation", "state").Field.Kind.Options)
	for _, f := range reg.OwnFields("solar.installation") {
		require.NotEqual("tampered", f.Label)
	}
}
