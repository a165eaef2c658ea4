/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	require := require.New(t)

	for k := KindChar; k < KindFakeLast; k++ {
		parsed, ok := ParseKind(k.String())
		require.True(ok, k.String())
		require.Equal(k, parsed)
	}

	k, ok := ParseKind("Image")
	require.True(ok)
	require.Equal(KindBinary, k)

	_, ok = ParseKind("Widget")
	require.False(ok)
}

func TestFieldSpec_Equivalent(t *testing.T) {
	require := require.New(t)

	a := &FieldSpec{
		Name:       "state",
		Kind:       FieldKind{Kind: KindSelection, Options: []string{"draft", "done"}},
		Label:      "State",
		DeclaredAt: SourceLocation{File: "a.py", Line: 3},
	}
	b := a.Clone()
	b.DeclaredAt = SourceLocation{File: "b.py", Line: 7}
	require.True(a.Equivalent(b))

	b.Kind.Options = append(b.Kind.Options, "cancel")
	require.False(a.Equivalent(b))
	require.Len(a.Kind.Options, 2)
}

func TestModelFragment_Identity(t *testing.T) {
	require := require.New(t)

	ext := ModelFragment{Inherits: []ModelID{"res.partner"}}
	require.Equal(ModelID("res.partner"), ext.TargetIdentity())
	require.True(ext.IsExtension())
	require.Empty(ext.Parents())

	same := ModelFragment{Primary: "res.partner", Inherits: []ModelID{"res.partner", "mail.thread"}}
	require.True(same.IsExtension())
	require.Equal([]ModelID{"mail.thread"}, same.Parents())

	derived := ModelFragment{
		Primary:   "solar.installation",
		Inherits:  []ModelID{"mail.thread"},
		Delegates: map[ModelID]FieldName{"res.partner": "partner_id"},
	}
	require.False(derived.IsExtension())
	require.Equal(ModelID("solar.installation"), derived.TargetIdentity())
	require.Equal([]ModelID{"mail.thread", "res.partner"}, derived.Parents())

	require.Equal(ModelID(""), (&ModelFragment{}).TargetIdentity())
}

func TestParsePath(t *testing.T) {
	require := require.New(t)

	require.Nil(ParsePath(""))
	f := FieldSpec{Related: ParsePath("partner_id.country_id.code")}
	require.True(f.IsRelated())
	require.Equal([]FieldName{"partner_id", "country_id", "code"}, f.Related)
	require.Equal("partner_id.country_id.code", f.RelatedPath())
}
