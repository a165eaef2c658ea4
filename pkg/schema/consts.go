/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package schema

const (
	KindNull Kind = iota
	KindChar
	KindText
	KindHtml
	KindInteger
	KindFloat
	KindMonetary
	KindBoolean
	KindDate
	KindDatetime
	KindBinary
	KindSelection
	KindMany2one
	KindOne2many
	KindMany2many
	KindFakeLast
)

const (
	OriginDeclared Origin = iota
	OriginHost
	// only extended in the analysed sources, the base declaration is not visible
	OriginExtended
)

const (
	ValueLiteral RawValueKind = iota
	ValueReference
	ValueExpression
	ValueUnparsed
)

const PathSeparator = "."

var kindNames = map[Kind]string{
	KindChar:      "Char",
	KindText:      "Text",
	KindHtml:      "Html",
	KindInteger:   "Integer",
	KindFloat:     "Float",
	KindMonetary:  "Monetary",
	KindBoolean:   "Boolean",
	KindDate:      "Date",
	KindDatetime:  "Datetime",
	KindBinary:    "Binary",
	KindSelection: "Selection",
	KindMany2one:  "Many2one",
	KindOne2many:  "One2many",
	KindMany2many: "Many2many",
}

// constructors that are stored as one of the basic kinds
var kindAliases = map[string]Kind{
	"Image":             KindBinary,
	"Reference":         KindChar,
	"Many2oneReference": KindInteger,
	"Json":              KindText,
	"Properties":        KindText,
}
