/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package pysrc

const (
	ValueNone ValueKind = iota
	ValueString
	ValueInt
	ValueFloat
	ValueBool
	ValueList
	ValueDict
)

const tabSize = 8

// translation marker, `_("text")` evaluates to "text"
const translateFunc = "_"

var compoundKeywords = map[string]bool{
	"class":   true,
	"def":     true,
	"async":   true,
	"if":      true,
	"elif":    true,
	"else":    true,
	"for":     true,
	"while":   true,
	"try":     true,
	"except":  true,
	"finally": true,
	"with":    true,
}

// soft keywords open a block only when the line ends with a colon
var softCompoundKeywords = map[string]bool{
	"match": true,
	"case":  true,
}

var simpleKeywords = map[string]bool{
	"pass":     true,
	"return":   true,
	"import":   true,
	"from":     true,
	"raise":    true,
	"del":      true,
	"global":   true,
	"nonlocal": true,
	"assert":   true,
	"break":    true,
	"continue": true,
	"yield":    true,
}
