/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package pysrc

// ParseFile reads a python source unit. Returns *SyntaxError (wraps ErrSyntax) when the file is not well-formed
func ParseFile(fileName string, content string) (*Module, error) {
	return parseFileImpl(fileName, content)
}

func ParseExpr(text string) (*Expr, error) {
	return parseExprImpl("", text)
}
