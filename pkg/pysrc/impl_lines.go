/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package pysrc

import (
	"strings"
)

type bracket struct {
	ch   byte
	line int
}

// splitLogicalLines joins physical lines into logical ones: bracket nesting, backslash continuations
// and multi-line strings span lines. Comments and blank lines are dropped
func splitLogicalLines(fileName string, src string) ([]logicalLine, error) {
	src = strings.TrimPrefix(src, "\ufeff")
	res := make([]logicalLine, 0)
	stack := make([]bracket, 0)
	sb := strings.Builder{}

	line := 1
	startLine := 0
	indent := 0
	atLineStart := true

	flush := func() {
		text := strings.TrimSpace(sb.String())
		if text != "" {
			res = append(res, logicalLine{line: startLine, indent: indent, text: text})
		}
		sb.Reset()
		atLineStart = true
	}

	i := 0
	for i < len(src) {
		if atLineStart {
			col := 0
			for i < len(src) && (src[i] == ' ' || src[i] == '\t' || src[i] == '\f') {
				switch src[i] {
				case '\t':
					col = (col/tabSize + 1) * tabSize
				case ' ':
					col++
				}
				i++
			}
			if i >= len(src) {
				break
			}
			if src[i] == '\n' || src[i] == '\r' || src[i] == '#' {
				// blank or comment-only line
				for i < len(src) && src[i] != '\n' {
					i++
				}
				if i < len(src) {
					i++
					line++
				}
				continue
			}
			indent = col
			startLine = line
			atLineStart = false
		}

		c := src[i]
		switch {
		case c == '#':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case c == '\\' && i+1 < len(src) && (src[i+1] == '\n' || (src[i+1] == '\r' && i+2 < len(src) && src[i+2] == '\n')):
			sb.WriteByte(' ')
			if src[i+1] == '\r' {
				i++
			}
			i += 2
			line++
		case c == '\n':
			i++
			if len(stack) > 0 {
				sb.WriteByte('\n')
			} else {
				flush()
			}
			line++
		case c == '\'' || c == '"':
			end, lines, err := scanString(fileName, src, i, line)
			if err != nil {
				return nil, err
			}
			sb.WriteString(src[i:end])
			line += lines
			i = end
		case c == '(' || c == '[' || c == '{':
			stack = append(stack, bracket{ch: c, line: line})
			sb.WriteByte(c)
			i++
		case c == ')' || c == ']' || c == '}':
			if len(stack) == 0 {
				return nil, syntaxErr(fileName, line, "unmatched '%c'", c)
			}
			open := stack[len(stack)-1]
			if closingOf(open.ch) != c {
				return nil, syntaxErr(fileName, line, "closing parenthesis '%c' does not match opening parenthesis '%c' on line %d", c, open.ch, open.line)
			}
			stack = stack[:len(stack)-1]
			sb.WriteByte(c)
			i++
		default:
			sb.WriteByte(c)
			i++
		}
	}
	if len(stack) > 0 {
		open := stack[len(stack)-1]
		return nil, syntaxErr(fileName, open.line, "'%c' was never closed", open.ch)
	}
	flush()
	return res, nil
}

// scanString returns the end offset of the string literal starting at src[start] and the number of newlines inside it
func scanString(fileName string, src string, start int, line int) (end int, lines int, err error) {
	q := src[start]
	triple := strings.HasPrefix(src[start:], strings.Repeat(string(q), 3))
	i := start + 1
	if triple {
		i = start + 3
	}
	for i < len(src) {
		c := src[i]
		switch {
		case c == '\\':
			if i+1 < len(src) && src[i+1] == '\n' {
				lines++
			}
			i += 2
			continue
		case c == '\n':
			if !triple {
				return 0, 0, syntaxErr(fileName, line, "unterminated string literal")
			}
			lines++
		case c == q:
			if !triple {
				return i + 1, lines, nil
			}
			if strings.HasPrefix(src[i:], strings.Repeat(string(q), 3)) {
				return i + 3, lines, nil
			}
		}
		i++
	}
	if triple {
		return 0, 0, syntaxErr(fileName, line, "unterminated triple-quoted string literal")
	}
	return 0, 0, syntaxErr(fileName, line, "unterminated string literal")
}

func closingOf(open byte) byte {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	}
	return '}'
}
