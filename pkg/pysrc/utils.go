/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package pysrc

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// walkTopLevel calls fn for each byte offset outside of brackets and string literals until fn returns false
func walkTopLevel(text string, fn func(i int) bool) {
	depth := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '\'', '"':
			end, _, err := scanString("", text, i, 0)
			if err != nil {
				return
			}
			i = end - 1
			continue
		case '(', '[', '{':
			depth++
			continue
		case ')', ']', '}':
			depth--
			continue
		}
		if depth == 0 && !fn(i) {
			return
		}
	}
}

func splitTopLevel(text string, sep byte) []string {
	res := make([]string, 0)
	from := 0
	walkTopLevel(text, func(i int) bool {
		if text[i] == sep {
			res = append(res, text[from:i])
			from = i + 1
		}
		return true
	})
	return append(res, text[from:])
}

func topLevelColon(text string) int {
	res := -1
	walkTopLevel(text, func(i int) bool {
		if text[i] == ':' && !strings.HasPrefix(text[i:], ":=") {
			res = i
			return false
		}
		return true
	})
	return res
}

// assignIndexes returns offsets of top-level assignment signs. Comparison and augmented operators are skipped,
// scanning stops at a top-level lambda whose defaults also use '='
func assignIndexes(text string) []int {
	res := make([]int, 0)
	walkTopLevel(text, func(i int) bool {
		if isWordAt(text, i, "lambda") {
			return false
		}
		if text[i] != '=' {
			return true
		}
		if i+1 < len(text) && text[i+1] == '=' {
			return true
		}
		if i > 0 && strings.IndexByte("=<>!+-*/%&|^@:~", text[i-1]) >= 0 {
			return true
		}
		res = append(res, i)
		return true
	})
	return res
}

func splitTargets(text string) []string {
	if c := topLevelColon(text); c >= 0 {
		text = text[:c]
	}
	text = strings.TrimSpace(text)
	if len(text) > 1 && (text[0] == '(' || text[0] == '[') {
		text = text[1 : len(text)-1]
	}
	res := make([]string, 0, 1)
	for _, t := range splitTopLevel(text, ',') {
		if t = strings.TrimSpace(t); t != "" {
			res = append(res, t)
		}
	}
	return res
}

func isWordAt(text string, i int, word string) bool {
	if !strings.HasPrefix(text[i:], word) {
		return false
	}
	if i > 0 && isIdentByte(text[i-1]) {
		return false
	}
	end := i + len(word)
	return end >= len(text) || !isIdentByte(text[end])
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= utf8.RuneSelf
}

func firstWord(text string) string {
	end := 0
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		end += size
	}
	return text[:end]
}

func funcName(header string) (string, bool) {
	rest := strings.TrimSpace(header)
	rest = strings.TrimPrefix(rest, "async")
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, "def") {
		return "", false
	}
	rest = strings.TrimSpace(rest[len("def"):])
	name := firstWord(rest)
	if name == "" || !strings.HasPrefix(strings.TrimSpace(rest[len(name):]), "(") {
		return "", false
	}
	return name, true
}

// unquote decodes a single string token. f-strings are not literals
func unquote(raw string) (string, bool) {
	prefixLen := 0
	isRaw := false
	for prefixLen < len(raw) && raw[prefixLen] != '\'' && raw[prefixLen] != '"' {
		switch raw[prefixLen] {
		case 'f', 'F':
			return "", false
		case 'r', 'R':
			isRaw = true
		}
		prefixLen++
	}
	body := raw[prefixLen:]
	q := 1
	if len(body) >= 6 && (strings.HasPrefix(body, `"""`) || strings.HasPrefix(body, `'''`)) {
		q = 3
	}
	if len(body) < 2*q {
		return "", false
	}
	body = body[q : len(body)-q]
	if isRaw {
		return body, true
	}
	return unescape(body), true
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	sb := strings.Builder{}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch n := s[i]; n {
		case '\n':
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '\\', '\'', '"':
			sb.WriteByte(n)
		case 'a':
			sb.WriteByte('\a')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'v':
			sb.WriteByte('\v')
		case 'x', 'u', 'U':
			size := map[byte]int{'x': 2, 'u': 4, 'U': 8}[n]
			if i+size < len(s) {
				if r, err := strconv.ParseUint(s[i+1:i+1+size], 16, 32); err == nil {
					sb.WriteRune(rune(r))
					i += size
					continue
				}
			}
			sb.WriteByte('\\')
			sb.WriteByte(n)
		default:
			sb.WriteByte('\\')
			sb.WriteByte(n)
		}
	}
	return sb.String()
}
