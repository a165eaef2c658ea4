/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package issues

import (
	"fmt"
	"strings"
)

func New(severity Severity, category, file string, line int, msg string, args ...any) Issue {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return Issue{
		Severity: severity,
		Class:    defaultClass(severity),
		Category: category,
		File:     file,
		Line:     line,
		Message:  msg,
	}
}

func Error(category, file string, line int, msg string, args ...any) Issue {
	return New(SeverityError, category, file, line, msg, args...)
}

func Warning(category, file string, line int, msg string, args ...any) Issue {
	return New(SeverityWarning, category, file, line, msg, args...)
}

func Info(category, file string, line int, msg string, args ...any) Issue {
	return New(SeverityInfo, category, file, line, msg, args...)
}

// WithClass returns a copy of the issue with the class replaced
func (i Issue) WithClass(c Class) Issue {
	i.Class = c
	return i
}

// Downgrade returns a copy with Info severity, keeping category and location
func (i Issue) Downgrade() Issue {
	i.Severity = SeverityInfo
	i.Class = ClassInfoNote
	return i
}

func (i Issue) String() string {
	loc := i.File
	if i.Line > 0 {
		loc = fmt.Sprintf("%s:%d", i.File, i.Line)
	}
	if loc == "" {
		loc = "-"
	}
	return fmt.Sprintf("%s: %s [%s] %s", loc, i.Severity, i.Category, i.Message)
}

func defaultClass(s Severity) Class {
	switch s {
	case SeverityError:
		return ClassSchemaError
	case SeverityWarning:
		return ClassAdvisoryWarning
	default:
		return ClassInfoNote
	}
}

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	v, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return SeverityInfo, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	}
	return SeverityInfo, fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
}

func (c Class) String() string {
	switch c {
	case ClassInfoNote:
		return "InfoNote"
	case ClassAdvisoryWarning:
		return "AdvisoryWarning"
	case ClassParseError:
		return "ParseError"
	case ClassSchemaError:
		return "SchemaError"
	case ClassBusinessRuleViolation:
		return "BusinessRuleViolation"
	}
	return fmt.Sprintf("class(%d)", int(c))
}

func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
