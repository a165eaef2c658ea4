/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package issues

import "sync"

// Severity of an issue. Info < Warning < Error
type Severity int

// Class is the error taxonomy an issue belongs to
type Class int

type Issue struct {
	Severity Severity `json:"severity"`
	Class    Class    `json:"class"`
	Category string   `json:"category"`
	File     string   `json:"file,omitempty"`
	// 0 means the location has no line
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
}

type Summary struct {
	Total      int              `json:"total"`
	BySeverity map[Severity]int `json:"bySeverity"`
	ByCategory map[string]int   `json:"byCategory"`
	ExitStatus int              `json:"exitStatus"`
}

type Reporter struct {
	mu     sync.Mutex
	issues []Issue
	errors int
}
