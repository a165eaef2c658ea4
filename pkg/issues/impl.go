/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package issues

import (
	"sort"
)

// Add is safe for concurrent use
func (r *Reporter) Add(issues ...Issue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range issues {
		if i.Severity == SeverityError {
			r.errors++
		}
		r.issues = append(r.issues, i)
	}
}

// Issues returns a sorted copy of the collected issues
func (r *Reporter) Issues() []Issue {
	r.mu.Lock()
	res := make([]Issue, len(r.issues))
	copy(res, r.issues)
	r.mu.Unlock()
	Sort(res)
	return res
}

func (r *Reporter) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errors > 0
}

func (r *Reporter) ExitStatus() int {
	if r.Failed() {
		return ExitFailed
	}
	return ExitOK
}

func (r *Reporter) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return summarize(r.issues)
}

// Sort orders issues by file, line and severity (errors first).
// Remaining ties are broken by category and message so that output does not depend on arrival order
func Sort(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i], issues[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Severity != b.Severity {
			return a.Severity > b.Severity
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Message < b.Message
	})
}

func Summarize(issues []Issue) Summary {
	return summarize(issues)
}

func summarize(issues []Issue) Summary {
	s := Summary{
		Total:      len(issues),
		BySeverity: map[Severity]int{},
		ByCategory: map[string]int{},
	}
	for _, i := range issues {
		s.BySeverity[i.Severity]++
		s.ByCategory[i.Category]++
	}
	if s.BySeverity[SeverityError] > 0 {
		s.ExitStatus = ExitFailed
	}
	return s
}

// Filter returns issues with severity >= min
func Filter(issues []Issue, min Severity) []Issue {
	res := make([]Issue, 0, len(issues))
	for _, i := range issues {
		if i.Severity >= min {
			res = append(res, i)
		}
	}
	return res
}
