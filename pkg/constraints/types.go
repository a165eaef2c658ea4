/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package constraints

import (
	"text/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/voedger/modlint/pkg/timeu"
)

type Check string

// Rule is one row of the constraint table.
// Single field rules use Field which may be a glob, pair rules use Fields = [start, end]
type Rule struct {
	Name           string   `yaml:"name" toml:"name" validate:"required"`
	Models         string   `yaml:"models" toml:"models" validate:"required"`
	Field          string   `yaml:"field,omitempty" toml:"field,omitempty" validate:"required_without=Fields"`
	Fields         []string `yaml:"fields,omitempty" toml:"fields,omitempty" validate:"omitempty,len=2,dive,required"`
	Check          Check    `yaml:"check" toml:"check" validate:"required,oneof=not_in_past ordered non_zero positive"`
	StateField     string   `yaml:"state_field,omitempty" toml:"state_field,omitempty"`
	TerminalStates []string `yaml:"terminal_states,omitempty" toml:"terminal_states,omitempty"`
	// text/template over MessageData, empty means the default message of the check
	Message string `yaml:"message,omitempty" toml:"message,omitempty"`
}

// MessageData is available to rule message templates
type MessageData struct {
	Rule       string
	Model      string
	Record     string
	Field      string
	Value      string
	StartField string
	EndField   string
	Start      string
	End        string
	Now        string
}

type Engine struct {
	rules   []*rule
	clock   timeu.ITime
	formats []string
}

type rule struct {
	Rule
	tmpl *template.Template
}

// value is a literal of a record resolved to a comparable form
type value struct {
	isTime bool
	// date only, compared by calendar day
	isDate bool
	t      time.Time
	isNum  bool
	num    decimal.Decimal
}
