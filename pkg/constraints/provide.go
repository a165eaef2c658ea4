/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package constraints

import (
	"errors"

	"github.com/voedger/modlint/pkg/timeu"
)

// NewEngine compiles the rules. The evaluation instant is taken from clock
func NewEngine(clock timeu.ITime, rules ...Rule) (*Engine, error) {
	e := &Engine{
		clock:   clock,
		formats: []string{dateLayout, datetimeLayout, fracLayout},
	}
	errs := make([]error, 0)
	for _, r := range rules {
		c, err := compile(r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		e.rules = append(e.rules, c)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return e, nil
}

// DefaultRules is the built-in rule table
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:   "date_range_ordered",
			Models: "*",
			Fields: []string{"date_start", "date_end"},
			Check:  CheckOrdered,
		},
		{
			Name:   "start_end_ordered",
			Models: "*",
			Fields: []string{"start_date", "end_date"},
			Check:  CheckOrdered,
		},
		{
			Name:           "installation_not_in_past",
			Models:         "*.installation",
			Field:          "scheduled_date",
			Check:          CheckNotInPast,
			StateField:     "state",
			TerminalStates: []string{"done", "cancelled"},
		},
		{
			Name:   "payment_amount_non_zero",
			Models: "*.payment",
			Field:  "amount",
			Check:  CheckNonZero,
		},
	}
}
