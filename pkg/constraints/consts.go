/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package constraints

const (
	CheckNotInPast Check = "not_in_past"
	CheckOrdered   Check = "ordered"
	CheckNonZero   Check = "non_zero"
	CheckPositive  Check = "positive"
)

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02 15:04:05"
	fracLayout     = "2006-01-02 15:04:05.999999999"
)

var defaultMessages = map[Check]string{
	CheckNotInPast: `{{.Field}} of {{.Model}} record {{.Record}} is in the past: {{.Value}} is earlier than {{.Now}}`,
	CheckOrdered:   `{{.StartField}} must be earlier than {{.EndField}} in {{.Model}} record {{.Record}}: {{.Start}} is not before {{.End}}`,
	CheckNonZero:   `{{.Field}} of {{.Model}} record {{.Record}} must not be zero`,
	CheckPositive:  `{{.Field}} of {{.Model}} record {{.Record}} must be positive, got {{.Value}}`,
}
