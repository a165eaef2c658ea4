/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package issues

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

const (
	ClassInfoNote Class = iota
	ClassAdvisoryWarning
	ClassParseError
	ClassSchemaError
	ClassBusinessRuleViolation
)

// Categories shared by several analysers
const (
	CategoryParse              = "parse error"
	CategoryUnknownModel       = "unknown model"
	CategoryUnknownField       = "unknown field"
	CategoryInvalidSelection   = "invalid selection value"
	CategoryReferenceSelection = "reference used as selection value"
	CategoryDynamicSelection   = "dynamic selection"
	CategoryUnsetSelection     = "empty selection value"
	CategoryInvalidDate        = "invalid date format"
	CategoryInvalidNumber      = "invalid number"
	CategoryExpression         = "expression not evaluated"
	CategoryUnparsed           = "value not evaluated"
	CategoryRelatedMismatch    = "related field type mismatch"
	CategoryRelatedAdvisory    = "related field type advisory"
	CategoryRelatedPath        = "related path error"
	CategoryRelatedCycle       = "related field cycle"
	CategoryRelatedUnverified  = "related path not verifiable"
	CategoryFieldConflict      = "conflicting field definition"
	CategoryModelRedefinition  = "model redefinition"
	CategoryDuplicateModel     = "duplicate model declaration"
	CategoryOpaqueModel        = "extended model not declared"
	CategoryInheritanceCycle   = "inheritance cycle"
	CategoryInheritanceIntent  = "inheritance intent"
	CategoryEmptySelection     = "selection without options"
	CategoryBusinessRule       = "business rule"
	CategoryManifest           = "manifest"
	CategoryRecordReference    = "unresolved record reference"
	CategoryForwardReference   = "forward reference"
	CategoryDuplicateRecord    = "duplicate record id"
)

const (
	ExitOK     = 0
	ExitFailed = 1
)

const (
	FormatText = "text"
	FormatJSON = "json"
)
