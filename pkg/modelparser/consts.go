/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package modelparser

const DefaultFieldPrefix = "fields"

const (
	attrName     = "_name"
	attrInherit  = "_inherit"
	attrInherits = "_inherits"
)

const (
	kwString       = "string"
	kwRequired     = "required"
	kwSelection    = "selection"
	kwSelectionAdd = "selection_add"
	kwComodel      = "comodel_name"
	kwInverse      = "inverse_name"
	kwRelation     = "relation"
	kwColumn1      = "column1"
	kwColumn2      = "column2"
	kwRelated      = "related"
	kwCompute      = "compute"
	kwStore        = "store"
)

// positional parameters of field constructors
var positionalParams = map[string][]string{
	"Selection":         {kwSelection, kwString},
	"Reference":         {kwSelection, kwString},
	"Many2one":          {kwComodel, kwString},
	"One2many":          {kwComodel, kwInverse, kwString},
	"Many2many":         {kwComodel, kwRelation, kwColumn1, kwColumn2, kwString},
	"Many2oneReference": {kwString},
}

var scalarPositional = []string{kwString}
