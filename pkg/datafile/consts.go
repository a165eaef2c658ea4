/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package datafile

const (
	ExtXML = ".xml"
	ExtCSV = ".csv"
)

const (
	DateFormat         = "2006-01-02"
	DatetimeFormat     = "2006-01-02 15:04:05"
	DatetimeFracFormat = "2006-01-02 15:04:05.999999999"
)

var DefaultDateFormats = []string{DateFormat, DatetimeFormat, DatetimeFracFormat}

const (
	tagRecord   = "record"
	tagField    = "field"
	tagData     = "data"
	tagOdoo     = "odoo"
	tagOpenERP  = "openerp"
	tagTemplate = "template"
	tagMenuItem = "menuitem"
	tagReport   = "report"
	tagActWin   = "act_window"
)

const (
	attrID     = "id"
	attrModel  = "model"
	attrName   = "name"
	attrRef    = "ref"
	attrEval   = "eval"
	attrSearch = "search"
	attrType   = "type"
	attrFile   = "file"
)

// csv column suffixes
const (
	suffixXMLID  = ":id"
	suffixPathID = "/id"
	suffixDBID   = "/.id"
	columnID     = "id"
)
