// Package schema holds the identifiers of the HDB++ timescale archive schema.
// Table and column names are shared with data already on disk and must not
// change.
package schema

const SchemaTablePrefix = "att_"

// Configuration
const (
	ConfTableName       = "att_conf"
	ConfColId           = "att_conf_id"
	ConfColName         = "att_name"
	ConfColTypeId       = "att_conf_type_id"
	ConfColFormatTypeId = "att_conf_format_id"
	ConfColWriteTypeId  = "att_conf_write_id"
	ConfColTableName    = "table_name"
	ConfColCsName       = "cs_name"
	ConfColDomain       = "domain"
	ConfColFamily       = "family"
	ConfColMember       = "member"
	ConfColLastName     = "name"
	ConfColTtl          = "ttl"
	ConfColHide         = "hide"

	ConfTypeTableName  = "att_conf_type"
	ConfTypeColTypeId  = "att_conf_type_id"
	ConfTypeColTypeNum = "type_num"
	ConfTypeColType    = "type"

	ConfFormatTableName    = "att_conf_format"
	ConfFormatColFormatId  = "att_conf_format_id"
	ConfFormatColFormatNum = "format_num"
	ConfFormatColFormat    = "format"

	ConfWriteTableName   = "att_conf_write"
	ConfWriteColWriteId  = "att_conf_write_id"
	ConfWriteColWriteNum = "write_num"
	ConfWriteColWrite    = "write"
)

// History
const (
	HistoryTableName  = "att_history"
	HistoryColId      = "att_conf_id"
	HistoryColEventId = "att_history_event_id"
	HistoryColTime    = "event_time"

	HistoryEventTableName  = "att_history_event"
	HistoryEventColEventId = "att_history_event_id"
	HistoryEventColEvent   = "event"
)

// Parameters
const (
	ParamTableName           = "att_parameter"
	ParamColId               = "att_conf_id"
	ParamColEvTime           = "recv_time"
	ParamColInsTime          = "insert_time"
	ParamColLabel            = "label"
	ParamColEnumLabels       = "enum_labels"
	ParamColUnit             = "unit"
	ParamColStandardUnit     = "standard_unit"
	ParamColDisplayUnit      = "display_unit"
	ParamColFormat           = "format"
	ParamColArchiveRelChange = "archive_rel_change"
	ParamColArchiveAbsChange = "archive_abs_change"
	ParamColArchivePeriod    = "archive_period"
	ParamColDescription      = "description"
)

// Error descriptions
const (
	ErrTableName    = "att_error_desc"
	ErrColId        = "att_error_desc_id"
	ErrColErrorDesc = "error_desc"
)

// Data tables
const (
	DatColId          = "att_conf_id"
	DatColDataTime    = "data_time"
	DatColValueR      = "value_r"
	DatColValueW      = "value_w"
	DatColQuality     = "quality"
	DatColErrorDescId = "att_error_desc_id"
)

// Table name fragments
const (
	TypeScalar = "scalar"
	TypeArray  = "array"
	TypeImage  = "image"

	TypeDevBoolean = "devboolean"
	TypeDevShort   = "devshort"
	TypeDevLong    = "devlong"
	TypeDevFloat   = "devfloat"
	TypeDevDouble  = "devdouble"
	TypeDevUshort  = "devushort"
	TypeDevUlong   = "devulong"
	TypeDevString  = "devstring"
	TypeDevState   = "devstate"
	TypeDevUchar   = "devuchar"
	TypeDevLong64  = "devlong64"
	TypeDevUlong64 = "devulong64"
	TypeDevEncoded = "devencoded"
	TypeDevEnum    = "devenum"
)
