package query

import (
	"strings"

	"github.com/Konsultn-Engineering/hdbpp/schema"
)

// Statements that do not depend on attribute traits. They are built during
// package initialization, before any caller can run, and never change.
var (
	storeAttributeStatement        = buildStoreAttribute()
	storeHistoryStringStatement    = buildStoreHistoryString()
	storeHistoryEventStatement     = buildStoreHistoryEvent()
	storeParameterEventStatement   = buildStoreParameterEvent()
	storeErrorStatement            = buildStoreError()
	storeTTLStatement              = buildStoreTTL()
	fetchLastHistoryEventStatement = buildFetchLastHistoryEvent()
	fetchAttributeTraitsStatement  = buildFetchAttributeTraits()
)

// StoreAttributeStatement inserts an attribute configuration row and returns
// its id. Parameters: $1 attribute name, $2 table name, $3 control system name,
// $4 domain, $5 family, $6 member, $7 attribute name, $8 ttl, $9 hide, then the
// type, format and write numbers ($10..$12) used to look up the foreign keys.
func StoreAttributeStatement() string { return storeAttributeStatement }

// StoreHistoryStringStatement inserts a history event name ($1) and returns its id.
func StoreHistoryStringStatement() string { return storeHistoryStringStatement }

// StoreHistoryEventStatement records history event $2 for attribute $1 at the
// server's current time.
func StoreHistoryEventStatement() string { return storeHistoryEventStatement }

// StoreParameterEventStatement inserts an attribute parameter snapshot. $2 is
// the event time in epoch seconds and $4 the enum labels array.
func StoreParameterEventStatement() string { return storeParameterEventStatement }

// StoreErrorStatement inserts an error description ($1) and returns its id.
func StoreErrorStatement() string { return storeErrorStatement }

// StoreTTLStatement sets the retention of attribute $2 to $1 minutes.
func StoreTTLStatement() string { return storeTTLStatement }

// FetchLastHistoryEventStatement selects the most recent history event name of
// attribute $1.
func FetchLastHistoryEventStatement() string { return fetchLastHistoryEventStatement }

// FetchAttributeTraitsStatement selects (type_num, format_num, write_num) for
// attribute name $1.
func FetchAttributeTraitsStatement() string { return fetchAttributeTraitsStatement }

func buildStoreAttribute() string {
	return "INSERT INTO " + schema.ConfTableName + " (" +
		strings.Join([]string{
			schema.ConfColName,
			schema.ConfColTypeId,
			schema.ConfColFormatTypeId,
			schema.ConfColWriteTypeId,
			schema.ConfColTableName,
			schema.ConfColCsName,
			schema.ConfColDomain,
			schema.ConfColFamily,
			schema.ConfColMember,
			schema.ConfColLastName,
			schema.ConfColTtl,
			schema.ConfColHide,
		}, ",") + ") (" +
		"SELECT " +
		"$1," +
		schema.ConfTypeColTypeId + "," +
		schema.ConfFormatColFormatId + "," +
		schema.ConfWriteColWriteId +
		",$2,$3,$4,$5,$6,$7,$8,$9 " +
		"FROM " +
		schema.ConfTypeTableName + ", " +
		schema.ConfFormatTableName + ", " +
		schema.ConfWriteTableName + " " +
		"WHERE " + schema.ConfTypeTableName + "." + schema.ConfTypeColTypeNum + " = $10 " +
		"AND " + schema.ConfFormatTableName + "." + schema.ConfFormatColFormatNum + " = $11 " +
		"AND " + schema.ConfWriteTableName + "." + schema.ConfWriteColWriteNum + " = $12) " +
		"RETURNING " + schema.ConfColId
}

func buildStoreHistoryString() string {
	return "INSERT INTO " + schema.HistoryEventTableName + " (" +
		schema.HistoryEventColEvent +
		") VALUES ($1) RETURNING " + schema.HistoryEventColEventId
}

func buildStoreHistoryEvent() string {
	return "INSERT INTO " + schema.HistoryTableName + " (" +
		schema.HistoryColId + "," +
		schema.HistoryColEventId + "," +
		schema.HistoryColTime + ") " +
		"SELECT " +
		"$1," + schema.HistoryEventColEventId + ",CURRENT_TIMESTAMP(6)" +
		" FROM " + schema.HistoryEventTableName +
		" WHERE " + schema.HistoryEventColEvent + " = $2"
}

func buildStoreParameterEvent() string {
	return "INSERT INTO " + schema.ParamTableName + " (" +
		strings.Join([]string{
			schema.ParamColId,
			schema.ParamColEvTime,
			schema.ParamColLabel,
			schema.ParamColEnumLabels,
			schema.ParamColUnit,
			schema.ParamColStandardUnit,
			schema.ParamColDisplayUnit,
			schema.ParamColFormat,
			schema.ParamColArchiveRelChange,
			schema.ParamColArchiveAbsChange,
			schema.ParamColArchivePeriod,
			schema.ParamColDescription,
		}, ",") + ") " +
		"VALUES ($1, TO_TIMESTAMP($2), $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)"
}

func buildStoreError() string {
	return "INSERT INTO " + schema.ErrTableName + " (" +
		schema.ErrColErrorDesc + ") VALUES ($1) RETURNING " + schema.ErrColId
}

func buildStoreTTL() string {
	return "UPDATE " + schema.ConfTableName + " SET " +
		schema.ConfColTtl + "=$1::int WHERE " + schema.ConfColId + "=$2"
}

func buildFetchLastHistoryEvent() string {
	return "SELECT " + schema.HistoryEventColEvent +
		" FROM " + schema.HistoryTableName +
		" JOIN " + schema.HistoryEventTableName +
		" ON " + schema.HistoryEventTableName + "." + schema.HistoryEventColEventId +
		"=" + schema.HistoryTableName + "." + schema.HistoryColEventId +
		" WHERE " + schema.HistoryColId + " =$1" +
		" ORDER BY " + schema.HistoryColTime + " DESC LIMIT 1"
}

func buildFetchAttributeTraits() string {
	return "SELECT " +
		schema.ConfTypeColTypeNum + "," +
		schema.ConfFormatColFormatNum + "," +
		schema.ConfWriteColWriteNum + " " +
		"FROM " +
		schema.ConfTypeTableName + " t," +
		schema.ConfFormatTableName + " f," +
		schema.ConfWriteTableName + " w, " +
		"(SELECT " +
		schema.ConfColTypeId + "," +
		schema.ConfColFormatTypeId + "," +
		schema.ConfColWriteTypeId + " " +
		"FROM " + schema.ConfTableName + " WHERE " + schema.ConfColName + "=$1) AS tmp " +
		"WHERE " +
		"t." + schema.ConfColTypeId + "=tmp." + schema.ConfColTypeId + " " +
		"AND " +
		"f." + schema.ConfColFormatTypeId + "=tmp." + schema.ConfColFormatTypeId + " " +
		"AND " +
		"w." + schema.ConfColWriteTypeId + "=tmp." + schema.ConfColWriteTypeId
}

// NamedStatement is a stable statement with a short, stable name.
type NamedStatement struct {
	Name string
	SQL  string
}

// StableStatements lists every traits independent statement in a fixed order.
func StableStatements() []NamedStatement {
	return []NamedStatement{
		{"store-attribute", storeAttributeStatement},
		{"store-history-string", storeHistoryStringStatement},
		{"store-history-event", storeHistoryEventStatement},
		{"store-parameter-event", storeParameterEventStatement},
		{"store-error", storeErrorStatement},
		{"store-ttl", storeTTLStatement},
		{"fetch-last-history-event", fetchLastHistoryEventStatement},
		{"fetch-traits", fetchAttributeTraitsStatement},
	}
}
