// Code generated by ent, DO NOT EDIT.

package careersnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the careersnapshot type in the database.
	Label = "career_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCommanderID holds the string denoting the commander_id field in the database.
	FieldCommanderID = "commander_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// Table holds the table name of the careersnapshot in the database.
	Table = "career_snapshots"
)

// Columns holds all SQL columns for careersnapshot fields.
var Columns = []string{
	FieldID,
	FieldCommanderID,
	FieldTimestamp,
	FieldData,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CommanderIDValidator is a validator for the "commander_id" field. It is called by the builders before save.
	CommanderIDValidator func(string) error
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
)

// OrderOption defines the ordering options for the CareerSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCommanderID orders the results by the commander_id field.
func ByCommanderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommanderID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}
