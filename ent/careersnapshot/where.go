// Code generated by ent, DO NOT EDIT.

package careersnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fieldhq/brevet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldLTE(FieldID, id))
}

// CommanderID applies equality check predicate on the "commander_id" field. It's identical to CommanderIDEQ.
func CommanderID(v string) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldEQ(FieldCommanderID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldEQ(FieldTimestamp, v))
}

// CommanderIDEQ applies the EQ predicate on the "commander_id" field.
func CommanderIDEQ(v string) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldEQ(FieldCommanderID, v))
}

// CommanderIDNEQ applies the NEQ predicate on the "commander_id" field.
func CommanderIDNEQ(v string) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldNEQ(FieldCommanderID, v))
}

// CommanderIDIn applies the In predicate on the "commander_id" field.
func CommanderIDIn(vs ...string) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldIn(FieldCommanderID, vs...))
}

// CommanderIDNotIn applies the NotIn predicate on the "commander_id" field.
func CommanderIDNotIn(vs ...string) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldNotIn(FieldCommanderID, vs...))
}

// CommanderIDGT applies the GT predicate on the "commander_id" field.
func CommanderIDGT(v string) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldGT(FieldCommanderID, v))
}

// CommanderIDGTE applies the GTE predicate on the "commander_id" field.
func CommanderIDGTE(v string) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldGTE(FieldCommanderID, v))
}

// CommanderIDLT applies the LT predicate on the "commander_id" field.
func CommanderIDLT(v string) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldLT(FieldCommanderID, v))
}

// CommanderIDLTE applies the LTE predicate on the "commander_id" field.
func CommanderIDLTE(v string) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldLTE(FieldCommanderID, v))
}

// CommanderIDContains applies the Contains predicate on the "commander_id" field.
func CommanderIDContains(v string) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldContains(FieldCommanderID, v))
}

// CommanderIDHasPrefix applies the HasPrefix predicate on the "commander_id" field.
func CommanderIDHasPrefix(v string) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldHasPrefix(FieldCommanderID, v))
}

// CommanderIDHasSuffix applies the HasSuffix predicate on the "commander_id" field.
func CommanderIDHasSuffix(v string) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldHasSuffix(FieldCommanderID, v))
}

// CommanderIDEqualFold applies the EqualFold predicate on the "commander_id" field.
func CommanderIDEqualFold(v string) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldEqualFold(FieldCommanderID, v))
}

// CommanderIDContainsFold applies the ContainsFold predicate on the "commander_id" field.
func CommanderIDContainsFold(v string) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldContainsFold(FieldCommanderID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.FieldLTE(FieldTimestamp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CareerSnapshot) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CareerSnapshot) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CareerSnapshot) predicate.CareerSnapshot {
	return predicate.CareerSnapshot(sql.NotPredicates(p))
}
