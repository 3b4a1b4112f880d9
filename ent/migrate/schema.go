// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CareerSnapshotsColumns holds the columns for the "career_snapshots" table.
	CareerSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "commander_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// CareerSnapshotsTable holds the schema information for the "career_snapshots" table.
	CareerSnapshotsTable = &schema.Table{
		Name:       "career_snapshots",
		Columns:    CareerSnapshotsColumns,
		PrimaryKey: []*schema.Column{CareerSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "careersnapshot_commander_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CareerSnapshotsColumns[1], CareerSnapshotsColumns[2]},
			},
		},
	}
	// ProgressEventsColumns holds the columns for the "progress_events" table.
	ProgressEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "commander_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString, Nullable: true},
		{Name: "branch", Type: field.TypeString, Nullable: true},
		{Name: "delta", Type: field.TypeInt},
		{Name: "reputation", Type: field.TypeInt},
		{Name: "grade", Type: field.TypeString},
	}
	// ProgressEventsTable holds the schema information for the "progress_events" table.
	ProgressEventsTable = &schema.Table{
		Name:       "progress_events",
		Columns:    ProgressEventsColumns,
		PrimaryKey: []*schema.Column{ProgressEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[1]},
			},
			{
				Name:    "progressevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[2]},
			},
			{
				Name:    "progressevent_commander_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CareerSnapshotsTable,
		ProgressEventsTable,
	}
)

func init() {
}
