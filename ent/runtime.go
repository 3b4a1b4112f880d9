// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fieldhq/brevet/ent/careersnapshot"
	"github.com/fieldhq/brevet/ent/progressevent"
	"github.com/fieldhq/brevet/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	careersnapshotFields := schema.CareerSnapshot{}.Fields()
	_ = careersnapshotFields
	// careersnapshotDescCommanderID is the schema descriptor for commander_id field.
	careersnapshotDescCommanderID := careersnapshotFields[0].Descriptor()
	// careersnapshot.CommanderIDValidator is a validator for the "commander_id" field. It is called by the builders before save.
	careersnapshot.CommanderIDValidator = careersnapshotDescCommanderID.Validators[0].(func(string) error)
	// careersnapshotDescTimestamp is the schema descriptor for timestamp field.
	careersnapshotDescTimestamp := careersnapshotFields[1].Descriptor()
	// careersnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	careersnapshot.DefaultTimestamp = careersnapshotDescTimestamp.Default.(func() time.Time)
	progresseventMixin := schema.ProgressEvent{}.Mixin()
	progresseventMixinFields0 := progresseventMixin[0].Fields()
	_ = progresseventMixinFields0
	progresseventFields := schema.ProgressEvent{}.Fields()
	_ = progresseventFields
	// progresseventDescTimestamp is the schema descriptor for timestamp field.
	progresseventDescTimestamp := progresseventMixinFields0[1].Descriptor()
	// progressevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	progressevent.DefaultTimestamp = progresseventDescTimestamp.Default.(func() time.Time)
	// progresseventDescCommanderID is the schema descriptor for commander_id field.
	progresseventDescCommanderID := progresseventFields[0].Descriptor()
	// progressevent.CommanderIDValidator is a validator for the "commander_id" field. It is called by the builders before save.
	progressevent.CommanderIDValidator = progresseventDescCommanderID.Validators[0].(func(string) error)
	// progresseventDescKind is the schema descriptor for kind field.
	progresseventDescKind := progresseventFields[1].Descriptor()
	// progressevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	progressevent.KindValidator = progresseventDescKind.Validators[0].(func(string) error)
	// progresseventDescGrade is the schema descriptor for grade field.
	progresseventDescGrade := progresseventFields[6].Descriptor()
	// progressevent.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	progressevent.GradeValidator = progresseventDescGrade.Validators[0].(func(string) error)
}
