package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CareerSnapshot captures one commander's full skill-tree state at a
// point in time, enabling restore without replaying the event trail.
type CareerSnapshot struct {
	ent.Schema
}

func (CareerSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("commander_id").
			NotEmpty().
			Comment("Owning commander"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the snapshot was taken"),
		field.JSON("data", map[string]any{}).
			Comment("Flat career state as JSON"),
	}
}

func (CareerSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("commander_id", "timestamp"),
	}
}
