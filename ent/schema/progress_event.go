package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressEvent records one unlock, promotion or respec for audit and
// analytics.
type ProgressEvent struct {
	ent.Schema
}

func (ProgressEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ProgressEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("commander_id").NotEmpty(),
		field.String("kind").NotEmpty().
			Comment("unlock, promotion or reset"),
		field.String("skill").Optional().
			Comment("Skill tag name; empty for resets"),
		field.String("branch").Optional(),
		field.Int("delta").
			Comment("Reputation delta; negative on unlock, positive on refund"),
		field.Int("reputation").
			Comment("Balance after the change"),
		field.String("grade").NotEmpty(),
	}
}

func (ProgressEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("commander_id"),
	}
}
