package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Category holds the schema definition for the Category entity.
type Category struct {
	ent.Schema
}

// Fields of the Category.
func (Category) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.String("name").Unique().NotEmpty(),
		field.Text("description").Optional(),

		field.String("color").Default("#007bff"),
		field.String("icon").Optional(),

		field.Bool("is_active").Default(true),

		// Cached count of Published jobs, recomputed on demand.
		field.Int("job_count").Default(0).NonNegative(),

		field.UUID("created_by", uuid.UUID{}).StorageKey("created_by").Optional().Nillable(),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the Category.
func (Category) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("jobs", Job.Type),

		// Category may have been created by a user.
		edge.From("creator", User.Type).
			Ref("createdCategories").
			Unique().
			Field("created_by"),
	}
}
