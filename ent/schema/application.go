package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Application holds the schema definition for the Application entity.
type Application struct {
	ent.Schema
}

// Fields of the Application.
func (Application) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.UUID("job_id", uuid.UUID{}).StorageKey("job_id").Immutable(),
		field.UUID("applicant_id", uuid.UUID{}).StorageKey("applicant_id").Immutable(),

		field.Text("resume").NotEmpty(),
		field.Text("cover_letter").Optional(),

		field.Enum("status").
			Values("Applied", "Under Review", "Shortlisted", "Rejected", "Hired").
			Default("Applied"),

		field.Time("applied_at").Immutable().Default(time.Now),
	}
}

// Indexes of the Application.
func (Application) Indexes() []ent.Index {
	return []ent.Index{
		// One application per applicant per job.
		index.Fields("job_id", "applicant_id").Unique(),
	}
}

// Edges of the Application.
func (Application) Edges() []ent.Edge {
	return []ent.Edge{
		// Application belongs to an applicant (User). Required edge.
		edge.From("applicant", User.Type).
			Ref("applications").
			Required().
			Unique().
			Immutable().
			Field("applicant_id"),

		// Application targets a specific Job. Required edge.
		edge.From("job", Job.Type).
			Ref("applications").
			Required().
			Unique().
			Immutable().
			Field("job_id"),
	}
}
