package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Job holds the schema definition for the Job entity.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.String("title").NotEmpty(),
		field.Text("description").NotEmpty(),
		field.String("company").NotEmpty(),
		field.String("location").NotEmpty(),

		field.Enum("job_type").
			Values("Full-time", "Part-time", "Contract", "Internship", "Freelance"),

		field.Enum("work_mode").
			Values("Remote", "On-site", "Hybrid"),

		field.Int("salary_min").Optional().Nillable(),
		field.Int("salary_max").Optional().Nillable(),
		field.String("salary_currency").Default("INR"),

		field.Strings("skills").Optional(),
		field.Strings("tags").Optional(),
		field.Strings("requirements").Optional(),
		field.Strings("benefits").Optional(),

		field.UUID("category_id", uuid.UUID{}).StorageKey("category_id").Optional().Nillable(),
		field.UUID("posted_by", uuid.UUID{}).StorageKey("posted_by").Immutable(),

		field.Enum("status").
			Values("Draft", "Published", "Closed", "Filled").
			Default("Draft"),

		field.Bool("featured").Default(false),
		field.Int("view_count").Default(0).NonNegative(),

		// Zero time means no deadline.
		field.Time("application_deadline").Optional(),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		// Job belongs to a poster (User). Required edge.
		edge.From("poster", User.Type).
			Ref("postedJobs").
			Required().
			Unique().
			Immutable().
			Field("posted_by"),

		// Job may sit in a category. Deleting the category orphans the job.
		edge.From("category", Category.Type).
			Ref("jobs").
			Unique().
			Field("category_id"),

		// Job has multiple applications; removing the job removes them.
		edge.To("applications", Application.Type).Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
