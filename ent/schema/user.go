package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.String("firstname").NotEmpty(),
		field.String("lastname").NotEmpty(),

		field.String("email").Unique().NotEmpty(),

		// Mark as Sensitive to prevent logging
		field.Text("password_hash").Sensitive().NotEmpty(),

		field.Enum("role").
			Values("USER", "ADMIN").
			Default("USER"),

		field.String("phone").Optional(),
		field.String("location").Optional(),
		field.Text("bio").Optional(),
		field.Strings("skills").Optional(),
		field.String("profile_picture").Optional(),

		// Stored resume. Content lives inline; metadata drives the profile view.
		field.String("resume_name").Optional(),
		field.Bytes("resume_data").Optional().Sensitive(),
		field.String("resume_content_type").Optional(),
		field.Int64("resume_size").Optional(),
		field.Time("resume_uploaded_at").Optional(),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		// User posts multiple jobs (poster role).
		edge.To("postedJobs", Job.Type),

		// User submits multiple applications (applicant role).
		edge.To("applications", Application.Type),

		// User may have created categories.
		edge.To("createdCategories", Category.Type),
	}
}
