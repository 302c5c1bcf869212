package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- User Role Enum ---
type UserRole string

const (
	RoleUser  UserRole = "USER"  // applicant
	RoleAdmin UserRole = "ADMIN" // poster
)

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusDraft     JobStatus = "Draft"
	JobStatusPublished JobStatus = "Published"
	JobStatusClosed    JobStatus = "Closed"
	JobStatusFilled    JobStatus = "Filled"
)

// Scan implements the sql.Scanner interface for JobStatus
func (js *JobStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobStatus: value is not string or []byte")
		}
	}
	v := JobStatus(strVal)
	switch v {
	case JobStatusDraft, JobStatusPublished, JobStatusClosed, JobStatusFilled:
		*js = v
		return nil
	default:
		return fmt.Errorf("invalid JobStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobStatus
func (js JobStatus) Value() (driver.Value, error) {
	return string(js), nil
}

// --- Application Status Enum ---
// Status is a free label: any value may follow any other, there is no
// transition table (carried over from the source system's behavior).
type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "Applied"
	ApplicationStatusUnderReview ApplicationStatus = "Under Review"
	ApplicationStatusShortlisted ApplicationStatus = "Shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "Rejected"
	ApplicationStatusHired       ApplicationStatus = "Hired"
)

// Scan implements the sql.Scanner interface for ApplicationStatus
func (as *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strVal)
	switch v {
	case ApplicationStatusApplied, ApplicationStatusUnderReview, ApplicationStatusShortlisted,
		ApplicationStatusRejected, ApplicationStatusHired:
		*as = v
		return nil
	default:
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (as ApplicationStatus) Value() (driver.Value, error) {
	return string(as), nil
}

// --- Job Type / Work Mode Enums ---
// Validated at the DTO boundary; stored as plain text.
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
	JobTypeFreelance  JobType = "Freelance"
)

type WorkMode string

const (
	WorkModeRemote WorkMode = "Remote"
	WorkModeOnSite WorkMode = "On-site"
	WorkModeHybrid WorkMode = "Hybrid"
)

// User represents an account in the system.
type User struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Firstname      string    `json:"firstname" db:"firstname"`
	Lastname       string    `json:"lastname" db:"lastname"`
	Email          string    `json:"email" db:"email"`
	PasswordHash   string    `json:"-" db:"password_hash"`
	Role           UserRole  `json:"role" db:"role"`
	Phone          string    `json:"phone,omitempty" db:"phone"`
	Location       string    `json:"location,omitempty" db:"location"`
	Bio            string    `json:"bio,omitempty" db:"bio"`
	Skills         []string  `json:"skills" db:"skills"`
	ProfilePicture string    `json:"profile_picture,omitempty" db:"profile_picture"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Resume is the single stored resume of a user, kept as a byte
// pass-through with metadata for download headers.
type Resume struct {
	Name        string    `json:"name" db:"resume_name"`
	Data        []byte    `json:"-" db:"resume_data"`
	ContentType string    `json:"content_type" db:"resume_content_type"`
	Size        int64     `json:"size" db:"resume_size"`
	UploadedAt  time.Time `json:"uploaded_at" db:"resume_uploaded_at"`
}

// Job represents a posting owned by exactly one poster.
// PostedBy is immutable after creation.
type Job struct {
	ID                  uuid.UUID  `json:"id" db:"id"`
	Title               string     `json:"title" db:"title"`
	Company             string     `json:"company" db:"company"`
	Location            string     `json:"location" db:"location"`
	JobType             JobType    `json:"job_type" db:"job_type"`
	WorkMode            WorkMode   `json:"work_mode" db:"work_mode"`
	CategoryID          *uuid.UUID `json:"category_id,omitempty" db:"category_id"`
	Description         string     `json:"description" db:"description"`
	Skills              []string   `json:"skills" db:"skills"`
	Tags                []string   `json:"tags" db:"tags"`
	Requirements        []string   `json:"requirements" db:"requirements"`
	Benefits            []string   `json:"benefits" db:"benefits"`
	SalaryMin           *int       `json:"salary_min,omitempty" db:"salary_min"`
	SalaryMax           *int       `json:"salary_max,omitempty" db:"salary_max"`
	SalaryCurrency      string     `json:"salary_currency" db:"salary_currency"`
	ApplicationDeadline time.Time  `json:"application_deadline" db:"application_deadline"`
	Status              JobStatus  `json:"status" db:"status"`
	PostedBy            uuid.UUID  `json:"posted_by" db:"posted_by"`
	ViewCount           int        `json:"view_count" db:"view_count"`
	Featured            bool       `json:"featured" db:"featured"`
	ApplicationCount    int        `json:"application_count" db:"application_count"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`
}

// Application belongs to exactly one job; it has no identity outside it
// and is removed with the job.
type Application struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	JobID       uuid.UUID         `json:"job_id" db:"job_id"`
	ApplicantID uuid.UUID         `json:"applicant_id" db:"applicant_id"`
	CoverLetter string            `json:"cover_letter,omitempty" db:"cover_letter"`
	Resume      string            `json:"resume" db:"resume"`
	Status      ApplicationStatus `json:"status" db:"status"`
	AppliedAt   time.Time         `json:"applied_at" db:"applied_at"`
}

// ApplicantIdentity is the subset of a user joined into application listings.
type ApplicantIdentity struct {
	ID        uuid.UUID `json:"id" db:"applicant_id"`
	Firstname string    `json:"firstname" db:"firstname"`
	Lastname  string    `json:"lastname" db:"lastname"`
	Email     string    `json:"email" db:"email"`
}

// JobSummary is the subset of a job joined into application listings.
type JobSummary struct {
	ID       uuid.UUID `json:"id" db:"job_id"`
	Title    string    `json:"title" db:"title"`
	Company  string    `json:"company" db:"company"`
	Location string    `json:"location" db:"location"`
	JobType  JobType   `json:"job_type" db:"job_type"`
	WorkMode WorkMode  `json:"work_mode" db:"work_mode"`
}

// Category groups jobs. CreatedBy is nil for the seeded default category.
type Category struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description,omitempty" db:"description"`
	Color       string     `json:"color" db:"color"`
	Icon        string     `json:"icon,omitempty" db:"icon"`
	IsActive    bool       `json:"is_active" db:"is_active"`
	JobCount    int        `json:"job_count" db:"job_count"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty" db:"created_by"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// DefaultCategoryName is the category assigned to jobs created without one.
// It is ensured at startup and again on demand when a job needs it.
const DefaultCategoryName = "General"
