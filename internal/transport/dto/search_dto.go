package dto

import (
	"time"

	"github.com/google/uuid"
)

// SearchJobsRequest holds the published-job search filters.
// All fields are optional; empty values leave the filter out entirely.
type SearchJobsRequest struct {
	Query      string `form:"q" validate:"omitempty,max=200"`
	Category   string `form:"category" validate:"omitempty,uuid"`
	Location   string `form:"location" validate:"omitempty,max=100"`
	JobType    string `form:"jobType" validate:"omitempty,oneof=Full-time Part-time Contract Internship Freelance"`
	WorkMode   string `form:"workMode" validate:"omitempty,oneof=On-site Remote Hybrid"`
	Company    string `form:"company" validate:"omitempty,max=100"`
	MinSalary  *int   `form:"minSalary" validate:"omitempty,gte=0"`
	MaxSalary  *int   `form:"maxSalary" validate:"omitempty,gte=0"`
	Skills     string `form:"skills" validate:"omitempty,max=500"`
	Tags       string `form:"tags" validate:"omitempty,max=500"`
	DatePosted string `form:"datePosted" validate:"omitempty,oneof=today week month"`
	SortBy     string `form:"sortBy" validate:"omitempty,oneof=relevance date salary"`
	Page       int    `form:"page,default=1" validate:"omitempty,gte=1"`
	Limit      int    `form:"limit,default=10" validate:"omitempty,gte=1,lte=100"`
}

// SearchJobsResponse is a page of matching published jobs.
type SearchJobsResponse struct {
	Jobs       []JobResponse `json:"jobs"`
	Pagination Pagination    `json:"pagination"`
}

// SuggestionsRequest asks for type-ahead completions.
type SuggestionsRequest struct {
	Query string `form:"q" validate:"omitempty,max=100"`
	Limit int    `form:"limit,default=8" validate:"omitempty,gte=1,lte=20"`
}

// Suggestion is one type-ahead entry with its source field.
type Suggestion struct {
	Text string `json:"text" db:"text"`
	Type string `json:"type" db:"type"` // title, company, skill or location
}

// SuggestionsResponse wraps type-ahead results.
type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// FacetCount is one distinct value with its published-job count.
type FacetCount struct {
	Value string `json:"value" db:"value"`
	Count int    `json:"count" db:"count"`
}

// CategoryFacet is a category facet carrying its id alongside the name.
type CategoryFacet struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Name  string    `json:"name" db:"name"`
	Count int       `json:"count" db:"count"`
}

// SalaryRange is the global span of published salaries.
type SalaryRange struct {
	Min int `json:"min" db:"min"`
	Max int `json:"max" db:"max"`
}

// SearchFiltersResponse enumerates the facet values available for filtering.
type SearchFiltersResponse struct {
	Categories  []CategoryFacet `json:"categories"`
	JobTypes    []FacetCount    `json:"job_types"`
	WorkModes   []FacetCount    `json:"work_modes"`
	Locations   []FacetCount    `json:"locations"`
	Companies   []FacetCount    `json:"companies"`
	Skills      []FacetCount    `json:"skills"`
	Tags        []FacetCount    `json:"tags"`
	SalaryRange SalaryRange     `json:"salary_range"`
}

// SaveSearchRequest stores a named search for later reuse.
type SaveSearchRequest struct {
	UserID uuid.UUID         `json:"-"`
	Name   string            `json:"name" validate:"required,min=1,max=100"`
	Query  SearchJobsRequest `json:"query" validate:"required"`
}

// SavedSearchResponse is a stored search belonging to a user.
type SavedSearchResponse struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Query     SearchJobsRequest `json:"query"`
	CreatedAt time.Time         `json:"created_at"`
}
