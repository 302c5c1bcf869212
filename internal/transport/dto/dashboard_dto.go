package dto

import (
	"time"

	"github.com/google/uuid"
)

// PosterStats aggregates the caller's posted jobs and their applications.
type PosterStats struct {
	TotalJobs          int                   `json:"total_jobs"`
	JobsByStatus       map[string]int        `json:"jobs_by_status"`
	TotalApplications  int                   `json:"total_applications"`
	ApplicationsByStatus map[string]int      `json:"applications_by_status"`
	TotalViews         int                   `json:"total_views"`
	RecentApplications []ApplicationResponse `json:"recent_applications"`
	TopJobs            []TopJobEntry         `json:"top_jobs"`
}

// TopJobEntry ranks a posted job by views.
type TopJobEntry struct {
	ID               uuid.UUID `json:"id" db:"id"`
	Title            string    `json:"title" db:"title"`
	Status           string    `json:"status" db:"status"`
	ViewCount        int       `json:"view_count" db:"view_count"`
	ApplicationCount int       `json:"application_count" db:"application_count"`
}

// ApplicantStats aggregates the caller's own applications.
type ApplicantStats struct {
	TotalApplications    int                  `json:"total_applications"`
	ApplicationsByStatus map[string]int       `json:"applications_by_status"`
	ApplicationTrend     []TrendPoint         `json:"application_trend"`
	RecentApplications   []MyApplicationEntry `json:"recent_applications"`
}

// TrendPoint counts applications submitted on one day.
type TrendPoint struct {
	Date  string `json:"date" db:"date"` // YYYY-MM-DD
	Count int    `json:"count" db:"count"`
}

// DashboardStatsResponse carries the dashboard view matching the caller's
// role. Posters get Poster, applicants get Applicant; the other side is
// omitted.
type DashboardStatsResponse struct {
	Role      string          `json:"role"`
	Poster    *PosterStats    `json:"poster,omitempty"`
	Applicant *ApplicantStats `json:"applicant,omitempty"`
}

// JobAnalyticsResponse details a single posted job's performance.
type JobAnalyticsResponse struct {
	JobID                uuid.UUID      `json:"job_id"`
	Title                string         `json:"title"`
	Status               string         `json:"status"`
	ViewCount            int            `json:"view_count"`
	ApplicationCount     int            `json:"application_count"`
	ApplicationsByStatus map[string]int `json:"applications_by_status"`
	ApplicationTrend     []TrendPoint   `json:"application_trend"`
	PostedAt             time.Time      `json:"posted_at"`
}
