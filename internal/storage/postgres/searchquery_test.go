package postgres

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

var fixedNow = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func TestBuildSearchQuery_AlwaysFiltersPublished(t *testing.T) {
	conditions, args, orderBy := buildSearchQuery(&dto.SearchJobsRequest{}, nil, fixedNow)

	require.Len(t, conditions, 1)
	assert.Equal(t, "status = $1", conditions[0])
	require.Len(t, args, 1)
	assert.Equal(t, "featured DESC, created_at DESC", orderBy)
}

func TestBuildSearchQuery_FullTextAndRelevanceShareArg(t *testing.T) {
	conditions, args, orderBy := buildSearchQuery(&dto.SearchJobsRequest{Query: "go engineer"}, nil, fixedNow)

	require.Len(t, args, 2)
	assert.Equal(t, "go engineer", args[1])
	assert.Contains(t, conditions[1], "plainto_tsquery('english', $2)")
	// Relevance ordering reuses the same placeholder rather than appending
	// the query text a second time.
	assert.Contains(t, orderBy, "ts_rank(search_vec, plainto_tsquery('english', $2))")
}

func TestBuildSearchQuery_SalaryBothBounds(t *testing.T) {
	req := &dto.SearchJobsRequest{MinSalary: intPtr(50000), MaxSalary: intPtr(90000)}
	conditions, args, _ := buildSearchQuery(req, nil, fixedNow)

	require.Len(t, args, 3)
	assert.Equal(t, 50000, args[1])
	assert.Equal(t, 90000, args[2])
	assert.Contains(t, conditions, "(salary_min >= $2 OR salary_max <= $3)")
}

func TestBuildSearchQuery_SalarySingleBoundStandsInForBoth(t *testing.T) {
	req := &dto.SearchJobsRequest{MinSalary: intPtr(60000)}
	conditions, args, _ := buildSearchQuery(req, nil, fixedNow)

	require.Len(t, args, 3)
	assert.Equal(t, 60000, args[1])
	assert.Equal(t, 60000, args[2])
	assert.Contains(t, conditions, "(salary_min >= $2 OR salary_max <= $3)")

	req = &dto.SearchJobsRequest{MaxSalary: intPtr(80000)}
	_, args, _ = buildSearchQuery(req, nil, fixedNow)
	assert.Equal(t, 80000, args[1])
	assert.Equal(t, 80000, args[2])
}

func TestBuildSearchQuery_JobTypeAndWorkModeIndependent(t *testing.T) {
	req := &dto.SearchJobsRequest{JobType: "Contract", WorkMode: "Remote"}
	conditions, args, _ := buildSearchQuery(req, nil, fixedNow)

	assert.Contains(t, conditions, "job_type = $2")
	assert.Contains(t, conditions, "work_mode = $3")
	assert.Equal(t, "Contract", args[1])
	assert.Equal(t, "Remote", args[2])
}

func TestBuildSearchQuery_SkillsOverlap(t *testing.T) {
	req := &dto.SearchJobsRequest{Skills: "go, postgres , "}
	conditions, args, _ := buildSearchQuery(req, nil, fixedNow)

	assert.Contains(t, conditions, "skills && $2")
	assert.Equal(t, []string{"go", "postgres"}, args[1])
}

func TestBuildSearchQuery_DatePostedCutoffs(t *testing.T) {
	tests := []struct {
		datePosted string
		want       time.Time
	}{
		{"today", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"week", fixedNow.Add(-7 * 24 * time.Hour)},
		{"month", time.Date(2025, 5, 15, 14, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.datePosted, func(t *testing.T) {
			req := &dto.SearchJobsRequest{DatePosted: tt.datePosted}
			conditions, args, _ := buildSearchQuery(req, nil, fixedNow)

			assert.Contains(t, conditions, "created_at >= $2")
			assert.Equal(t, tt.want, args[1])
		})
	}
}

func TestBuildSearchQuery_UnknownDatePostedIgnored(t *testing.T) {
	req := &dto.SearchJobsRequest{DatePosted: ""}
	conditions, _, _ := buildSearchQuery(req, nil, fixedNow)
	require.Len(t, conditions, 1)
}

func TestBuildSearchQuery_ExcludesCallersOwnJobs(t *testing.T) {
	callerID := uuid.New()
	conditions, args, _ := buildSearchQuery(&dto.SearchJobsRequest{}, &callerID, fixedNow)

	assert.Contains(t, conditions, "posted_by <> $2")
	assert.Equal(t, callerID, args[1])
}

func TestBuildSearchQuery_SortOrders(t *testing.T) {
	_, _, orderBy := buildSearchQuery(&dto.SearchJobsRequest{SortBy: "date"}, nil, fixedNow)
	assert.Equal(t, "created_at DESC", orderBy)

	_, _, orderBy = buildSearchQuery(&dto.SearchJobsRequest{SortBy: "salary"}, nil, fixedNow)
	assert.Equal(t, "salary_max DESC NULLS LAST, created_at DESC", orderBy)

	// Relevance without a query falls back to featured-first recency.
	_, _, orderBy = buildSearchQuery(&dto.SearchJobsRequest{SortBy: "relevance"}, nil, fixedNow)
	assert.Equal(t, "featured DESC, created_at DESC", orderBy)
}

func TestBuildSearchQuery_PlaceholdersMatchArgCount(t *testing.T) {
	callerID := uuid.New()
	req := &dto.SearchJobsRequest{
		Query:      "engineer",
		Category:   uuid.NewString(),
		Location:   "Berlin",
		JobType:    "Full-time",
		WorkMode:   "Hybrid",
		Company:    "Acme",
		MinSalary:  intPtr(1),
		MaxSalary:  intPtr(2),
		Skills:     "go",
		Tags:       "backend",
		DatePosted: "week",
		SortBy:     "relevance",
	}

	conditions, args, _ := buildSearchQuery(req, &callerID, fixedNow)

	// Highest placeholder referenced equals the number of args.
	joined := strings.Join(conditions, " AND ")
	for i := 1; i <= len(args); i++ {
		assert.Contains(t, joined, "$"+strconv.Itoa(i))
	}
	assert.NotContains(t, joined, "$"+strconv.Itoa(len(args)+1))
}

func TestSplitCommaList(t *testing.T) {
	assert.Nil(t, splitCommaList(""))
	assert.Nil(t, splitCommaList("   "))
	assert.Equal(t, []string{"go"}, splitCommaList("go"))
	assert.Equal(t, []string{"go", "postgres"}, splitCommaList(" go ,, postgres ,"))
}
