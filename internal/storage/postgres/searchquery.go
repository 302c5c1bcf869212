package postgres

import (
	"fmt"
	"strings"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
)

// buildSearchQuery turns a search request into WHERE conditions, their args
// and the ORDER BY clause. It is a pure function of its inputs so filter
// semantics can be tested without a database.
//
// Placeholders are numbered from the current length of args, which starts
// empty here; callers append LIMIT/OFFSET afterwards.
func buildSearchQuery(req *dto.SearchJobsRequest, excludePoster *uuid.UUID, now time.Time) (conditions []string, args []any, orderBy string) {
	conditions = []string{}
	args = []any{}

	appendCondition(&conditions, &args, "status = $%d", models.JobStatusPublished)

	matchArgIdx := 0
	if q := strings.TrimSpace(req.Query); q != "" {
		args = append(args, q)
		matchArgIdx = len(args)
		conditions = append(conditions, fmt.Sprintf("search_vec @@ plainto_tsquery('english', $%d)", matchArgIdx))
	}

	if req.Category != "" {
		appendCondition(&conditions, &args, "category_id = $%d::uuid", req.Category)
	}
	if req.Location != "" {
		appendCondition(&conditions, &args, "location ILIKE '%%' || $%d || '%%'", req.Location)
	}
	if req.JobType != "" {
		appendCondition(&conditions, &args, "job_type = $%d", req.JobType)
	}
	if req.WorkMode != "" {
		appendCondition(&conditions, &args, "work_mode = $%d", req.WorkMode)
	}
	if req.Company != "" {
		appendCondition(&conditions, &args, "company ILIKE '%%' || $%d || '%%'", req.Company)
	}

	// When only one salary bound is given it stands in for both, and the two
	// branches stay OR-ed. A job matches if its minimum clears the lower
	// bound or its maximum fits under the upper one.
	if req.MinSalary != nil || req.MaxSalary != nil {
		lo := req.MinSalary
		if lo == nil {
			lo = req.MaxSalary
		}
		hi := req.MaxSalary
		if hi == nil {
			hi = req.MinSalary
		}
		args = append(args, *lo)
		loIdx := len(args)
		args = append(args, *hi)
		hiIdx := len(args)
		conditions = append(conditions, fmt.Sprintf("(salary_min >= $%d OR salary_max <= $%d)", loIdx, hiIdx))
	}

	if list := splitCommaList(req.Skills); len(list) > 0 {
		appendCondition(&conditions, &args, "skills && $%d", list)
	}
	if list := splitCommaList(req.Tags); len(list) > 0 {
		appendCondition(&conditions, &args, "tags && $%d", list)
	}

	if cutoff, ok := datePostedCutoff(req.DatePosted, now); ok {
		appendCondition(&conditions, &args, "created_at >= $%d", cutoff)
	}

	if excludePoster != nil {
		appendCondition(&conditions, &args, "posted_by <> $%d", *excludePoster)
	}

	switch req.SortBy {
	case "date":
		orderBy = "created_at DESC"
	case "salary":
		orderBy = "salary_max DESC NULLS LAST, created_at DESC"
	default: // relevance
		if matchArgIdx > 0 {
			orderBy = fmt.Sprintf("ts_rank(search_vec, plainto_tsquery('english', $%d)) DESC, created_at DESC", matchArgIdx)
		} else {
			orderBy = "featured DESC, created_at DESC"
		}
	}

	return conditions, args, orderBy
}

// splitCommaList splits a comma separated filter value, trimming whitespace
// and dropping empty entries.
func splitCommaList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// datePostedCutoff resolves the datePosted keyword to an absolute lower
// bound on created_at. "today" means midnight of the current day, "week"
// seven days back and "month" one calendar month back.
func datePostedCutoff(datePosted string, now time.Time) (time.Time, bool) {
	switch datePosted {
	case "today":
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), true
	case "week":
		return now.Add(-7 * 24 * time.Hour), true
	case "month":
		return now.AddDate(0, -1, 0), true
	default:
		return time.Time{}, false
	}
}
