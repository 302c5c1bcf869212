package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	filtersCacheKey = "search:filters"
	filtersCacheTTL = 5 * time.Minute
)

// searchService implements SearchService. The facet payload is cached in
// Redis because it scans every published job.
type searchService struct {
	jobRepo   storage.JobRepository
	savedRepo storage.SavedSearchRepository
	cache     *redis.Client
}

// NewSearchService creates a new SearchService. cache may be nil, in which
// case every filters request hits the database.
func NewSearchService(jobRepo storage.JobRepository, savedRepo storage.SavedSearchRepository, cache *redis.Client) SearchService {
	return &searchService{jobRepo: jobRepo, savedRepo: savedRepo, cache: cache}
}

// Compile-time check to ensure searchService implements SearchService
var _ SearchService = (*searchService)(nil)

// SearchJobs runs the published-job search. Authenticated callers never see
// their own postings in the results.
func (s *searchService) SearchJobs(ctx context.Context, req *dto.SearchJobsRequest, callerID *uuid.UUID) (*dto.SearchJobsResponse, error) {
	req.Page, req.Limit = normalizePage(req.Page, req.Limit)

	jobs, total, err := s.jobRepo.Search(ctx, req, callerID, time.Now())
	if err != nil {
		return nil, MapRepoError(err, "search jobs")
	}

	return &dto.SearchJobsResponse{
		Jobs:       MapJobsToResponses(jobs),
		Pagination: buildPagination(req.Page, req.Limit, total),
	}, nil
}

// GetSuggestions returns type-ahead completions for the prefix. Prefixes
// shorter than two characters produce an empty list, not an error.
func (s *searchService) GetSuggestions(ctx context.Context, req *dto.SuggestionsRequest) (*dto.SuggestionsResponse, error) {
	if len(req.Query) < 2 {
		return &dto.SuggestionsResponse{Suggestions: []dto.Suggestion{}}, nil
	}
	if req.Limit < 1 {
		req.Limit = 8
	}

	suggestions, err := s.jobRepo.Suggestions(ctx, req.Query, req.Limit)
	if err != nil {
		return nil, MapRepoError(err, "search suggestions")
	}
	if suggestions == nil {
		suggestions = []dto.Suggestion{}
	}
	return &dto.SuggestionsResponse{Suggestions: suggestions}, nil
}

// GetFilters returns the facet values, served from cache when fresh. Cache
// failures fall through to the database.
func (s *searchService) GetFilters(ctx context.Context) (*dto.SearchFiltersResponse, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, filtersCacheKey).Bytes()
		if err == nil {
			var out dto.SearchFiltersResponse
			if err := json.Unmarshal(cached, &out); err == nil {
				return &out, nil
			}
			log.Printf("SearchService: Dropping corrupt filters cache entry: %v", err)
			s.cache.Del(ctx, filtersCacheKey)
		} else if !errors.Is(err, redis.Nil) {
			log.Printf("SearchService: Filters cache read failed: %v", err)
		}
	}

	filters, err := s.jobRepo.Facets(ctx)
	if err != nil {
		return nil, MapRepoError(err, "search filters")
	}

	if s.cache != nil {
		if payload, err := json.Marshal(filters); err == nil {
			if err := s.cache.Set(ctx, filtersCacheKey, payload, filtersCacheTTL).Err(); err != nil {
				log.Printf("SearchService: Filters cache write failed: %v", err)
			}
		}
	}

	return filters, nil
}

// SaveSearch stores the filter set under a name for the caller.
func (s *searchService) SaveSearch(ctx context.Context, req *dto.SaveSearchRequest) (*dto.SavedSearchResponse, error) {
	saved, err := s.savedRepo.Create(ctx, req.UserID, req.Name, &req.Query)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: a saved search with this name exists", ErrConflict)
		}
		return nil, MapRepoError(err, "save search")
	}
	return saved, nil
}

// ListSavedSearches returns the caller's saved searches.
func (s *searchService) ListSavedSearches(ctx context.Context, userID uuid.UUID) ([]dto.SavedSearchResponse, error) {
	searches, err := s.savedRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, MapRepoError(err, "list saved searches")
	}
	return searches, nil
}

// DeleteSavedSearch removes one of the caller's saved searches.
func (s *searchService) DeleteSavedSearch(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.savedRepo.Delete(ctx, userID, id); err != nil {
		return MapRepoError(err, "delete saved search")
	}
	return nil
}
