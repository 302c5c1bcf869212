package policy

import (
	"testing"
	"time"

	"jobboard-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanMutateJob(t *testing.T) {
	posterID := uuid.New()
	job := &models.Job{ID: uuid.New(), PostedBy: posterID}

	assert.True(t, CanMutateJob(job, posterID))
	assert.False(t, CanMutateJob(job, uuid.New()))
}

func TestCanMutateCategory(t *testing.T) {
	creatorID := uuid.New()
	owned := &models.Category{ID: uuid.New(), CreatedBy: &creatorID}
	seeded := &models.Category{ID: uuid.New(), CreatedBy: nil}

	assert.True(t, CanMutateCategory(owned, creatorID, models.RoleUser))
	assert.False(t, CanMutateCategory(owned, uuid.New(), models.RoleUser))

	// Admins may touch anything, including seeded categories with no creator.
	assert.True(t, CanMutateCategory(owned, uuid.New(), models.RoleAdmin))
	assert.True(t, CanMutateCategory(seeded, uuid.New(), models.RoleAdmin))
	assert.False(t, CanMutateCategory(seeded, uuid.New(), models.RoleUser))
}

func TestCanDeleteCategory(t *testing.T) {
	assert.True(t, CanDeleteCategory(0))
	assert.False(t, CanDeleteCategory(1))
}

func TestCheckApply(t *testing.T) {
	posterID := uuid.New()
	applicantID := uuid.New()
	now := time.Now()

	base := models.Job{
		ID:       uuid.New(),
		PostedBy: posterID,
		Status:   models.JobStatusPublished,
	}

	tests := []struct {
		name           string
		mutate         func(*models.Job)
		applicant      uuid.UUID
		alreadyApplied bool
		want           ApplyDenial
	}{
		{
			name:      "allowed",
			mutate:    func(*models.Job) {},
			applicant: applicantID,
			want:      ApplyAllowed,
		},
		{
			name:      "own job",
			mutate:    func(*models.Job) {},
			applicant: posterID,
			want:      ApplyDeniedOwnJob,
		},
		{
			name:      "draft job",
			mutate:    func(j *models.Job) { j.Status = models.JobStatusDraft },
			applicant: applicantID,
			want:      ApplyDeniedNotPublished,
		},
		{
			name:      "closed job",
			mutate:    func(j *models.Job) { j.Status = models.JobStatusClosed },
			applicant: applicantID,
			want:      ApplyDeniedNotPublished,
		},
		{
			name:      "deadline passed",
			mutate:    func(j *models.Job) { j.ApplicationDeadline = now.Add(-time.Minute) },
			applicant: applicantID,
			want:      ApplyDeniedDeadlinePassed,
		},
		{
			name:      "deadline in the future",
			mutate:    func(j *models.Job) { j.ApplicationDeadline = now.Add(time.Hour) },
			applicant: applicantID,
			want:      ApplyAllowed,
		},
		{
			name:      "zero deadline means none",
			mutate:    func(j *models.Job) { j.ApplicationDeadline = time.Time{} },
			applicant: applicantID,
			want:      ApplyAllowed,
		},
		{
			name:           "duplicate",
			mutate:         func(*models.Job) {},
			applicant:      applicantID,
			alreadyApplied: true,
			want:           ApplyDeniedDuplicate,
		},
		{
			// Preconditions are ordered; ownership wins over everything else.
			name:           "own job beats duplicate",
			mutate:         func(j *models.Job) { j.Status = models.JobStatusDraft },
			applicant:      posterID,
			alreadyApplied: true,
			want:           ApplyDeniedOwnJob,
		},
		{
			// A closed job with a passed deadline reports the status problem.
			name: "not published beats deadline",
			mutate: func(j *models.Job) {
				j.Status = models.JobStatusClosed
				j.ApplicationDeadline = now.Add(-time.Hour)
			},
			applicant: applicantID,
			want:      ApplyDeniedNotPublished,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := base
			tt.mutate(&job)
			assert.Equal(t, tt.want, CheckApply(&job, tt.applicant, now, tt.alreadyApplied))
		})
	}
}

func TestCanDeleteAccount(t *testing.T) {
	// Applicants may always leave, even mid-process.
	assert.True(t, CanDeleteAccount(models.RoleUser, 0))
	assert.True(t, CanDeleteAccount(models.RoleUser, 3))

	// Posters must close out live jobs first.
	assert.False(t, CanDeleteAccount(models.RoleAdmin, 1))
	assert.True(t, CanDeleteAccount(models.RoleAdmin, 0))
}
