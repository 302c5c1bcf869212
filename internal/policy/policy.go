// Package policy holds the access rules as pure predicates so they can be
// tested without services or storage.
package policy

import (
	"time"

	"jobboard-api/internal/models"

	"github.com/google/uuid"
)

// CanMutateJob reports whether the user may update or delete the job. Only
// the poster may, regardless of role.
func CanMutateJob(job *models.Job, userID uuid.UUID) bool {
	return job.PostedBy == userID
}

// CanViewApplications reports whether the user may list the job's
// applications. Same ownership rule as mutation.
func CanViewApplications(job *models.Job, userID uuid.UUID) bool {
	return job.PostedBy == userID
}

// CanMutateCategory reports whether the user may update or delete the
// category. The creator may, and admins may touch any category including
// seeded ones with no creator.
func CanMutateCategory(cat *models.Category, userID uuid.UUID, role models.UserRole) bool {
	if role == models.RoleAdmin {
		return true
	}
	return cat.CreatedBy != nil && *cat.CreatedBy == userID
}

// CanDeleteCategory reports whether a category with the given number of
// Draft or Published jobs may be removed.
func CanDeleteCategory(liveJobCount int) bool {
	return liveJobCount == 0
}

// ApplyDenial is the reason an application attempt is rejected.
type ApplyDenial int

const (
	ApplyAllowed ApplyDenial = iota
	ApplyDeniedOwnJob
	ApplyDeniedNotPublished
	ApplyDeniedDeadlinePassed
	ApplyDeniedDuplicate
)

// CheckApply evaluates every application precondition in order: posters
// cannot apply to their own jobs, the job must be Published, the deadline
// must not have passed and the applicant must not have applied before.
func CheckApply(job *models.Job, applicantID uuid.UUID, now time.Time, alreadyApplied bool) ApplyDenial {
	if job.PostedBy == applicantID {
		return ApplyDeniedOwnJob
	}
	if job.Status != models.JobStatusPublished {
		return ApplyDeniedNotPublished
	}
	if !job.ApplicationDeadline.IsZero() && now.After(job.ApplicationDeadline) {
		return ApplyDeniedDeadlinePassed
	}
	if alreadyApplied {
		return ApplyDeniedDuplicate
	}
	return ApplyAllowed
}

// CanDeleteAccount reports whether the user may remove their own account.
// Posters must first close out their Draft and Published jobs.
func CanDeleteAccount(role models.UserRole, liveJobCount int) bool {
	if role != models.RoleAdmin {
		return true
	}
	return liveJobCount == 0
}
