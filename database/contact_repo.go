package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

type ContactRepo struct {
	submissions collection[models.ContactSubmission]
}

func NewContactRepo(store Store, clock func() time.Time) *ContactRepo {
	return &ContactRepo{
		submissions: newCollection[models.ContactSubmission](store, clock, ContactSubmissionsCollection, "Submission", "submitted_at"),
	}
}

// FindAll returns submissions newest first, optionally only those with status.
func (r *ContactRepo) FindAll(ctx context.Context, status string) ([]models.ContactSubmission, error) {
	filter := Filter{}
	if status != "" {
		filter["status"] = status
	}
	return r.submissions.list(ctx, filter)
}

func (r *ContactRepo) FindByID(ctx context.Context, id string) (*models.ContactSubmission, error) {
	return r.submissions.get(ctx, id)
}

// Add stores a new submission with status "new".
func (r *ContactRepo) Add(ctx context.Context, in models.ContactSubmissionInput) (*models.ContactSubmission, error) {
	submission := models.NewContactSubmission(r.submissions.newID(), in, r.submissions.now())
	if err := r.submissions.insert(ctx, submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

// SetStatus writes status after checking it is a known status. Transitions
// are not ordered.
func (r *ContactRepo) SetStatus(ctx context.Context, id, status string) error {
	if !models.IsContactStatus(status) {
		return errs.NewInvalidInputError("status",
			fmt.Sprintf("Invalid status. Must be one of: %s", strings.Join(models.ContactStatuses, ", ")))
	}
	return r.submissions.set(ctx, id, models.Fields{
		"status":     status,
		"updated_at": r.submissions.now(),
	})
}

func (r *ContactRepo) Delete(ctx context.Context, id string) error {
	return r.submissions.remove(ctx, id)
}
