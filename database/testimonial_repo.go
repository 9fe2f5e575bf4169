package database

import (
	"context"
	"time"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

type TestimonialRepo struct {
	testimonials collection[models.Testimonial]
}

func NewTestimonialRepo(store Store, clock func() time.Time) *TestimonialRepo {
	return &TestimonialRepo{
		testimonials: newCollection[models.Testimonial](store, clock, TestimonialsCollection, "Testimonial", "created_at"),
	}
}

// FindAll returns testimonials newest first, only approved ones unless
// approvedOnly is false.
func (r *TestimonialRepo) FindAll(ctx context.Context, approvedOnly bool) ([]models.Testimonial, error) {
	filter := Filter{}
	if approvedOnly {
		filter["approved"] = true
	}
	return r.testimonials.list(ctx, filter)
}

func (r *TestimonialRepo) FindByID(ctx context.Context, id string) (*models.Testimonial, error) {
	return r.testimonials.get(ctx, id)
}

// Add stores a new testimonial. It always starts unapproved.
func (r *TestimonialRepo) Add(ctx context.Context, in models.TestimonialInput) (*models.Testimonial, error) {
	testimonial := models.NewTestimonial(r.testimonials.newID(), in, r.testimonials.now())
	if err := r.testimonials.insert(ctx, testimonial); err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// Update merges patch into the testimonial. Testimonials carry no update
// timestamp. Setting approved=true is reserved for Approve.
func (r *TestimonialRepo) Update(ctx context.Context, id string, patch models.TestimonialPatch) (*models.Testimonial, error) {
	if patch.Approved != nil && *patch.Approved {
		return nil, errs.NewInvalidInputError("approved", "testimonials are approved through the approve operation")
	}
	if err := r.testimonials.set(ctx, id, patch.Fields()); err != nil {
		return nil, err
	}
	return r.testimonials.get(ctx, id)
}

// Approve marks the testimonial as approved.
func (r *TestimonialRepo) Approve(ctx context.Context, id string) error {
	return r.testimonials.set(ctx, id, models.Fields{"approved": true})
}

func (r *TestimonialRepo) Delete(ctx context.Context, id string) error {
	return r.testimonials.remove(ctx, id)
}
