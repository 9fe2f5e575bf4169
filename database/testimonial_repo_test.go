package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

func testimonialInput(name string) models.TestimonialInput {
	return models.TestimonialInput{
		Name:    name,
		Role:    "Director",
		Text:    "Great work",
		Company: "Lulu Group",
	}
}

func TestTestimonialRepoApprovalFlow(t *testing.T) {
	ctx := context.Background()
	db, _, _ := newTestDatabase(t)
	repo := db.TestimonialRepo()

	created, err := repo.Add(ctx, testimonialInput("Sarah"))
	require.NoError(t, err)
	assert.False(t, created.Approved)

	approved, err := repo.FindAll(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, approved)

	all, err := repo.FindAll(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, repo.Approve(ctx, created.ID))

	approved, err = repo.FindAll(ctx, true)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.True(t, approved[0].Approved)
	assert.Equal(t, created.CreatedAt, approved[0].CreatedAt)
}

func TestTestimonialRepoUpdate(t *testing.T) {
	ctx := context.Background()
	db, _, _ := newTestDatabase(t)
	repo := db.TestimonialRepo()

	created, err := repo.Add(ctx, testimonialInput("Priya"))
	require.NoError(t, err)

	yes := true
	_, err = repo.Update(ctx, created.ID, models.TestimonialPatch{Approved: &yes})
	require.Error(t, err)
	assert.True(t, errs.IsInvalidInput(err))

	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, stored.Approved)

	updated, err := repo.Update(ctx, created.ID, models.TestimonialPatch{Text: strPtr("Even better")})
	require.NoError(t, err)
	assert.Equal(t, "Even better", updated.Text)
	assert.Equal(t, created.Name, updated.Name)

	require.NoError(t, repo.Approve(ctx, created.ID))
	no := false
	revoked, err := repo.Update(ctx, created.ID, models.TestimonialPatch{Approved: &no})
	require.NoError(t, err)
	assert.False(t, revoked.Approved)
}

func TestTestimonialRepoNotFound(t *testing.T) {
	ctx := context.Background()
	db, _, _ := newTestDatabase(t)
	repo := db.TestimonialRepo()

	err := repo.Approve(ctx, "missing")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
	assert.Equal(t, "Testimonial not found", err.Error())

	assert.True(t, errs.IsNotFound(repo.Delete(ctx, "missing")))
}
