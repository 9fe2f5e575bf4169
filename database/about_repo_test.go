package database

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

func TestBootstrapCreatesDefaultAboutInfo(t *testing.T) {
	ctx := context.Background()
	db, store, _ := newTestDatabase(t)

	about, err := db.AboutRepo().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.AboutInfoID, about.ID)
	assert.True(t, strings.HasPrefix(about.Story, "From NIFT to leading sustainable innovation at Lulu Group"))
	assert.Len(t, about.Competencies, 6)
	assert.Len(t, about.Experience, 3)

	// Bootstrap is idempotent and keeps edits.
	_, err = db.AboutRepo().Update(ctx, models.AboutInfoPatch{Story: strPtr("Edited")})
	require.NoError(t, err)
	require.NoError(t, db.Bootstrap(ctx))

	n, err := store.CountDocuments(ctx, AboutInfoCollection, Filter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	about, err = db.AboutRepo().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Edited", about.Story)
}

func TestAboutRepoUpdateMerges(t *testing.T) {
	ctx := context.Background()
	db, _, clock := newTestDatabase(t)

	before, err := db.AboutRepo().Get(ctx)
	require.NoError(t, err)

	clock.Advance(time.Hour)
	credentials := []string{"PhD"}
	after, err := db.AboutRepo().Update(ctx, models.AboutInfoPatch{Credentials: &credentials})
	require.NoError(t, err)
	assert.Equal(t, credentials, after.Credentials)
	assert.Equal(t, before.Story, after.Story)
	assert.Equal(t, before.Competencies, after.Competencies)
	assert.Equal(t, before.UpdatedAt.Add(time.Hour), after.UpdatedAt)
}

func TestAboutRepoGetBeforeBootstrap(t *testing.T) {
	repo := NewAboutRepo(NewMemoryStore(), time.Now)

	_, err := repo.Get(context.Background())
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
	assert.Equal(t, "About information not found", err.Error())
}
