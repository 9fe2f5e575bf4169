package database

import (
	"context"
	"time"

	"github.com/rpupo63/portfolio-backend/models"
)

// AboutRepo holds the single AboutInfo record.
type AboutRepo struct {
	about collection[models.AboutInfo]
}

func NewAboutRepo(store Store, clock func() time.Time) *AboutRepo {
	return &AboutRepo{
		about: newCollection[models.AboutInfo](store, clock, AboutInfoCollection, "About information", "updated_at"),
	}
}

// Get returns the about information. It is NotFound only before bootstrap.
func (r *AboutRepo) Get(ctx context.Context) (*models.AboutInfo, error) {
	return r.about.get(ctx, models.AboutInfoID)
}

// Update merges patch into the about information.
func (r *AboutRepo) Update(ctx context.Context, patch models.AboutInfoPatch) (*models.AboutInfo, error) {
	return r.about.patch(ctx, models.AboutInfoID, patch.Fields())
}

// EnsureDefault creates the record from def when none exists yet and reports
// whether it did.
func (r *AboutRepo) EnsureDefault(ctx context.Context, def models.AboutInfo) (bool, error) {
	doc, err := r.about.store.FindOne(ctx, AboutInfoCollection, ByID(models.AboutInfoID))
	if err != nil {
		return false, err
	}
	if doc != nil {
		return false, nil
	}
	def.ID = models.AboutInfoID
	def.UpdatedAt = r.about.now()
	if err := r.about.insert(ctx, def); err != nil {
		return false, err
	}
	return true, nil
}
