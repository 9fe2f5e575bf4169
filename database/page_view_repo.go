package database

import (
	"context"
	"time"

	"github.com/rpupo63/portfolio-backend/models"
)

// PageViewRepo records analytics hits. There is no read path.
type PageViewRepo struct {
	views collection[models.PageView]
}

func NewPageViewRepo(store Store, clock func() time.Time) *PageViewRepo {
	return &PageViewRepo{
		views: newCollection[models.PageView](store, clock, PageViewsCollection, "Page view", "timestamp"),
	}
}

// Record stores a page view and returns its id.
func (r *PageViewRepo) Record(ctx context.Context, in models.PageViewInput, ipAddress *string) (string, error) {
	view := models.PageView{
		ID:        r.views.newID(),
		Page:      in.Page,
		UserAgent: in.UserAgent,
		IPAddress: ipAddress,
		Referrer:  in.Referrer,
		Timestamp: r.views.now(),
	}
	if err := r.views.insert(ctx, view); err != nil {
		return "", err
	}
	return view.ID, nil
}
