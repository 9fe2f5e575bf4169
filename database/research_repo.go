package database

import (
	"context"
	"time"

	"github.com/rpupo63/portfolio-backend/models"
)

type ResearchRepo struct {
	research collection[models.ResearchProject]
}

func NewResearchRepo(store Store, clock func() time.Time) *ResearchRepo {
	return &ResearchRepo{
		research: newCollection[models.ResearchProject](store, clock, ResearchProjectsCollection, "Research project", "created_at"),
	}
}

func (r *ResearchRepo) FindAll(ctx context.Context) ([]models.ResearchProject, error) {
	return r.research.list(ctx, Filter{})
}

func (r *ResearchRepo) FindByID(ctx context.Context, id string) (*models.ResearchProject, error) {
	return r.research.get(ctx, id)
}

func (r *ResearchRepo) Add(ctx context.Context, in models.ResearchProjectInput) (*models.ResearchProject, error) {
	project := models.NewResearchProject(r.research.newID(), in, r.research.now())
	if err := r.research.insert(ctx, project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ResearchRepo) Update(ctx context.Context, id string, patch models.ResearchProjectPatch) (*models.ResearchProject, error) {
	return r.research.patch(ctx, id, patch.Fields())
}

func (r *ResearchRepo) Delete(ctx context.Context, id string) error {
	return r.research.remove(ctx, id)
}
