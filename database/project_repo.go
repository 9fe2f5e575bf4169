package database

import (
	"context"
	"time"

	"github.com/rpupo63/portfolio-backend/models"
)

type ProjectRepo struct {
	projects collection[models.Project]
}

func NewProjectRepo(store Store, clock func() time.Time) *ProjectRepo {
	return &ProjectRepo{
		projects: newCollection[models.Project](store, clock, ProjectsCollection, "Project", "created_at"),
	}
}

// FindAll returns projects newest first. category is a slug such as
// "3d-design"; empty or "all" disables the filter.
func (r *ProjectRepo) FindAll(ctx context.Context, category string) ([]models.Project, error) {
	filter := Filter{}
	if category != "" && category != "all" {
		filter["category"] = models.CategoryLabel(category)
	}
	return r.projects.list(ctx, filter)
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(ctx context.Context, id string) (*models.Project, error) {
	return r.projects.get(ctx, id)
}

// Add stores a new project and returns it
func (r *ProjectRepo) Add(ctx context.Context, in models.ProjectInput) (*models.Project, error) {
	project := models.NewProject(r.projects.newID(), in, r.projects.now())
	if err := r.projects.insert(ctx, project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Update merges the fields present in patch into the project
func (r *ProjectRepo) Update(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error) {
	return r.projects.patch(ctx, id, patch.Fields())
}

// Delete removes a project by id
func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	return r.projects.remove(ctx, id)
}
