package database

import (
	"context"
	"time"

	"github.com/rpupo63/portfolio-backend/models"
)

type ServiceRepo struct {
	services collection[models.ServiceItem]
}

func NewServiceRepo(store Store, clock func() time.Time) *ServiceRepo {
	return &ServiceRepo{
		services: newCollection[models.ServiceItem](store, clock, ServicesCollection, "Service", "created_at"),
	}
}

func (r *ServiceRepo) FindAll(ctx context.Context) ([]models.ServiceItem, error) {
	return r.services.list(ctx, Filter{})
}

func (r *ServiceRepo) FindByID(ctx context.Context, id string) (*models.ServiceItem, error) {
	return r.services.get(ctx, id)
}

func (r *ServiceRepo) Add(ctx context.Context, in models.ServiceItemInput) (*models.ServiceItem, error) {
	service := models.NewServiceItem(r.services.newID(), in, r.services.now())
	if err := r.services.insert(ctx, service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepo) Update(ctx context.Context, id string, patch models.ServiceItemPatch) (*models.ServiceItem, error) {
	return r.services.patch(ctx, id, patch.Fields())
}

func (r *ServiceRepo) Delete(ctx context.Context, id string) error {
	return r.services.remove(ctx, id)
}
