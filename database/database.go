package database

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type Database struct {
	store           Store
	projectRepo     *ProjectRepo
	researchRepo    *ResearchRepo
	serviceRepo     *ServiceRepo
	testimonialRepo *TestimonialRepo
	aboutRepo       *AboutRepo
	contactRepo     *ContactRepo
	pageViewRepo    *PageViewRepo
}

type options struct {
	clock func() time.Time
}

// Option customises New.
type Option func(*options)

// WithClock sets the source of creation and update timestamps.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// New initializes a new Database struct with each repository sharing one store handle
func New(store Store, opts ...Option) Database {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return Database{
		store:           store,
		projectRepo:     NewProjectRepo(store, o.clock),
		researchRepo:    NewResearchRepo(store, o.clock),
		serviceRepo:     NewServiceRepo(store, o.clock),
		testimonialRepo: NewTestimonialRepo(store, o.clock),
		aboutRepo:       NewAboutRepo(store, o.clock),
		contactRepo:     NewContactRepo(store, o.clock),
		pageViewRepo:    NewPageViewRepo(store, o.clock),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ResearchRepo() *ResearchRepo {
	return d.researchRepo
}

func (d Database) ServiceRepo() *ServiceRepo {
	return d.serviceRepo
}

func (d Database) TestimonialRepo() *TestimonialRepo {
	return d.testimonialRepo
}

func (d Database) AboutRepo() *AboutRepo {
	return d.aboutRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) PageViewRepo() *PageViewRepo {
	return d.pageViewRepo
}

// index is a secondary index created at bootstrap.
type index struct {
	collection string
	field      string
}

var indexes = []index{
	{ProjectsCollection, "category"},
	{ProjectsCollection, "created_at"},
	{ResearchProjectsCollection, "status"},
	{ResearchProjectsCollection, "created_at"},
	{ServicesCollection, "created_at"},
	{TestimonialsCollection, "approved"},
	{TestimonialsCollection, "created_at"},
	{ContactSubmissionsCollection, "submitted_at"},
	{ContactSubmissionsCollection, "status"},
	{PageViewsCollection, "timestamp"},
}

// Bootstrap creates collections and indexes and seeds the default about
// information when it is missing. It must run before requests are served and
// is safe to run repeatedly.
func (d Database) Bootstrap(ctx context.Context) error {
	if err := d.store.EnsureCollection(ctx, AboutInfoCollection); err != nil {
		return err
	}
	for _, idx := range indexes {
		if err := d.store.EnsureIndex(ctx, idx.collection, idx.field); err != nil {
			return err
		}
	}

	about, err := DefaultAboutInfo()
	if err != nil {
		return err
	}
	created, err := d.aboutRepo.EnsureDefault(ctx, about)
	if err != nil {
		return err
	}
	if created {
		log.Info().Msg("Created default about information")
	}

	log.Info().Msg("Database initialized successfully")
	return nil
}

// Close releases the store connection.
func (d Database) Close() error {
	return d.store.Close()
}
