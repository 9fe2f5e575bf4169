package database

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rpupo63/portfolio-backend/models"
)

//go:embed seed.yaml
var seedYAML []byte

// SeedData is the sample content of a fresh site.
type SeedData struct {
	About        models.AboutInfo              `json:"about"`
	Projects     []models.ProjectInput         `json:"projects"`
	Research     []models.ResearchProjectInput `json:"research"`
	Services     []models.ServiceItemInput     `json:"services"`
	Testimonials []seedTestimonial             `json:"testimonials"`
}

type seedTestimonial struct {
	models.TestimonialInput
	Approved bool `json:"approved"`
}

// SeedResult counts the records inserted per collection. A collection that
// already had records is reported with -1.
type SeedResult map[string]int

// LoadSeedData parses seed content. YAML keys use the JSON field names.
func LoadSeedData(raw []byte) (SeedData, error) {
	var data SeedData
	if err := decodeYAML(raw, &data); err != nil {
		return SeedData{}, fmt.Errorf("parse seed data: %w", err)
	}
	return data, nil
}

// DefaultSeedData returns the embedded sample content.
func DefaultSeedData() (SeedData, error) {
	return LoadSeedData(seedYAML)
}

// DefaultAboutInfo returns the about information created at bootstrap.
func DefaultAboutInfo() (models.AboutInfo, error) {
	data, err := DefaultSeedData()
	if err != nil {
		return models.AboutInfo{}, err
	}
	return data.About, nil
}

// LoadAboutInfoFile reads about information from a YAML file with the same
// layout as the `about` section of the seed data.
func LoadAboutInfoFile(path string) (models.AboutInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.AboutInfo{}, err
	}
	var about models.AboutInfo
	if err := decodeYAML(raw, &about); err != nil {
		return models.AboutInfo{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return about, nil
}

// Seed inserts data into every seeded collection that is still empty.
// Collections are seeded concurrently and each insert is independent, so a
// failure can leave some collections populated.
func (d Database) Seed(ctx context.Context, data SeedData) (SeedResult, error) {
	now := d.projectRepo.projects.now()
	// Earlier entries in the seed file get later timestamps so they list first.
	stamp := func(i int) time.Time {
		return now.Add(-time.Duration(i) * time.Second)
	}

	projects := make([]models.Project, 0, len(data.Projects))
	for i, in := range data.Projects {
		projects = append(projects, models.NewProject(d.projectRepo.projects.newID(), in, stamp(i)))
	}
	research := make([]models.ResearchProject, 0, len(data.Research))
	for i, in := range data.Research {
		research = append(research, models.NewResearchProject(d.researchRepo.research.newID(), in, stamp(i)))
	}
	services := make([]models.ServiceItem, 0, len(data.Services))
	for i, in := range data.Services {
		services = append(services, models.NewServiceItem(d.serviceRepo.services.newID(), in, stamp(i)))
	}
	testimonials := make([]models.Testimonial, 0, len(data.Testimonials))
	for i, in := range data.Testimonials {
		t := models.NewTestimonial(d.testimonialRepo.testimonials.newID(), in.TestimonialInput, stamp(i))
		t.Approved = in.Approved
		testimonials = append(testimonials, t)
	}

	counts := make([]int, 4)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts[0], err = seedCollection(gctx, d.projectRepo.projects, projects)
		return err
	})
	g.Go(func() (err error) {
		counts[1], err = seedCollection(gctx, d.researchRepo.research, research)
		return err
	})
	g.Go(func() (err error) {
		counts[2], err = seedCollection(gctx, d.serviceRepo.services, services)
		return err
	})
	g.Go(func() (err error) {
		counts[3], err = seedCollection(gctx, d.testimonialRepo.testimonials, testimonials)
		return err
	})
	err := g.Wait()

	return SeedResult{
		ProjectsCollection:         counts[0],
		ResearchProjectsCollection: counts[1],
		ServicesCollection:         counts[2],
		TestimonialsCollection:     counts[3],
	}, err
}

func seedCollection[T any](ctx context.Context, c collection[T], items []T) (int, error) {
	n, err := c.count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Info().Str("collection", c.name).Int64("existing", n).Msg("Collection already has records, skipping")
		return -1, nil
	}
	inserted, err := c.insertMany(ctx, items)
	if err != nil {
		return inserted, err
	}
	log.Info().Str("collection", c.name).Int("inserted", inserted).Msg("Seeded collection")
	return inserted, nil
}

// decodeYAML decodes YAML into out through its JSON field names, so seed files
// need no tags beyond the ones the API already uses.
func decodeYAML(raw []byte, out any) error {
	var node any
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return err
	}
	asJSON, err := json.Marshal(node)
	if err != nil {
		return err
	}
	return json.Unmarshal(asJSON, out)
}
