// Package catalog holds the dataset catalog and answers filter
// queries against it. The catalog is assembled once at startup from a
// base list and a location-specific list and is immutable afterwards.
package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"nestcrm-web/internal/models"
)

//go:embed seed/base.json seed/locations.json
var seedFS embed.FS

const (
	baseSeed     = "seed/base.json"
	locationSeed = "seed/locations.json"
)

// Store is the in-memory catalog. Reads are concurrent-safe; the
// dataset list never changes after Load succeeds.
type Store struct {
	mu       sync.RWMutex
	datasets []models.Dataset
	loadedAt time.Time
	logger   *slog.Logger
}

func NewStore() *Store {
	return &Store{
		datasets: []models.Dataset{},
		logger:   slog.Default(),
	}
}

// SetData replaces the catalog contents. Validation still applies;
// used by tests and by Load internally.
func (s *Store) SetData(datasets []models.Dataset) error {
	if err := validate(datasets); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets = datasets
	s.loadedAt = time.Now()
	return nil
}

// Load assembles the catalog: the base list and the location-specific
// list are read concurrently, then concatenated base-first. When a
// source path is empty the embedded seed document is used.
func (s *Store) Load(ctx context.Context, basePath, locationPath string) error {
	start := time.Now()

	var base, locations []models.Dataset

	var g errgroup.Group
	g.Go(func() error {
		var err error
		base, err = readSource(ctx, basePath, baseSeed)
		if err != nil {
			return fmt.Errorf("base catalog: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		locations, err = readSource(ctx, locationPath, locationSeed)
		if err != nil {
			return fmt.Errorf("location catalog: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	combined := make([]models.Dataset, 0, len(base)+len(locations))
	combined = append(combined, base...)
	combined = append(combined, locations...)

	if err := s.SetData(combined); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	s.logger.Info("catalog loaded",
		"base", len(base),
		"locations", len(locations),
		"duration", time.Since(start),
	)
	return nil
}

func readSource(ctx context.Context, path, fallback string) ([]models.Dataset, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var (
		raw []byte
		err error
	)
	if path != "" {
		raw, err = os.ReadFile(path)
	} else {
		raw, err = seedFS.ReadFile(fallback)
	}
	if err != nil {
		return nil, err
	}

	var datasets []models.Dataset
	if err := json.Unmarshal(raw, &datasets); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return datasets, nil
}

func validate(datasets []models.Dataset) error {
	seen := make(map[int]struct{}, len(datasets))
	for _, d := range datasets {
		if _, dup := seen[d.ID]; dup {
			return fmt.Errorf("duplicate dataset id %d", d.ID)
		}
		seen[d.ID] = struct{}{}

		if d.Price < 0 {
			return fmt.Errorf("dataset %d: negative price %d", d.ID, d.Price)
		}
		if d.OriginalPrice != 0 && d.OriginalPrice < d.Price {
			return fmt.Errorf("dataset %d: original price %d below price %d", d.ID, d.OriginalPrice, d.Price)
		}
		if d.Title == "" {
			return fmt.Errorf("dataset %d: empty title", d.ID)
		}
	}
	return nil
}

// Datasets returns the full catalog in authoring order.
func (s *Store) Datasets() []models.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.datasets
}

// Get looks up a dataset by id.
func (s *Store) Get(id int) (models.Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.datasets {
		if d.ID == id {
			return d, true
		}
	}
	return models.Dataset{}, false
}

// Filter applies state to the catalog and returns the matching
// datasets in catalog order.
func (s *Store) Filter(state models.FilterState) []models.Dataset {
	return Filter(s.Datasets(), state)
}

// Stats reports catalog shape for the admin endpoint.
func (s *Store) Stats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byCategory := make(map[models.Category]int)
	for _, d := range s.datasets {
		byCategory[d.Category]++
	}

	return map[string]any{
		"dataset_count": len(s.datasets),
		"by_category":   byCategory,
		"loaded_at":     s.loadedAt,
	}
}
