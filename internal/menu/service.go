package menu

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrStorageDisabled = errors.New("image storage not configured")

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
	catalog *Catalog
}

func NewService(repo Repository, storage Storage, catalog *Catalog) *Service {
	return &Service{repo: repo, storage: storage, catalog: catalog}
}

func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// --------------------------------------------------
// Catalog snapshot
// --------------------------------------------------

// Reload replaces the storefront snapshot with the backend catalog.
// On failure the previous snapshot stays in place.
func (s *Service) Reload(ctx context.Context) error {
	dishes, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	s.catalog.Replace(dishes)
	return nil
}

// SeedDefaults fills an empty backend with the house menu.
func (s *Service) SeedDefaults(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	seeded := 0
	for _, d := range DefaultDishes() {
		dish := d
		if err := s.repo.Create(ctx, &dish); err != nil {
			return seeded, fmt.Errorf("seed %s: %w", d.ID, err)
		}
		seeded++
	}
	return seeded, nil
}

func (s *Service) reloadAfterWrite(ctx context.Context) {
	if err := s.Reload(ctx); err != nil {
		log.Warn().Err(err).Msg("catalog reload after admin write failed")
	}
}

// --------------------------------------------------
// Admin CRUD
// --------------------------------------------------

// ListForAdmin returns every dish grouped by category.
func (s *Service) ListForAdmin(ctx context.Context) ([]Dish, error) {
	dishes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(dishes, func(i, j int) bool {
		return dishes[i].Category < dishes[j].Category
	})
	return dishes, nil
}

func (s *Service) CreateDish(ctx context.Context, in DishInput) (*Dish, error) {
	if err := ValidateDish(in); err != nil {
		return nil, err
	}

	dish := &Dish{ID: uuid.New().String()}
	in.apply(dish)

	if err := s.repo.Create(ctx, dish); err != nil {
		return nil, err
	}

	s.reloadAfterWrite(ctx)
	return dish, nil
}

func (s *Service) UpdateDish(ctx context.Context, id string, in DishInput) (*Dish, error) {
	if err := ValidateDish(in); err != nil {
		return nil, err
	}

	dish := &Dish{ID: id}
	in.apply(dish)

	if err := s.repo.Update(ctx, dish); err != nil {
		return nil, err
	}

	s.reloadAfterWrite(ctx)
	return dish, nil
}

func (s *Service) DeleteDish(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.reloadAfterWrite(ctx)
	return nil
}

// --------------------------------------------------
// Dish image upload
// --------------------------------------------------
func (s *Service) UploadImage(
	ctx context.Context,
	dishID string,
	file multipart.File,
	filename string,
) (string, error) {

	if s.storage == nil {
		return "", ErrStorageDisabled
	}

	if _, err := s.repo.Get(ctx, dishID); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf(
		"menu-items/%s/%s%s",
		dishID,
		uuid.New().String(),
		ext,
	)

	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetImage(ctx, dishID, url); err != nil {
		return "", err
	}

	s.reloadAfterWrite(ctx)
	return url, nil
}
