package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/footydle/search-backend/internal/models"
	"github.com/footydle/search-backend/internal/text"
)

// localQueryLimit bounds how many candidates the embedded index hands to the
// scorer; downstream truncation is much tighter.
const localQueryLimit = 20

// LocalEntityStore adapts the embedded sqlite index to the search engine's
// LocalStore interface. Matching runs over the pre-normalized name column so
// it is case- and diacritic-insensitive.
type LocalEntityStore struct {
	db   *gorm.DB
	kind models.EntityKind
}

func NewLocalEntityStore(db *gorm.DB, kind models.EntityKind) *LocalEntityStore {
	return &LocalEntityStore{db: db, kind: kind}
}

func (s *LocalEntityStore) QueryByNameSubstring(ctx context.Context, query string) ([]models.Entity, error) {
	normalized := text.Normalize(query)
	if normalized == "" {
		return nil, nil
	}

	var entities []models.Entity
	err := s.db.WithContext(ctx).
		Where("kind = ? AND name_normalized LIKE ? ESCAPE '\\'", s.kind, "%"+escapeLike(normalized)+"%").
		Limit(localQueryLimit).
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return entities, nil
}

func (s *LocalEntityStore) GetByID(ctx context.Context, id string) (*models.Entity, error) {
	var entity models.Entity
	err := s.db.WithContext(ctx).First(&entity, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// Count reports how many entities of this store's kind are indexed.
func (s *LocalEntityStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Entity{}).Where("kind = ?", s.kind).Count(&n).Error
	return n, err
}

// escapeLike escapes LIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
