package database

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/footydle/search-backend/internal/models"
	"github.com/footydle/search-backend/internal/text"
)

// SeedRecord is one entry of the JSON seed dataset.
type SeedRecord struct {
	ID             string            `json:"id"`
	Kind           models.EntityKind `json:"kind"`
	DisplayName    string            `json:"display_name"`
	Nationality    string            `json:"nationality"`
	Position       string            `json:"position"`
	PrimaryColor   string            `json:"primary_color"`
	SecondaryColor string            `json:"secondary_color"`
}

// SeedFromFile loads a JSON dataset into the local index, upserting by ID.
// Records without an ID are assigned one. Returns the number of records
// written.
func SeedFromFile(db *gorm.DB, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var records []SeedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}

	return SeedEntities(db, records)
}

// SeedEntities upserts seed records, maintaining the normalized-name column
// the substring queries run against.
func SeedEntities(db *gorm.DB, records []SeedRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	entities := make([]models.Entity, 0, len(records))
	for _, rec := range records {
		if rec.DisplayName == "" {
			continue
		}
		kind := rec.Kind
		if kind != models.KindPlayer && kind != models.KindClub {
			return 0, fmt.Errorf("record %q has unknown kind %q", rec.DisplayName, rec.Kind)
		}
		id := rec.ID
		if id == "" {
			id = uuid.New().String()
		}
		entities = append(entities, models.Entity{
			ID:             id,
			Kind:           kind,
			DisplayName:    rec.DisplayName,
			NameNormalized: text.Normalize(rec.DisplayName),
			Nationality:    rec.Nationality,
			Position:       rec.Position,
			PrimaryColor:   rec.PrimaryColor,
			SecondaryColor: rec.SecondaryColor,
		})
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"kind", "display_name", "name_normalized", "nationality",
			"position", "primary_color", "secondary_color", "updated_at",
		}),
	}).Create(&entities).Error
	if err != nil {
		return 0, fmt.Errorf("failed to upsert entities: %w", err)
	}

	return len(entities), nil
}
