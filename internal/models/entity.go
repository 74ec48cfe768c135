package models

import (
	"time"
)

type EntityKind string

const (
	KindPlayer EntityKind = "player"
	KindClub   EntityKind = "club"
)

// Entity is a searchable record (player or club). The local index keeps a
// pre-normalized copy of the display name so substring queries are
// case- and diacritic-insensitive at the storage layer.
type Entity struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	Kind           EntityKind `json:"kind" gorm:"not null;index"`
	DisplayName    string     `json:"display_name" gorm:"not null"`
	NameNormalized string     `json:"-" gorm:"index"`
	Nationality    string     `json:"nationality"`
	Position       string     `json:"position"`
	PrimaryColor   string     `json:"primary_color"`
	SecondaryColor string     `json:"secondary_color"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type ResultSource string

const (
	SourceLocal  ResultSource = "local"
	SourceRemote ResultSource = "remote"
)

type MatchType string

const (
	MatchName     MatchType = "name"
	MatchNickname MatchType = "nickname"
)

// SearchResult is one ranked hit returned to autocomplete callers.
type SearchResult struct {
	ID             string       `json:"id"`
	Kind           EntityKind   `json:"kind"`
	DisplayName    string       `json:"display_name"`
	Nationality    string       `json:"nationality,omitempty"`
	Position       string       `json:"position,omitempty"`
	PrimaryColor   string       `json:"primary_color,omitempty"`
	SecondaryColor string       `json:"secondary_color,omitempty"`
	Source         ResultSource `json:"source"`
	MatchType      MatchType    `json:"match_type"`
	Relevance      float64      `json:"relevance"`
}
