package model

import (
	"errors"
	"strings"
	"time"
)

// Item represents a single catalog entry.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Color       string    `json:"color"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	DateCreated time.Time `json:"date_created"`
}

// Validate checks that all required fields are present.
func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" ||
		strings.TrimSpace(i.Category) == "" ||
		strings.TrimSpace(i.Color) == "" {
		return errors.New("name, category, and color are required")
	}
	return nil
}

// ItemPatch is a partial item update. Nil fields are left unchanged.
type ItemPatch struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Color       *string `json:"color"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// Apply merges the patch onto an existing item and returns the result.
// Only fields present in the patch are replaced.
func (p ItemPatch) Apply(item Item) Item {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Color != nil {
		item.Color = *p.Color
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.ImageURL != nil {
		item.ImageURL = *p.ImageURL
	}
	return item
}
