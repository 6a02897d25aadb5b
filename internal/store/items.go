package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zanovak/katalog/internal/model"
)

const itemColumns = `id, name, category, color, description, image_url, date_created`

// ItemFilter narrows ListItems results. Zero-valued fields are ignored.
type ItemFilter struct {
	ID        int64
	Search    string
	Category  string
	StartDate string
	EndDate   string
}

// CreateItem inserts a new item and returns the stored row.
func CreateItem(ctx context.Context, db *sql.DB, item model.Item) (*model.Item, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO items (name, category, color, description, image_url) VALUES (?, ?, ?, ?, ?)`,
		item.Name, item.Category, item.Color, item.Description, item.ImageURL,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID, or nil if no such item exists.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id,
	)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return &item, nil
}

// ListItems returns one page of items matching the filter, newest first,
// together with the total number of matching rows. Every present filter
// field adds exactly one predicate; the count and page queries share the
// same predicate set. The name search uses SQLite LIKE, so matching is
// ASCII case-insensitive.
func ListItems(ctx context.Context, db *sql.DB, filter ItemFilter, page, limit int) ([]model.Item, int, error) {
	where := "WHERE 1=1"
	var params []any

	if filter.ID != 0 {
		where += " AND id = ?"
		params = append(params, filter.ID)
	}
	if filter.Search != "" {
		where += " AND name LIKE ?"
		params = append(params, "%"+filter.Search+"%")
	}
	if filter.Category != "" {
		where += " AND category = ?"
		params = append(params, filter.Category)
	}
	if filter.StartDate != "" {
		where += " AND date_created >= ?"
		params = append(params, filter.StartDate)
	}
	if filter.EndDate != "" {
		where += " AND date_created <= ?"
		params = append(params, filter.EndDate)
	}

	var total int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM items "+where, params...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("counting items: %w", err)
	}

	offset := (page - 1) * limit
	rows, err := db.QueryContext(ctx,
		"SELECT "+itemColumns+" FROM items "+where+
			" ORDER BY date_created DESC, id DESC LIMIT ? OFFSET ?",
		append(params, limit, offset)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}

// UpdateItem replaces an item's mutable fields.
func UpdateItem(ctx context.Context, db *sql.DB, id int64, item model.Item) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET name = ?, category = ?, color = ?, description = ?, image_url = ? WHERE id = ?`,
		item.Name, item.Category, item.Color, item.Description, item.ImageURL, id,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	return nil
}

// DeleteItem removes an item. Deleting an unknown id is not an error.
func DeleteItem(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (model.Item, error) {
	var item model.Item
	var description, imageURL sql.NullString
	err := row.Scan(&item.ID, &item.Name, &item.Category, &item.Color,
		&description, &imageURL, &item.DateCreated)
	if err != nil {
		return model.Item{}, err
	}
	item.Description = description.String
	item.ImageURL = imageURL.String
	return item, nil
}
