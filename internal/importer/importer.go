// Package importer ingests tabular uploads into the items table.
package importer

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/zanovak/katalog/internal/model"
	"github.com/zanovak/katalog/internal/store"
)

// BatchSize is the number of rows inserted concurrently as one unit.
const BatchSize = 100

// Import parses a CSV stream and inserts every valid row as an item.
// The first record is a header naming the columns (name, category,
// color, description, image_url — any order); rows missing a required
// field are silently dropped. Inserts are issued in batches of
// BatchSize, concurrently within a batch, and a batch must complete
// before the next one starts. The first insert failure aborts the
// import; rows from earlier batches stay committed.
//
// Returns the number of rows inserted.
func Import(ctx context.Context, db *sql.DB, r io.Reader) (int, error) {
	items, err := parse(r)
	if err != nil {
		return 0, fmt.Errorf("parsing upload: %w", err)
	}

	imported := 0
	for start := 0; start < len(items); start += BatchSize {
		end := min(start+BatchSize, len(items))

		g, gctx := errgroup.WithContext(ctx)
		for _, item := range items[start:end] {
			g.Go(func() error {
				_, err := store.CreateItem(gctx, db, item)
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return imported, fmt.Errorf("inserting batch: %w", err)
		}
		imported += end - start
	}

	return imported, nil
}

// parse reads the CSV stream into validated item records.
func parse(r io.Reader) ([]model.Item, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// Column positions keyed by header name, so column order in the
	// upload doesn't matter.
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var items []model.Item
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		item := model.Item{
			Name:        field(row, "name"),
			Category:    field(row, "category"),
			Color:       field(row, "color"),
			Description: field(row, "description"),
			ImageURL:    field(row, "image_url"),
		}
		if item.Validate() != nil {
			continue
		}
		items = append(items, item)
	}

	return items, nil
}
