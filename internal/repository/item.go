package repository

import (
	"context"
	"database/sql"

	"github.com/inkwell/inkwell-api/internal/model"
)

// ItemRepository handles item persistence operations.
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new ItemRepository.
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create inserts a new item. The caller supplies the generated ID.
func (r *ItemRepository) Create(ctx context.Context, item *model.Item) error {
	query := `INSERT INTO items (id, name, description) VALUES (?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query, item.ID, item.Name, item.Description); err != nil {
		return err
	}

	return r.db.QueryRowContext(ctx,
		`SELECT created_at, updated_at FROM items WHERE id = ?`, item.ID,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
}

// List retrieves all items ordered by creation time.
func (r *ItemRepository) List(ctx context.Context) ([]model.Item, error) {
	query := `SELECT id, name, description, created_at, updated_at
		FROM items ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var i model.Item
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}

	return items, rows.Err()
}
