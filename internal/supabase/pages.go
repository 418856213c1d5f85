package supabase

import (
	"database/sql"
	"errors"
	"fmt"

	"watch-atelier-backend/internal/customizer"
	"watch-atelier-backend/internal/models"
)

func (d *DatabaseClient) GetPage(pageID string) (*models.Page, error) {
	var page models.Page
	err := d.db.QueryRow(`
		SELECT id, title, content, updated_at FROM pages WHERE id = $1
	`, pageID).Scan(&page.ID, &page.Title, &page.Content, &page.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &customizer.NotFoundError{Resource: "page", Key: pageID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	return &page, nil
}

// UpsertPage creates the page on first edit, updates it afterwards.
func (d *DatabaseClient) UpsertPage(pageID, title, content string) (*models.Page, error) {
	var page models.Page
	err := d.db.QueryRow(`
		INSERT INTO pages (id, title, content)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET title = $2, content = $3, updated_at = now()
		RETURNING id, title, content, updated_at
	`, pageID, title, content).Scan(&page.ID, &page.Title, &page.Content, &page.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert page: %w", err)
	}
	return &page, nil
}
