package repo

import (
	"context"
	"database/sql"

	"linkstash/internal/models"
)

// ==========================
// LinkRepo
// ==========================
// Every operation takes the owner's id and filters by it, so one user's
// links are invisible to every other user.
type LinkRepo struct {
	DB *sql.DB
}

// ==========================
// Constructor
// ==========================
func NewLinkRepo(db *sql.DB) *LinkRepo {
	return &LinkRepo{DB: db}
}

// ==========================
// Create Link
// ==========================
func (r *LinkRepo) Create(ctx context.Context, ownerID int, title, url string) (*models.Link, error) {
	query := `
		INSERT INTO links (owner_id, title, url)
		VALUES ($1, $2, $3)
		RETURNING id, owner_id, title, url, created_at
	`

	link := &models.Link{}

	err := r.DB.QueryRowContext(ctx, query, ownerID, title, url).
		Scan(&link.ID, &link.OwnerID, &link.Title, &link.URL, &link.CreatedAt)

	if err != nil {
		return nil, err
	}

	return link, nil
}

// ==========================
// List By Owner
// ==========================
func (r *LinkRepo) ListByOwner(ctx context.Context, ownerID int) ([]models.Link, error) {
	query := `
		SELECT id, owner_id, title, url, created_at
		FROM links
		WHERE owner_id = $1
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []models.Link{}
	for rows.Next() {
		var l models.Link
		if err := rows.Scan(&l.ID, &l.OwnerID, &l.Title, &l.URL, &l.CreatedAt); err != nil {
			return nil, err
		}
		links = append(links, l)
	}

	return links, rows.Err()
}

// ==========================
// Delete Link
// ==========================
// Delete removes the link only when it belongs to ownerID. A link owned by
// someone else and a link that does not exist both come back as ErrNotFound,
// so a caller cannot probe for other users' link ids.
func (r *LinkRepo) Delete(ctx context.Context, ownerID, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM links WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
