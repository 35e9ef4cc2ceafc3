package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/musafir-app/musafir/internal/pkg/models"
)

// GroupRepo reads group listings from the catalog view maintained by the
// group-management service. This service never writes to it.
type GroupRepo struct {
	db *sqlx.DB
}

// NewGroupRepo creates the group catalog repository.
func NewGroupRepo(db *sqlx.DB) *GroupRepo {
	return &GroupRepo{db: db}
}

// ListListings returns every published group listing in catalog order.
func (r *GroupRepo) ListListings(ctx context.Context) ([]*models.GroupListing, error) {
	query := `SELECT id, name, destination, budget, start_date, end_date
		FROM group_listings
		ORDER BY id`

	listings := make([]*models.GroupListing, 0)
	if err := r.db.SelectContext(ctx, &listings, query); err != nil {
		return nil, fmt.Errorf("failed to list group listings: %w", err)
	}
	return listings, nil
}
