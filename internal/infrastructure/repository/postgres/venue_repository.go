package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/ligadavila/copa-engine/internal/domain/match"
	qb "github.com/ligadavila/copa-engine/internal/platform/querybuilder"
)

type VenueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) GetVenueByID(ctx context.Context, venueID string) (match.Venue, bool, error) {
	query, args, err := qb.Select("id", "name", "address").
		From("venues").
		Where(qb.Eq("id", venueID)).
		ToSQL()
	if err != nil {
		return match.Venue{}, false, crerr.Wrap(err, "build select venue query")
	}

	var row venueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Venue{}, false, nil
		}
		return match.Venue{}, false, crerr.Wrap(err, "select venue")
	}

	return match.Venue{ID: row.ID, Name: row.Name, Address: row.Address}, true, nil
}
