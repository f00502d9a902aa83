package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/ligadavila/copa-engine/internal/domain/team"
	qb "github.com/ligadavila/copa-engine/internal/platform/querybuilder"
)

type teamTableModel struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Short string `db:"short"`
	Genre string `db:"genre"`
}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("id", "name", "short", "genre").
		From("teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, crerr.Wrap(err, "build select team query")
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, crerr.Wrap(err, "select team")
	}

	return team.Team{ID: row.ID, Name: row.Name, Short: row.Short, Genre: row.Genre}, true, nil
}
