package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/ligadavila/copa-engine/internal/domain/match"
	qb "github.com/ligadavila/copa-engine/internal/platform/querybuilder"
)

var matchColumns = []string{
	"id", "match_no", "group_id", "home_team_reg_id", "away_team_reg_id",
	"scheduled_at", "actual_start", "actual_finish", "status", "venue_id",
}

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns...).
		From("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, crerr.Wrap(err, "build select match query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, crerr.Wrap(err, "select match")
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) ListPlayedByGroup(ctx context.Context, groupID string) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).
		From("matches").
		Where(
			qb.Eq("group_id", groupID),
			qb.Gt("status", int(match.StatusScheduled)),
		).
		OrderBy("match_no", "id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select group matches query")
	}

	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) ListPlayedByTeamRegistration(ctx context.Context, teamRegID string) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).
		From("matches").
		Where(
			qb.Or(
				qb.Eq("home_team_reg_id", teamRegID),
				qb.Eq("away_team_reg_id", teamRegID),
			),
			qb.Gt("status", int(match.StatusScheduled)),
		).
		OrderBy("match_no", "id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select registration matches query")
	}

	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	query, args, err := qb.Update("matches").
		Set("status", int(m.Status)).
		Set("actual_start", ptrNullTime(m.ActualStart)).
		Set("actual_finish", ptrNullTime(m.ActualFinish)).
		Where(qb.Eq("id", m.ID)).
		ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build update match query")
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return crerr.Wrap(err, "update match")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return crerr.Wrap(err, "update match rows affected")
	}
	if affected == 0 {
		return crerr.Newf("match %s does not exist", m.ID)
	}
	return nil
}

func (r *MatchRepository) selectMatches(ctx context.Context, query string, args []any) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select matches")
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}
