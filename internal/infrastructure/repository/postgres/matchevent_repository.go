package postgres

import (
	"context"
	"database/sql"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/ligadavila/copa-engine/internal/domain/matchevent"
	qb "github.com/ligadavila/copa-engine/internal/platform/querybuilder"
)

type matchEventTableModel struct {
	ID                   string         `db:"id"`
	Seq                  int64          `db:"seq"`
	MatchID              string         `db:"match_id"`
	EventType            string         `db:"event_type"`
	TeamRegistrationID   string         `db:"team_registration_id"`
	PlayerRegistrationID sql.NullString `db:"player_registration_id"`
	RecordedAt           time.Time      `db:"recorded_at"`
	MatchtimeMinutes     float64        `db:"matchtime_minutes"`
}

var matchEventColumns = []string{
	"id", "seq", "match_id", "event_type", "team_registration_id",
	"player_registration_id", "recorded_at", "matchtime_minutes",
}

// MatchEventRepository is the append-only event log. Rows are never
// updated or deleted; the seq bigserial doubles as the log generation.
type MatchEventRepository struct {
	db *sqlx.DB
}

func NewMatchEventRepository(db *sqlx.DB) *MatchEventRepository {
	return &MatchEventRepository{db: db}
}

func (r *MatchEventRepository) ListByMatch(ctx context.Context, matchID string) ([]matchevent.Event, error) {
	query, args, err := qb.Select(matchEventColumns...).
		From("match_events").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("seq").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select match events query")
	}

	return r.selectEvents(ctx, query, args)
}

func (r *MatchEventRepository) ListByPlayerRegistration(ctx context.Context, playerRegID string) ([]matchevent.Event, error) {
	query, args, err := qb.Select(matchEventColumns...).
		From("match_events").
		Where(qb.Eq("player_registration_id", playerRegID)).
		OrderBy("seq").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select player events query")
	}

	return r.selectEvents(ctx, query, args)
}

func (r *MatchEventRepository) Append(ctx context.Context, e matchevent.Event) error {
	query, args, err := qb.InsertInto("match_events").
		Columns("id", "match_id", "event_type", "team_registration_id", "player_registration_id", "recorded_at", "matchtime_minutes").
		Values(e.ID, e.MatchID, string(e.Type), e.TeamRegistrationID, nullString(e.PlayerRegistrationID), e.Timestamp, e.MatchtimeMinutes).
		ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build insert match event query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrap(err, "insert match event")
	}
	return nil
}

func (r *MatchEventRepository) Generation(ctx context.Context) (uint64, error) {
	query, args, err := qb.Select("COALESCE(MAX(seq), 0) AS generation").
		From("match_events").
		ToSQL()
	if err != nil {
		return 0, crerr.Wrap(err, "build select event generation query")
	}

	var generation uint64
	if err := r.db.GetContext(ctx, &generation, query, args...); err != nil {
		return 0, crerr.Wrap(err, "select event generation")
	}
	return generation, nil
}

func (r *MatchEventRepository) selectEvents(ctx context.Context, query string, args []any) ([]matchevent.Event, error) {
	var rows []matchEventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select match events")
	}

	out := make([]matchevent.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchevent.Event{
			ID:                   row.ID,
			MatchID:              row.MatchID,
			Type:                 matchevent.EventType(row.EventType),
			TeamRegistrationID:   row.TeamRegistrationID,
			PlayerRegistrationID: row.PlayerRegistrationID.String,
			Timestamp:            row.RecordedAt,
			MatchtimeMinutes:     row.MatchtimeMinutes,
		})
	}
	return out, nil
}
