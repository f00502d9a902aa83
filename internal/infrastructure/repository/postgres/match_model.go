package postgres

import (
	"database/sql"
	"time"

	"github.com/ligadavila/copa-engine/internal/domain/match"
)

type matchTableModel struct {
	ID            string       `db:"id"`
	MatchNo       int          `db:"match_no"`
	GroupID       string       `db:"group_id"`
	HomeTeamRegID string       `db:"home_team_reg_id"`
	AwayTeamRegID string       `db:"away_team_reg_id"`
	ScheduledAt   time.Time    `db:"scheduled_at"`
	ActualStart   sql.NullTime `db:"actual_start"`
	ActualFinish  sql.NullTime `db:"actual_finish"`
	Status        int          `db:"status"`
	VenueID       string       `db:"venue_id"`
}

type venueTableModel struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Address string `db:"address"`
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:            row.ID,
		MatchNo:       row.MatchNo,
		GroupID:       row.GroupID,
		HomeTeamRegID: row.HomeTeamRegID,
		AwayTeamRegID: row.AwayTeamRegID,
		ScheduledAt:   row.ScheduledAt,
		ActualStart:   nullTimePtr(row.ActualStart),
		ActualFinish:  nullTimePtr(row.ActualFinish),
		Status:        match.Status(row.Status),
		VenueID:       row.VenueID,
	}
}
