package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/ligadavila/copa-engine/internal/domain/registration"
	qb "github.com/ligadavila/copa-engine/internal/platform/querybuilder"
)

type teamRegistrationTableModel struct {
	ID           string `db:"id"`
	TournamentID string `db:"tournament_id"`
	TeamID       string `db:"team_id"`
	CaptainID    string `db:"captain_id"`
}

type playerRegistrationTableModel struct {
	ID                 string `db:"id"`
	TeamRegistrationID string `db:"team_registration_id"`
	PersonID           string `db:"person_id"`
	Position           string `db:"position"`
	ShirtNo            string `db:"shirt_no"`
}

type RegistrationRepository struct {
	db *sqlx.DB
}

func NewRegistrationRepository(db *sqlx.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) GetTeamRegistration(ctx context.Context, teamRegID string) (registration.TeamRegistration, bool, error) {
	query, args, err := qb.Select("id", "tournament_id", "team_id", "captain_id").
		From("team_registrations").
		Where(qb.Eq("id", teamRegID)).
		ToSQL()
	if err != nil {
		return registration.TeamRegistration{}, false, crerr.Wrap(err, "build select team registration query")
	}

	var row teamRegistrationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return registration.TeamRegistration{}, false, nil
		}
		return registration.TeamRegistration{}, false, crerr.Wrap(err, "select team registration")
	}

	return registration.TeamRegistration{
		ID:           row.ID,
		TournamentID: row.TournamentID,
		TeamID:       row.TeamID,
		CaptainID:    row.CaptainID,
	}, true, nil
}

func (r *RegistrationRepository) GetPlayerRegistration(ctx context.Context, playerRegID string) (registration.PlayerRegistration, bool, error) {
	query, args, err := qb.Select("id", "team_registration_id", "person_id", "position", "shirt_no").
		From("player_registrations").
		Where(qb.Eq("id", playerRegID)).
		ToSQL()
	if err != nil {
		return registration.PlayerRegistration{}, false, crerr.Wrap(err, "build select player registration query")
	}

	var row playerRegistrationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return registration.PlayerRegistration{}, false, nil
		}
		return registration.PlayerRegistration{}, false, crerr.Wrap(err, "select player registration")
	}

	return playerRegistrationFromRow(row), true, nil
}

func (r *RegistrationRepository) ListPlayerRegistrationsByTeamRegistration(ctx context.Context, teamRegID string) ([]registration.PlayerRegistration, error) {
	query, args, err := qb.Select("id", "team_registration_id", "person_id", "position", "shirt_no").
		From("player_registrations").
		Where(qb.Eq("team_registration_id", teamRegID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select squad query")
	}

	var rows []playerRegistrationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select squad")
	}

	out := make([]registration.PlayerRegistration, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerRegistrationFromRow(row))
	}
	return out, nil
}

func (r *RegistrationRepository) ListPlayerRegistrationsByPerson(ctx context.Context, personID string) ([]registration.PlayerRegistration, error) {
	query, args, err := qb.Select("id", "team_registration_id", "person_id", "position", "shirt_no").
		From("player_registrations").
		Where(qb.Eq("person_id", personID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select person registrations query")
	}

	var rows []playerRegistrationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select person registrations")
	}

	out := make([]registration.PlayerRegistration, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerRegistrationFromRow(row))
	}
	return out, nil
}

func playerRegistrationFromRow(row playerRegistrationTableModel) registration.PlayerRegistration {
	return registration.PlayerRegistration{
		ID:                 row.ID,
		TeamRegistrationID: row.TeamRegistrationID,
		PersonID:           row.PersonID,
		Position:           row.Position,
		ShirtNo:            row.ShirtNo,
	}
}
