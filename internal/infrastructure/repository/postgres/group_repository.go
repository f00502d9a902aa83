package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/ligadavila/copa-engine/internal/domain/group"
	qb "github.com/ligadavila/copa-engine/internal/platform/querybuilder"
)

type groupTableModel struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	TournamentID string `db:"tournament_id"`
	Stage        int    `db:"stage"`
}

type groupTeamTableModel struct {
	GroupID            string `db:"group_id"`
	TeamRegistrationID string `db:"team_registration_id"`
	Position           int    `db:"position"`
}

type GroupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) GetByID(ctx context.Context, groupID string) (group.Group, bool, error) {
	query, args, err := qb.Select("id", "name", "tournament_id", "stage").
		From("groups").
		Where(qb.Eq("id", groupID)).
		ToSQL()
	if err != nil {
		return group.Group{}, false, crerr.Wrap(err, "build select group query")
	}

	var row groupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return group.Group{}, false, nil
		}
		return group.Group{}, false, crerr.Wrap(err, "select group")
	}

	regIDs, err := r.listGroupTeams(ctx, groupID)
	if err != nil {
		return group.Group{}, false, err
	}

	return group.Group{
		ID:                  row.ID,
		Name:                row.Name,
		TournamentID:        row.TournamentID,
		Stage:               row.Stage,
		TeamRegistrationIDs: regIDs,
	}, true, nil
}

func (r *GroupRepository) ListByTournament(ctx context.Context, tournamentID string) ([]group.Group, error) {
	query, args, err := qb.Select("id", "name", "tournament_id", "stage").
		From("groups").
		Where(qb.Eq("tournament_id", tournamentID)).
		OrderBy("stage", "id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select tournament groups query")
	}

	var rows []groupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select tournament groups")
	}
	if len(rows) == 0 {
		return []group.Group{}, nil
	}

	groupIDs := make([]any, 0, len(rows))
	for _, row := range rows {
		groupIDs = append(groupIDs, row.ID)
	}
	teamsByGroup, err := r.listGroupTeamsBatch(ctx, groupIDs)
	if err != nil {
		return nil, err
	}

	out := make([]group.Group, 0, len(rows))
	for _, row := range rows {
		out = append(out, group.Group{
			ID:                  row.ID,
			Name:                row.Name,
			TournamentID:        row.TournamentID,
			Stage:               row.Stage,
			TeamRegistrationIDs: teamsByGroup[row.ID],
		})
	}
	return out, nil
}

// listGroupTeamsBatch loads the memberships of several groups in one
// query. Ordering by (group_id, position) keeps each group's slice in
// enrollment order.
func (r *GroupRepository) listGroupTeamsBatch(ctx context.Context, groupIDs []any) (map[string][]string, error) {
	query, args, err := qb.Select("group_id", "team_registration_id", "position").
		From("group_teams").
		Where(qb.In("group_id", groupIDs)).
		OrderBy("group_id", "position").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select group teams batch query")
	}

	var rows []groupTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select group teams batch")
	}

	out := make(map[string][]string, len(groupIDs))
	for _, row := range rows {
		out[row.GroupID] = append(out[row.GroupID], row.TeamRegistrationID)
	}
	return out, nil
}

// listGroupTeams returns the group's registrations in enrollment order;
// the position column is that order and standings tie-breaking depends
// on it.
func (r *GroupRepository) listGroupTeams(ctx context.Context, groupID string) ([]string, error) {
	query, args, err := qb.Select("group_id", "team_registration_id", "position").
		From("group_teams").
		Where(qb.Eq("group_id", groupID)).
		OrderBy("position").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select group teams query")
	}

	var rows []groupTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select group teams")
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.TeamRegistrationID)
	}
	return out, nil
}
