package postgres

type tournamentTableModel struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	Short         string `db:"short"`
	CompetitionID string `db:"competition_id"`
	SeasonID      string `db:"season_id"`
	Genre         string `db:"genre"`
}
