package tournament

// Competition is the long-running cup a tournament belongs to.
type Competition struct {
	ID   string
	Name string
}

// Season groups tournaments played in the same calendar window.
type Season struct {
	ID   string
	Name string
}

// Tournament is one edition of a competition within a season.
type Tournament struct {
	ID            string
	Name          string
	Short         string
	CompetitionID string
	SeasonID      string
	Genre         string
}
