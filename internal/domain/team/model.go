package team

// Team is a club identity independent of any tournament enrollment.
type Team struct {
	ID    string
	Name  string
	Short string
	Genre string
}
