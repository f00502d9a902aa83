package person

// Person is a player, captain or official; career stats attach here,
// never to a single registration.
type Person struct {
	ID    string
	Name  string
	Short string
	Hood  string
}
