// Package state holds the in-memory session state shared by the
// message handlers and the dispatcher.
package state

// State bundles all per-user session state. It is created once at
// startup and passed to every component that needs it.
type State struct {
	Quizzes *Quizzes
	Modes   *Modes
	Users   *Users
}

func New() *State {
	return &State{
		Quizzes: NewQuizzes(),
		Modes:   NewModes(),
		Users:   NewUsers(),
	}
}
