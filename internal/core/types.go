package core

const (
	RosterName    = "Roster"
	RosterVersion = "0.1.0"
)
