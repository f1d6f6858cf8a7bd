package components

import "github.com/yohamta/donburi"

// SessionData is the per-level scoreboard (singleton component)
type SessionData struct {
	Level          string
	NotesCollected int
	NotesRequired  int
	TotalPenguins  int
	Player         donburi.Entity
}

var Session = donburi.NewComponentType[SessionData]()
