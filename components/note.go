package components

import "github.com/yohamta/donburi"

type NoteData struct {
	Index     int
	Collected bool
}

var Note = donburi.NewComponentType[NoteData]()
