// Package scenes hosts the simulation inside an ebiten window: input
// polling, drawing and the level sequence.
package scenes

import "github.com/hajimehoshi/ebiten/v2"

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type SceneChanger interface {
	ChangeScene(scene Scene)
}
