package config

// ClipDef is a named frame range cut from the character's long track.
type ClipDef struct {
	Name       string `yaml:"name"`
	StartFrame int    `yaml:"start"`
	EndFrame   int    `yaml:"end"`
}

// Clip names the selector uses
const (
	ClipIdle    = "idle"
	ClipWalk    = "walk"
	ClipRun     = "run"
	ClipSprint  = "sprint"
	ClipJump    = "jump"
	ClipCrouch  = "crouch"
	ClipBarking = "barking"
	ClipDig     = "dig"
	ClipSit     = "sit"
	ClipScratch = "scratch"
	ClipDown    = "down"
	ClipPee     = "pee"
)

// PugClips is the clip table of the pug track at Animation.FPS.
var PugClips []ClipDef

func resetClips() {
	PugClips = []ClipDef{
		{Name: ClipWalk, StartFrame: 60, EndFrame: 110},
		{Name: ClipIdle, StartFrame: 0, EndFrame: 25},
		{Name: ClipRun, StartFrame: 180, EndFrame: 200},
		{Name: ClipSprint, StartFrame: 250, EndFrame: 270},
		{Name: ClipJump, StartFrame: 310, EndFrame: 340},
		{Name: ClipCrouch, StartFrame: 550, EndFrame: 600},
		{Name: ClipBarking, StartFrame: 800, EndFrame: 840},
		{Name: ClipDig, StartFrame: 1195, EndFrame: 1220},
		{Name: ClipSit, StartFrame: 1350, EndFrame: 1500},
		{Name: ClipScratch, StartFrame: 1505, EndFrame: 1587},
		{Name: ClipDown, StartFrame: 1700, EndFrame: 1930},
		{Name: ClipPee, StartFrame: 2620, EndFrame: 2750},
	}
}
