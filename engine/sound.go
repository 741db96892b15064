package engine

// Sounds receives gameplay cues; implementations must not block
type Sounds interface {
	PlayFlip()
	PlayCrash()
	StartPedal()
	StopPedal()
}

type noSounds struct{}

func (noSounds) PlayFlip()   {}
func (noSounds) PlayCrash()  {}
func (noSounds) StartPedal() {}
func (noSounds) StopPedal()  {}
