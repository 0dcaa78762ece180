package speaker

// Speaker follows the sound timer. Audio output is not produced,
// the drivers show the buzzer state on screen instead.
type Speaker interface {
	IsActive() bool
	Set(bool)
	Beeps() int
}

type speaker struct {
	active bool
	// number of times the buzzer has switched on
	beeps int
}

func Create() Speaker {
	return &speaker{}
}

func (sp *speaker) IsActive() bool {
	return sp.active
}

func (sp *speaker) Set(active bool) {
	if active && !sp.active {
		sp.beeps++
	}
	sp.active = active
}

func (sp *speaker) Beeps() int {
	return sp.beeps
}
