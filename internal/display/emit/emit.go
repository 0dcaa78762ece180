package emit

// Emit is the state of a single pixel
type Emit bool

const (
	OFF Emit = false
	ON  Emit = true
)

// Flip returns the opposite state
func (e Emit) Flip() Emit {
	return !e
}
