package keypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type keys [KEYS]bool

func (ks *keys) SetKey(k uint8, pressed bool) {
	ks[k] = pressed
}

func Test_ParseLayout(t *testing.T) {
	layout, err := ParseLayout("Qwerty")
	assert.NoError(t, err)
	assert.Equal(t, Qwerty, layout)

	layout, err = ParseLayout("DVORAK")
	assert.NoError(t, err)
	assert.Equal(t, Dvorak, layout)

	_, err = ParseLayout("azerty")
	assert.Error(t, err)
}

func Test_Layouts_Complete(t *testing.T) {
	for name, layout := range layouts {
		seen := map[uint8]bool{}
		for _, k := range layout {
			seen[k] = true
		}
		assert.Len(t, seen, KEYS, name)
	}
}

func Test_Lookup(t *testing.T) {
	kp := Create(Qwerty, 1)
	k, ok := kp.Lookup('x')
	assert.True(t, ok)
	assert.Equal(t, uint8(0x0), k)

	k, ok = kp.Lookup('V')
	assert.True(t, ok)
	assert.Equal(t, uint8(0xF), k)

	_, ok = kp.Lookup('m')
	assert.False(t, ok)
}

func Test_Press_Apply(t *testing.T) {
	kp := Create(Qwerty, 2)
	ks := &keys{}

	assert.True(t, kp.Press('w'))
	assert.False(t, kp.Press('m'))

	kp.Apply(ks)
	assert.True(t, ks[0x5])
	kp.Apply(ks)
	assert.True(t, ks[0x5])
	kp.Apply(ks)
	assert.False(t, ks[0x5])
}

func Test_Press_Refresh(t *testing.T) {
	kp := Create(Qwerty, 2)
	ks := &keys{}
	kp.Press('1')
	kp.Apply(ks)
	kp.Press('1')
	kp.Apply(ks)
	kp.Apply(ks)
	assert.True(t, ks[0x1])
}

func Test_Clear(t *testing.T) {
	kp := Create(Colemak, 5)
	ks := &keys{}
	kp.Press('t')
	kp.Clear()
	kp.Apply(ks)
	assert.Equal(t, keys{}, *ks)
}
