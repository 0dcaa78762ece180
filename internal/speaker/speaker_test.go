package speaker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Create(t *testing.T) {
	speaker := Create()
	assert.NotNil(t, speaker)
	assert.False(t, speaker.IsActive())
}

func Test_IsActive(t *testing.T) {
	speaker := &speaker{}
	assert.False(t, speaker.IsActive())
	speaker.active = true
	assert.True(t, speaker.IsActive())
}

func Test_Set(t *testing.T) {
	speaker := Create()
	speaker.Set(true)
	assert.True(t, speaker.IsActive())
	speaker.Set(false)
	assert.False(t, speaker.IsActive())
}

func Test_Beeps(t *testing.T) {
	speaker := Create()
	speaker.Set(true)
	speaker.Set(true)
	speaker.Set(false)
	speaker.Set(true)
	assert.Equal(t, 2, speaker.Beeps())
}
