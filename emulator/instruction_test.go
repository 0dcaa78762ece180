package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Decode(t *testing.T) {
	tests := []struct {
		word uint16
		op   Op
		text string
	}{
		{0x00E0, CLS, "CLS"},
		{0x00EE, RET, "RET"},
		{0x1ABC, JMP, "JP 0xABC"},
		{0x2ABC, CALL, "CALL 0xABC"},
		{0x3A12, SEQ_VX_KK, "SE VA, 0x12"},
		{0x4A12, SNE_VX_KK, "SNE VA, 0x12"},
		{0x5AB0, SEQ_VX_VY, "SE VA, VB"},
		{0x6A12, LD_VX_KK, "LD VA, 0x12"},
		{0x7A12, ADD_VX_KK, "ADD VA, 0x12"},
		{0x8AB0, LD_VX_VY, "LD VA, VB"},
		{0x8AB1, OR_VX_VY, "OR VA, VB"},
		{0x8AB2, AND_VX_VY, "AND VA, VB"},
		{0x8AB3, XOR_VX_VY, "XOR VA, VB"},
		{0x8AB4, ADD_VX_VY, "ADD VA, VB"},
		{0x8AB5, SUB_VX_VY, "SUB VA, VB"},
		{0x8AB6, SHR_VX, "SHR VA"},
		{0x8AB7, SUBN_VX_VY, "SUBN VA, VB"},
		{0x8ABE, SHL_VX, "SHL VA"},
		{0x9AB0, SNE_VX_VY, "SNE VA, VB"},
		{0xAABC, LD_I, "LD I, 0xABC"},
		{0xBABC, JMP_V0, "JP V0, 0xABC"},
		{0xCA12, RND_VX_KK, "RND VA, 0x12"},
		{0xDAB5, DRW_VX_VY_N, "DRW VA, VB, 5"},
		{0xEA9E, SKP_VX, "SKP VA"},
		{0xEAA1, SKNP_VX, "SKNP VA"},
		{0xFA07, LD_VX_DT, "LD VA, DT"},
		{0xFA0A, LD_VX_K, "LD VA, K"},
		{0xFA15, LD_DT_VX, "LD DT, VA"},
		{0xFA18, LD_ST_VX, "LD ST, VA"},
		{0xFA1E, ADD_I_VX, "ADD I, VA"},
		{0xFA29, LD_F_VX, "LD F, VA"},
		{0xFA33, LD_B_VX, "LD B, VA"},
		{0xFA55, LD_I_VX, "LD [I], VA"},
		{0xFA65, LD_VX_I, "LD VA, [I]"},
		// the low nibble of 5xy? and 9xy? is not checked
		{0x5AB3, SEQ_VX_VY, "SE VA, VB"},
		{0x9ABF, SNE_VX_VY, "SNE VA, VB"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			ins, err := Decode(tt.word)
			assert.NoError(t, err)
			assert.Equal(t, tt.op, ins.Op)
			assert.Equal(t, tt.word, ins.Word)
			assert.Equal(t, tt.text, ins.String())
		})
	}
}

func Test_Decode_Fields(t *testing.T) {
	ins, err := Decode(0xD7C9)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x7), ins.X)
	assert.Equal(t, uint8(0xC), ins.Y)
	assert.Equal(t, uint8(0x9), ins.N)
	assert.Equal(t, uint8(0xC9), ins.KK)
	assert.Equal(t, uint16(0x7C9), ins.NNN)
}

func Test_Decode_Unknown(t *testing.T) {
	for _, word := range []uint16{
		0x0000, 0x0123, 0x00E1, 0x00FF,
		0x8AB8, 0x8ABF,
		0xEA9F, 0xEAA2, 0xE000,
		0xFA00, 0xFA08, 0xFA66, 0xFFFF,
	} {
		ins, err := Decode(word)
		assert.ErrorIs(t, err, ErrUnknownOpcode, "%04X", word)
		assert.Equal(t, Op(0), ins.Op)
		assert.Contains(t, ins.String(), "DW 0x")
	}
}
