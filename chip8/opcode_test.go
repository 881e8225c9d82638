package chip8

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every template is 4 hex digit positions, and the slot runes appear exactly
// as often as the operation declares.
func TestOperationTemplates(t *testing.T) {
	assert := assert.New(t)

	for mnemonic, op := range operations {
		assert.Equal(4, len(op.Op), mnemonic)

		assert.Equal(op.Source, strings.Count(op.Op, sourceSlot), mnemonic)
		assert.Equal(op.Target, strings.Count(op.Op, targetSlot), mnemonic)
		assert.Equal(op.Numeric, strings.Count(op.Op, numericSlot), mnemonic)

		assert.LessOrEqual(op.Source, 1, mnemonic)
		assert.LessOrEqual(op.Target, 1, mnemonic)
		assert.LessOrEqual(op.Numeric, 3, mnemonic)

		assert.GreaterOrEqual(op.Operands, 0, mnemonic)
		assert.LessOrEqual(op.Operands, 3, mnemonic)
		assert.LessOrEqual(op.Operands, op.Slots(), mnemonic)

		// Everything outside the slots is a literal hex digit.
		literal := op.Op
		for _, slot := range []string{sourceSlot, targetSlot, numericSlot} {
			literal = strings.ReplaceAll(literal, slot, "0")
		}
		assert.True(isHexString(literal), mnemonic)
	}
}

func isHexString(value string) bool {
	return strings.IndexFunc(value, func(r rune) bool {
		return !strings.ContainsRune("0123456789ABCDEF", r)
	}) < 0
}

func TestOperationLookup(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("9st0", operations["SKRNE"].Op)
	assert.Equal("00E0", operations["CLR"].Op)
	assert.Equal("F002", operations["AUDIO"].Op)

	_, ok := operations["END"]
	assert.False(ok)
	_, ok = operations["ORG"]
	assert.False(ok)
}

func TestIsPseudoOp(t *testing.T) {
	assert := assert.New(t)

	assert.True(isPseudoOp(FCB))
	assert.True(isPseudoOp(FDB))
	assert.False(isPseudoOp("BLAH"))
	assert.False(isPseudoOp(""))
}
