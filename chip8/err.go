package chip8

import (
	"github.com/ezrec/chip8asm/translate"
)

var f = translate.From

// ErrParse is a source line that matches none of the recognized line shapes.
// Parse errors are fatal to the whole translation.
type ErrParse struct {
	LineNo int
	Line   string
}

func (err *ErrParse) Error() string {
	return f("line %d: could not parse line [%v]", err.LineNo, err.Line)
}

// ErrStatement wraps a translation error with the original source text of
// the offending statement.
type ErrStatement struct {
	Line string
	Err  error
}

func (err *ErrStatement) Error() string {
	return f("statement [%v] %v", err.Line, err.Err)
}

func (err *ErrStatement) Unwrap() error {
	return err.Err
}

type ErrMnemonicUnknown string

func (err ErrMnemonicUnknown) Error() string {
	return f("invalid mnemonic [%v]", string(err))
}

type ErrOperandCount struct {
	Want int
	Got  int
}

func (err *ErrOperandCount) Error() string {
	return f("expected %d operand(s), but got %d", err.Want, err.Got)
}

type ErrOperandMissing string

func (err ErrOperandMissing) Error() string {
	return f("pseudo operation [%v] requires 1 operand", string(err))
}

type ErrRegisterExpected string

func (err ErrRegisterExpected) Error() string {
	return f("expected register in r0-rF, but got [%v]", string(err))
}

type ErrLabelDuplicate string

func (err ErrLabelDuplicate) Error() string {
	return f("label [%v] redefined", string(err))
}

// ErrValueInvalid is an operand that is not a hex literal after label
// substitution, usually a misspelled label.
type ErrValueInvalid string

func (err ErrValueInvalid) Error() string {
	return f("[%v] is not a value or known label", string(err))
}

type ErrSlotOverflow struct {
	Slot  string
	Width int
	Value string
}

func (err *ErrSlotOverflow) Error() string {
	return f("expected %v of length %d, but was length %d [%v]",
		err.Slot, err.Width, len(err.Value), err.Value)
}
