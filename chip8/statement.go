// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package chip8

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind classifies a parsed source line.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KindBlank       = Kind(0) // blank
	KindComment     = Kind(1) // comment
	KindInstruction = Kind(2) // instruction
	KindPseudoOp    = Kind(3) // pseudo
)

var (
	// A line containing only whitespace.
	blankLineRE = regexp.MustCompile(`^\s*$`)

	// A line holding nothing but a comment.
	commentLineRE = regexp.MustCompile(`^\s*#\s*(?P<comment>.*)$`)

	// The general statement shape: LABEL MNEMONIC OPERANDS # COMMENT,
	// where every field is optional.
	asmLineRE = regexp.MustCompile(
		`^(?P<label>\w*)\s+(?P<mnemonic>\w*)\s+(?P<operands>[\w$,+-]*)\s*#*\s*(?P<comment>.*)$`)

	// Registers are r0 through rF, case insensitive.
	registerRE = regexp.MustCompile(`^[rR][0-9a-fA-F]$`)
)

// Statement is a single line of assembly language. Instruction and pseudo-op
// statements are refined in place by the translate, address, and fix-values
// passes; blank and comment statements are final as parsed.
type Statement struct {
	Line      string // original source text
	Kind      Kind
	Label     string
	Mnemonic  string
	Operands  string // raw comma-separated operand list
	Comment   string
	Operation Operation

	// Slot values; each is a literal hex string, or a label name awaiting
	// substitution.
	Source  string
	Target  string
	Numeric string

	Address int    // stamped by the address pass
	OpCode  string // final hex encoding, set by the fix-values pass
}

// ParseStatement parses one line of assembly language text.
func ParseStatement(line string) (*Statement, error) {
	st := &Statement{Line: line}

	if blankLineRE.MatchString(line) {
		return st, nil
	}

	if match := commentLineRE.FindStringSubmatch(line); match != nil {
		st.Kind = KindComment
		st.Comment = strings.TrimSpace(match[1])
		return st, nil
	}

	if match := asmLineRE.FindStringSubmatch(line); match != nil {
		st.Label = match[1]
		st.Mnemonic = match[2]
		st.Operands = match[3]
		st.Comment = strings.TrimSpace(match[4])
		st.Kind = KindInstruction
		if isPseudoOp(st.Mnemonic) {
			st.Kind = KindPseudoOp
		}
		return st, nil
	}

	return nil, &ErrParse{Line: line}
}

// IsRegister reports whether the operand names one of the registers
// r0 through rF.
func IsRegister(operand string) bool {
	return registerRE.MatchString(operand)
}

// getRegister returns the single hex digit naming the register.
func getRegister(operand string) (string, error) {
	if !IsRegister(operand) {
		return "", ErrRegisterExpected(operand)
	}
	return strings.ToUpper(operand[1:]), nil
}

// getValue canonicalizes a $-prefixed hex literal to uppercase hex with no
// leading zeros. Anything else is passed through as a label reference.
func getValue(operand string) (string, error) {
	if !strings.HasPrefix(operand, "$") {
		return operand, nil
	}
	value, err := strconv.ParseUint(operand[1:], 16, 64)
	if err != nil {
		return "", ErrValueInvalid(operand)
	}
	return fmt.Sprintf("%X", value), nil
}

// Translate resolves the mnemonic against the operation table and lexes the
// raw operands into the source, target, and numeric slots, in that order.
func (st *Statement) Translate() error {
	switch st.Kind {
	case KindBlank, KindComment:
		return nil
	}

	var tokens []string
	if st.Operands != "" {
		tokens = strings.Split(st.Operands, ",")
	}

	if st.Kind == KindPseudoOp {
		if len(tokens) == 0 {
			return ErrOperandMissing(st.Mnemonic)
		}
		if len(tokens) != 1 {
			return &ErrOperandCount{Want: 1, Got: len(tokens)}
		}
		numeric, err := getValue(tokens[0])
		if err != nil {
			return err
		}
		st.Numeric = numeric
		return nil
	}

	operation, ok := operations[st.Mnemonic]
	if !ok {
		return ErrMnemonicUnknown(st.Mnemonic)
	}
	st.Operation = operation

	if len(tokens) != operation.Operands {
		return &ErrOperandCount{Want: operation.Operands, Got: len(tokens)}
	}

	next := 0
	if operation.Source != 0 {
		source, err := getRegister(tokens[next])
		if err != nil {
			return err
		}
		st.Source = source
		next++
	}
	if operation.Target != 0 {
		if next == len(tokens) {
			// SHR and SHL take one register and encode it in
			// both slots.
			next--
		}
		target, err := getRegister(tokens[next])
		if err != nil {
			return err
		}
		st.Target = target
		next++
	}
	if operation.Numeric != 0 {
		numeric, err := getValue(tokens[next])
		if err != nil {
			return err
		}
		st.Numeric = numeric
	}

	return nil
}

// ReplaceLabel substitutes value into whichever of the source, target, or
// numeric slots currently holds the label name.
func (st *Statement) ReplaceLabel(label, value string) {
	if st.Source == label {
		st.Source = value
	}
	if st.Target == label {
		st.Target = value
	}
	if st.Numeric == label {
		st.Numeric = value
	}
}

// hexValue validates a slot value as literal hex. A label that never got
// substituted shows up here as a non-hex string.
func hexValue(value string) error {
	if _, err := strconv.ParseUint(value, 16, 64); err != nil {
		return ErrValueInvalid(value)
	}
	return nil
}

// FixValues substitutes the slot values into the operation template,
// producing the final fixed-width hex opcode. All label references must
// have been replaced by now.
func (st *Statement) FixValues() error {
	switch st.Kind {
	case KindBlank, KindComment:
		return nil
	}

	if st.Kind == KindPseudoOp {
		if err := hexValue(st.Numeric); err != nil {
			return err
		}
		width := 4
		if st.Mnemonic == FCB {
			width = 2
		}
		if len(st.Numeric) > width {
			return &ErrSlotOverflow{Slot: "value", Width: width, Value: st.Numeric}
		}
		st.OpCode = strings.Repeat("0", width-len(st.Numeric)) + st.Numeric
		return nil
	}

	opcode := st.Operation.Op
	if st.Operation.Source != 0 {
		if len(st.Source) > 1 {
			return &ErrSlotOverflow{Slot: "source", Width: 1, Value: st.Source}
		}
		opcode = strings.Replace(opcode, sourceSlot, st.Source, 1)
	}
	if st.Operation.Target != 0 {
		if len(st.Target) > 1 {
			return &ErrSlotOverflow{Slot: "target", Width: 1, Value: st.Target}
		}
		opcode = strings.Replace(opcode, targetSlot, st.Target, 1)
	}
	if st.Operation.Numeric != 0 {
		if err := hexValue(st.Numeric); err != nil {
			return err
		}
		if len(st.Numeric) > st.Operation.Numeric {
			return &ErrSlotOverflow{Slot: "numeric", Width: st.Operation.Numeric, Value: st.Numeric}
		}
		numeric := strings.Repeat("0", st.Operation.Numeric-len(st.Numeric)) + st.Numeric
		opcode = strings.Replace(opcode, strings.Repeat(numericSlot, st.Operation.Numeric), numeric, 1)
	}
	st.OpCode = opcode

	return nil
}

// Size is the number of bytes the statement occupies in the binary image.
func (st *Statement) Size() int {
	switch st.Kind {
	case KindBlank, KindComment:
		return 0
	}
	if st.Mnemonic == FCB {
		return 1
	}
	return 2
}

// String renders the statement in listing format. The opcode column is
// zero padded to a full word.
func (st *Statement) String() string {
	opcode := st.OpCode
	if len(opcode) < 4 {
		opcode = strings.Repeat("0", 4-len(opcode)) + opcode
	}
	return fmt.Sprintf("0x%04X %v %10v %5v %15v  # %v",
		st.Address, opcode, st.Label, st.Mnemonic, st.Operands, st.Comment)
}
