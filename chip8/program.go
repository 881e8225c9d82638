// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package chip8

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Origin is the address at which every Chip 8 program image is loaded.
const Origin = 0x200

// Program is an ordered sequence of statements plus the symbol table that
// relates labels to the statements they prefix. Translation is a strict
// four pass pipeline: Parse, TranslateStatements, SetAddresses, FixOpcodes.
// Each pass must complete over all statements before the next begins.
type Program struct {
	Statements []*Statement

	// Symbols maps each label to its statement index after the translate
	// pass, and to its final address after the address pass.
	Symbols map[string]int

	address int
}

// Parse reads the input a line at a time into statements. Blank lines are
// dropped; comment lines are kept for the listing.
func (prog *Program) Parse(input io.Reader) error {
	prog.Statements = prog.Statements[:0]
	prog.Symbols = make(map[string]int)

	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		line := scanner.Text()
		lineno++

		logrus.Debugf("pass 1: %d: %v", lineno, line)

		st, err := ParseStatement(line)
		if err != nil {
			if perr, ok := err.(*ErrParse); ok {
				perr.LineNo = lineno
			}
			return err
		}
		if st.Kind == KindBlank {
			continue
		}
		prog.Statements = append(prog.Statements, st)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	logrus.Debugf("pass 1: %d statement(s) parsed", len(prog.Statements))

	return nil
}

// TranslateStatements resolves every mnemonic against the operation table
// and seeds the symbol table. A label may be defined only once.
func (prog *Program) TranslateStatements() error {
	for index, st := range prog.Statements {
		if err := st.Translate(); err != nil {
			return &ErrStatement{Line: st.Line, Err: err}
		}
		if st.Label == "" {
			continue
		}
		if _, ok := prog.Symbols[st.Label]; ok {
			return &ErrStatement{Line: st.Line, Err: ErrLabelDuplicate(st.Label)}
		}
		prog.Symbols[st.Label] = index
	}

	logrus.Debugf("pass 2: %d statement(s) translated", len(prog.Statements))

	return nil
}

// SetAddresses walks the statements in source order, stamping each with its
// address and pointing each label at the statement it prefixes. The counter
// advances by 1 byte for FCB and 2 bytes for everything else.
func (prog *Program) SetAddresses() {
	prog.address = Origin
	for _, st := range prog.Statements {
		if st.Label != "" {
			prog.Symbols[st.Label] = prog.address
		}
		st.Address = prog.address
		prog.address += st.Size()
	}

	logrus.Debugf("pass 3: addresses assigned up to 0x%04X", prog.address)
}

// FixOpcodes substitutes label addresses into the statement slots and
// computes the final opcode for each statement. Each slot value is looked
// up against the symbol table exactly once, so a label whose name happens
// to be a hex address string never chains into a second substitution.
func (prog *Program) FixOpcodes() error {
	for _, st := range prog.Statements {
		for _, label := range []string{st.Source, st.Target, st.Numeric} {
			if address, ok := prog.Symbols[label]; ok {
				st.ReplaceLabel(label, fmt.Sprintf("%X", address))
			}
		}
		if err := st.FixValues(); err != nil {
			return &ErrStatement{Line: st.Line, Err: err}
		}
	}

	logrus.Debugf("pass 4: %d statement(s) encoded", len(prog.Statements))

	return nil
}

// Assemble runs all four passes over the input.
func (prog *Program) Assemble(input io.Reader) error {
	if err := prog.Parse(input); err != nil {
		return err
	}
	if err := prog.TranslateStatements(); err != nil {
		return err
	}
	prog.SetAddresses()
	return prog.FixOpcodes()
}

// MachineCode flattens the finalized statements into the binary image,
// two hex characters per byte, in address order.
func (prog *Program) MachineCode() ([]byte, error) {
	var image []byte
	for _, st := range prog.Statements {
		switch st.Kind {
		case KindBlank, KindComment:
			continue
		}
		code, err := hex.DecodeString(st.OpCode)
		if err != nil {
			return nil, &ErrStatement{Line: st.Line, Err: ErrValueInvalid(st.OpCode)}
		}
		image = append(image, code...)
	}
	return image, nil
}

// Save writes the binary image to the output.
func (prog *Program) Save(output io.Writer) error {
	image, err := prog.MachineCode()
	if err != nil {
		return err
	}
	_, err = output.Write(image)
	return err
}
