// Package chip8 implements an assembler for the Chip 8 virtual machine.
//
// Source text is translated in four passes: parsing each line into a
// Statement, resolving mnemonics against the operation table while seeding
// the symbol table, assigning addresses from the 0x200 program origin, and
// substituting label addresses into the operand slots to produce the final
// opcodes. The instruction set covers base Chip 8 plus the Super Chip 8 and
// XO Chip extensions, along with the FCB and FDB data pseudo operations.
package chip8
