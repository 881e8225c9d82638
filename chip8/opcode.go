package chip8

// Slot placeholder runes within an operation template.
const (
	sourceSlot  = "s"
	targetSlot  = "t"
	numericSlot = "n"
)

// Operation describes how one mnemonic packs into a 16-bit opcode. Op is a
// template of 4 hex digit positions; the s/t/n runes mark where the source
// register, target register, and numeric value are substituted. Numeric is
// the width of the numeric slot in hex digits.
type Operation struct {
	Op       string
	Operands int
	Source   int
	Target   int
	Numeric  int
}

// operations is the full instruction set, including the Super Chip 8 and
// XO Chip extensions.
var operations = map[string]Operation{
	"SYS":   {Op: "0nnn", Operands: 1, Numeric: 3},
	"CLR":   {Op: "00E0"},
	"RTS":   {Op: "00EE"},
	"JUMP":  {Op: "1nnn", Operands: 1, Numeric: 3},
	"CALL":  {Op: "2nnn", Operands: 1, Numeric: 3},
	"SKE":   {Op: "3snn", Operands: 2, Source: 1, Numeric: 2},
	"SKNE":  {Op: "4snn", Operands: 2, Source: 1, Numeric: 2},
	"SKRE":  {Op: "5st0", Operands: 2, Source: 1, Target: 1},
	"LOAD":  {Op: "6snn", Operands: 2, Source: 1, Numeric: 2},
	"ADD":   {Op: "7snn", Operands: 2, Source: 1, Numeric: 2},
	"MOVE":  {Op: "8st0", Operands: 2, Source: 1, Target: 1},
	"OR":    {Op: "8st1", Operands: 2, Source: 1, Target: 1},
	"AND":   {Op: "8st2", Operands: 2, Source: 1, Target: 1},
	"XOR":   {Op: "8st3", Operands: 2, Source: 1, Target: 1},
	"ADDR":  {Op: "8st4", Operands: 2, Source: 1, Target: 1},
	"SUB":   {Op: "8st5", Operands: 2, Source: 1, Target: 1},
	"SHR":   {Op: "8st6", Operands: 1, Source: 1, Target: 1},
	"SUBN":  {Op: "8st7", Operands: 2, Source: 1, Target: 1},
	"SHL":   {Op: "8stE", Operands: 1, Source: 1, Target: 1},
	"SKRNE": {Op: "9st0", Operands: 2, Source: 1, Target: 1},
	"LOADI": {Op: "Annn", Operands: 1, Numeric: 3},
	"JUMPI": {Op: "Bnnn", Operands: 1, Numeric: 3},
	"RAND":  {Op: "Ctnn", Operands: 2, Target: 1, Numeric: 2},
	"DRAW":  {Op: "Dstn", Operands: 3, Source: 1, Target: 1, Numeric: 1},
	"SKPR":  {Op: "Es9E", Operands: 1, Source: 1},
	"SKUP":  {Op: "EsA1", Operands: 1, Source: 1},
	"MOVED": {Op: "Ft07", Operands: 1, Target: 1},
	"KEYD":  {Op: "Ft0A", Operands: 1, Target: 1},
	"LOADD": {Op: "Fs15", Operands: 1, Source: 1},
	"LOADS": {Op: "Fs18", Operands: 1, Source: 1},
	"ADDI":  {Op: "Fs1E", Operands: 1, Source: 1},
	"LDSPR": {Op: "Fs29", Operands: 1, Source: 1},
	"BCD":   {Op: "Fs33", Operands: 1, Source: 1},
	"STOR":  {Op: "Fs55", Operands: 1, Source: 1},
	"READ":  {Op: "Fs65", Operands: 1, Source: 1},

	// Super Chip 8 instructions
	"SCRD": {Op: "00Cn", Operands: 1, Numeric: 1},
	"SCRR": {Op: "00FB"},
	"SCRL": {Op: "00FC"},
	"EXIT": {Op: "00FD"},
	"EXTD": {Op: "00FE"},
	"EXTE": {Op: "00FF"},
	"SRPL": {Op: "Fs75", Operands: 1, Source: 1},
	"LRPL": {Op: "Fs85", Operands: 1, Source: 1},

	// XO Chip instructions
	"SAVESUB": {Op: "5st2", Operands: 2, Source: 1, Target: 1},
	"AUDIO":   {Op: "F002"},
	"PLANE":   {Op: "Fn03", Operands: 1, Numeric: 1},
	"PITCH":   {Op: "Fs3A", Operands: 1, Source: 1},
}

// Pseudo operations emit literal data instead of instructions.
const (
	FCB = "FCB" // one byte
	FDB = "FDB" // two bytes
)

func isPseudoOp(mnemonic string) bool {
	return mnemonic == FCB || mnemonic == FDB
}

// Slots returns the declared slot count of the template.
func (op Operation) Slots() int {
	slots := op.Source + op.Target
	if op.Numeric != 0 {
		slots++
	}
	return slots
}
