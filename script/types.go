package script

// Header is the fixed 104-byte block at the start of every script module.
// Field order matches the encoding.
type Header struct {
	Magic                  uint32
	Version                uint32
	Status                 uint32
	Size                   uint32
	CompiledFileNameOffset uint32
	SourceFileNameOffset   uint32

	// OpcodeCount is the instruction stream length in 16-bit words, not
	// the number of instructions.
	OpcodeCount         uint32
	DebugInfoCount      uint32
	VariableCount       uint32
	StaticCount         uint32
	UnkCount            uint32
	FunctionCount       uint32
	StringCount         uint32
	VariableLookupCount uint32
	LabelLookupCount    uint32
	SwitchTableCount    uint32

	// Declared section offsets. Decoding never seeks to them; see CheckLayout.
	OpcodesOffset        uint32
	DebugInfosOffset     uint32
	VariablesOffset      uint32
	StaticsOffset        uint32
	UnksOffset           uint32
	FunctionsOffset      uint32
	VariableLookupOffset uint32
	LabelLookupOffset    uint32
	SwitchTablesOffset   uint32
	StringTableOffset    uint32
}

// StreamSize returns the instruction stream length in bytes.
func (h Header) StreamSize() int64 {
	return int64(h.OpcodeCount) * 2
}

// Module is a fully decoded script module. It is not modified after decoding.
type Module struct {
	Header       Header
	Instructions []Instruction

	DebugInfos      []DebugInfo
	Variables       []Variable
	StaticVariables []StaticVariable
	Unks            []Unk
	Functions       []Function
	VariableLookups []VariableLookup
	LabelLookups    []LabelLookup
	SwitchTables    []SwitchTable
	StringOffsets   []uint32

	// End is the byte offset just past the last decoded section.
	End int64
}

// DebugInfo maps a source file name to a line table offset.
type DebugInfo struct {
	FileNameOffset uint32
	LineOffset     uint32
}

// Variable describes a script variable.
type Variable struct {
	NameOffset   uint32
	VariableType uint32
	Size         int16
}

// StaticVariable describes a static variable. Unk is kept raw.
type StaticVariable struct {
	NameOffset uint32
	Unk        [4]uint16
}

// Unk is a record from the unknown table, kept raw.
type Unk struct {
	Unk  [3]uint32
	Unk2 [2]uint16
}

// Function describes a script function entry point.
type Function struct {
	NameOffset uint32
	NameHash   uint32
	Address    uint32
	StackDelta int32
}

// VariableLookup maps a name hash to a variable index.
type VariableLookup struct {
	Hash          uint32
	VariableIndex uint32
}

// LabelLookup maps a name hash to a label position.
type LabelLookup struct {
	Hash           uint32
	NameOffset     uint32
	ProgramCounter uint32
}

// SwitchTable is one case of a switch dispatch table.
type SwitchTable struct {
	Value          uint32
	ProgramCounter uint32
}

// Encoded record sizes in bytes.
const (
	DebugInfoSize      = 8
	VariableSize       = 10
	StaticVariableSize = 12
	UnkSize            = 16
	FunctionSize       = 16
	VariableLookupSize = 8
	LabelLookupSize    = 12
	SwitchTableSize    = 8
	StringOffsetSize   = 4
)
