// Package script decodes compiled script bytecode modules (.sx files).
//
// A module is a 104-byte header of 26 little-endian uint32 fields followed
// by sections laid out back to back in a fixed order:
//
//	header           26 x u32
//	instructions     OpcodeCount 16-bit words
//	debug infos      DebugInfoCount x 8 bytes
//	variables        VariableCount x 10 bytes
//	statics          StaticCount x 12 bytes
//	unks             UnkCount x 16 bytes
//	functions        FunctionCount x 16 bytes
//	variable lookups VariableLookupCount x 8 bytes
//	label lookups    LabelLookupCount x 12 bytes
//	switch tables    SwitchTableCount x 8 bytes
//	string offsets   StringCount x u32
//
// The header also declares an offset for each section. Decoding relies on
// the sequential layout only; CheckLayout compares the two.
//
// # Parsing
//
//	data, _ := os.ReadFile("cloth.sx")
//	m, err := script.ParseModule(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or straight from disk:
//
//	m, err := script.ReadFile("cloth.sx", script.Options{StrictLayout: true})
//
// # Instructions
//
// Each instruction starts with a 16-bit word: the low byte is the Opcode,
// the high byte is an immediate used by PushByte, PushByteAsFloat,
// PushMultipleVars and PopAndStoreMultiple. Depending on Opcode.Shape, the
// word is followed by nothing, one 16-bit operand or one 32-bit operand, so
// instructions are 2, 4 or 6 bytes long. The header's OpcodeCount is a word
// budget; the number of instructions is only known after decoding.
//
//	for _, instr := range m.Instructions {
//	    if target, ok := instr.BranchTarget(); ok {
//	        ...
//	    }
//	}
//
// Branch, jump and call targets are kept raw.
//
// # Errors
//
// Decoding stops at the first problem. Errors are *errors.Error values
// carrying the byte offset of the failing read and one of the kinds
// truncated, malformed_stream or io_failure.
package script
