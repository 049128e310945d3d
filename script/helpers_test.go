package script_test

import (
	"github.com/wippyai/sxscript/script"
	"github.com/wippyai/sxscript/script/internal/binary"
)

// fixture describes a module image. Counts and section offsets in the
// header are derived from the slices unless overridden by edit.
type fixture struct {
	Magic, Version uint32
	Code           []byte

	DebugInfos      []script.DebugInfo
	Variables       []script.Variable
	StaticVariables []script.StaticVariable
	Unks            []script.Unk
	Functions       []script.Function
	VariableLookups []script.VariableLookup
	LabelLookups    []script.LabelLookup
	SwitchTables    []script.SwitchTable
	StringOffsets   []uint32
}

func (f fixture) header() script.Header {
	h := script.Header{
		Magic:               f.Magic,
		Version:             f.Version,
		Size:                uint32(f.size()),
		OpcodeCount:         uint32(len(f.Code) / 2),
		DebugInfoCount:      uint32(len(f.DebugInfos)),
		VariableCount:       uint32(len(f.Variables)),
		StaticCount:         uint32(len(f.StaticVariables)),
		UnkCount:            uint32(len(f.Unks)),
		FunctionCount:       uint32(len(f.Functions)),
		StringCount:         uint32(len(f.StringOffsets)),
		VariableLookupCount: uint32(len(f.VariableLookups)),
		LabelLookupCount:    uint32(len(f.LabelLookups)),
		SwitchTableCount:    uint32(len(f.SwitchTables)),
	}

	off := uint32(script.HeaderSize)
	next := func(size int) uint32 {
		cur := off
		off += uint32(size)
		return cur
	}
	h.OpcodesOffset = next(len(f.Code))
	h.DebugInfosOffset = next(len(f.DebugInfos) * script.DebugInfoSize)
	h.VariablesOffset = next(len(f.Variables) * script.VariableSize)
	h.StaticsOffset = next(len(f.StaticVariables) * script.StaticVariableSize)
	h.UnksOffset = next(len(f.Unks) * script.UnkSize)
	h.FunctionsOffset = next(len(f.Functions) * script.FunctionSize)
	h.VariableLookupOffset = next(len(f.VariableLookups) * script.VariableLookupSize)
	h.LabelLookupOffset = next(len(f.LabelLookups) * script.LabelLookupSize)
	h.SwitchTablesOffset = next(len(f.SwitchTables) * script.SwitchTableSize)
	h.StringTableOffset = next(len(f.StringOffsets) * script.StringOffsetSize)
	return h
}

func (f fixture) size() int {
	return script.HeaderSize + len(f.Code) +
		len(f.DebugInfos)*script.DebugInfoSize +
		len(f.Variables)*script.VariableSize +
		len(f.StaticVariables)*script.StaticVariableSize +
		len(f.Unks)*script.UnkSize +
		len(f.Functions)*script.FunctionSize +
		len(f.VariableLookups)*script.VariableLookupSize +
		len(f.LabelLookups)*script.LabelLookupSize +
		len(f.SwitchTables)*script.SwitchTableSize +
		len(f.StringOffsets)*script.StringOffsetSize
}

func (f fixture) bytes() []byte {
	return f.bytesWith(func(*script.Header) {})
}

// bytesWith encodes the fixture after letting edit adjust the header.
func (f fixture) bytesWith(edit func(*script.Header)) []byte {
	h := f.header()
	edit(&h)

	w := binary.NewWriter()
	writeHeader(w, h)
	w.WriteBytes(f.Code)
	for _, d := range f.DebugInfos {
		w.WriteU32LE(d.FileNameOffset)
		w.WriteU32LE(d.LineOffset)
	}
	for _, v := range f.Variables {
		w.WriteU32LE(v.NameOffset)
		w.WriteU32LE(v.VariableType)
		w.WriteU16LE(uint16(v.Size))
	}
	for _, s := range f.StaticVariables {
		w.WriteU32LE(s.NameOffset)
		for _, u := range s.Unk {
			w.WriteU16LE(u)
		}
	}
	for _, u := range f.Unks {
		for _, v := range u.Unk {
			w.WriteU32LE(v)
		}
		for _, v := range u.Unk2 {
			w.WriteU16LE(v)
		}
	}
	for _, fn := range f.Functions {
		w.WriteU32LE(fn.NameOffset)
		w.WriteU32LE(fn.NameHash)
		w.WriteU32LE(fn.Address)
		w.WriteI32LE(fn.StackDelta)
	}
	for _, v := range f.VariableLookups {
		w.WriteU32LE(v.Hash)
		w.WriteU32LE(v.VariableIndex)
	}
	for _, l := range f.LabelLookups {
		w.WriteU32LE(l.Hash)
		w.WriteU32LE(l.NameOffset)
		w.WriteU32LE(l.ProgramCounter)
	}
	for _, s := range f.SwitchTables {
		w.WriteU32LE(s.Value)
		w.WriteU32LE(s.ProgramCounter)
	}
	for _, s := range f.StringOffsets {
		w.WriteU32LE(s)
	}
	return w.Bytes()
}

func writeHeader(w *binary.Writer, h script.Header) {
	for _, v := range []uint32{
		h.Magic, h.Version, h.Status, h.Size,
		h.CompiledFileNameOffset, h.SourceFileNameOffset,
		h.OpcodeCount, h.DebugInfoCount, h.VariableCount, h.StaticCount,
		h.UnkCount, h.FunctionCount, h.StringCount,
		h.VariableLookupCount, h.LabelLookupCount, h.SwitchTableCount,
		h.OpcodesOffset, h.DebugInfosOffset, h.VariablesOffset,
		h.StaticsOffset, h.UnksOffset, h.FunctionsOffset,
		h.VariableLookupOffset, h.LabelLookupOffset,
		h.SwitchTablesOffset, h.StringTableOffset,
	} {
		w.WriteU32LE(v)
	}
}

// encode writes one instruction of op's shape. operand is the 16- or
// 32-bit value that follows the opcode word, if any.
func encode(w *binary.Writer, op script.Opcode, data byte, operand uint32) {
	w.WriteOp(byte(op), data)
	switch op.Shape() {
	case script.ShapeWord, script.ShapeDataWord:
		w.WriteU16LE(uint16(operand))
	case script.ShapeDword:
		w.WriteU32LE(operand)
	}
}

// sampleCode covers every shape class.
func sampleCode() []byte {
	w := binary.NewWriter()
	encode(w, script.OpPushInt, 0, 0xffffffff)
	encode(w, script.OpPushByte, 7, 0)
	encode(w, script.OpPushMultipleVars, 2, 0x10)
	encode(w, script.OpAdd, 0, 0)
	encode(w, script.OpBranchFalse, 0, 0x20)
	encode(w, script.OpEnd, 0, 0)
	return w.Bytes()
}
