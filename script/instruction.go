package script

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/wippyai/sxscript/errors"
	"github.com/wippyai/sxscript/script/internal/binary"
)

// Instruction represents a decoded script instruction.
// Imm is nil for ShapeNone opcodes and one of the *Imm types below otherwise.
type Instruction struct {
	Imm    interface{}
	Opcode Opcode
}

// ByteImm holds the opcode word's high byte for PushByte and PushByteAsFloat.
type ByteImm struct {
	Value uint8
}

// MultiImm holds the operands of PushMultipleVars and PopAndStoreMultiple:
// the high byte of the opcode word and the following word.
type MultiImm struct {
	Count uint8
	Index uint16
}

// VarImm holds the variable index for PushVar, PushVarIndexed, PopAndStore,
// Store and StoreIndexed.
type VarImm struct {
	Index uint16
}

// StringImm holds the string table index for PushString.
type StringImm struct {
	Index uint16
}

// IndexImm holds the raw index operand of Swap and Switch.
type IndexImm struct {
	Index uint16
}

// BranchImm holds the raw target of BranchTrue, BranchFalse,
// BranchTrueNoPop, BranchFalseNoPop and Jump.
type BranchImm struct {
	Target uint16
}

// CallImm holds the raw target of Call.
type CallImm struct {
	Target uint16
}

// SysCallImm holds the system call number.
type SysCallImm struct {
	ID uint16
}

// RawImm holds an operand whose meaning is not known (Unk2).
type RawImm struct {
	Value uint16
}

// I32Imm holds the constant for PushInt.
type I32Imm struct {
	Value int32
}

// F32Imm holds the constant for PushFloat.
type F32Imm struct {
	Value float32
}

// Bits returns the IEEE-754 encoding of the constant.
func (f F32Imm) Bits() uint32 {
	return math.Float32bits(f.Value)
}

// Size returns the encoded size of the instruction in bytes (2, 4 or 6).
func (i Instruction) Size() int {
	return i.Opcode.Shape().Size()
}

// Data returns the value carried in the high byte of the opcode word.
// It is zero for opcodes that do not use it.
func (i Instruction) Data() uint8 {
	switch imm := i.Imm.(type) {
	case ByteImm:
		return imm.Value
	case MultiImm:
		return imm.Count
	}
	return 0
}

// IsBranch reports whether the instruction transfers control to a raw target.
func (i Instruction) IsBranch() bool {
	switch i.Opcode {
	case OpBranchTrue, OpBranchFalse, OpBranchTrueNoPop, OpBranchFalseNoPop, OpJump, OpCall:
		return true
	}
	return false
}

// BranchTarget returns the raw target of a branch, jump or call instruction.
func (i Instruction) BranchTarget() (uint16, bool) {
	switch imm := i.Imm.(type) {
	case BranchImm:
		return imm.Target, true
	case CallImm:
		return imm.Target, true
	}
	return 0, false
}

// String returns a debug form such as "PushInt(-1)" or "Pop".
func (i Instruction) String() string {
	switch imm := i.Imm.(type) {
	case nil:
		return i.Opcode.String()
	case ByteImm:
		return fmt.Sprintf("%s(%d)", i.Opcode, imm.Value)
	case MultiImm:
		return fmt.Sprintf("%s(%d, %d)", i.Opcode, imm.Count, imm.Index)
	case VarImm:
		return fmt.Sprintf("%s(%d)", i.Opcode, imm.Index)
	case StringImm:
		return fmt.Sprintf("%s(%d)", i.Opcode, imm.Index)
	case IndexImm:
		return fmt.Sprintf("%s(%d)", i.Opcode, imm.Index)
	case BranchImm:
		return fmt.Sprintf("%s(%d)", i.Opcode, imm.Target)
	case CallImm:
		return fmt.Sprintf("%s(%d)", i.Opcode, imm.Target)
	case SysCallImm:
		return fmt.Sprintf("%s(%d)", i.Opcode, imm.ID)
	case RawImm:
		return fmt.Sprintf("%s(%d)", i.Opcode, imm.Value)
	case I32Imm:
		return fmt.Sprintf("%s(%d)", i.Opcode, imm.Value)
	case F32Imm:
		return fmt.Sprintf("%s(%s)", i.Opcode, formatF32(imm.Value))
	default:
		return fmt.Sprintf("%s(%v)", i.Opcode, imm)
	}
}

func formatF32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

type instructionJSON struct {
	Op      string  `json:"op"`
	Data    *uint8  `json:"data,omitempty"`
	Operand *uint16 `json:"operand,omitempty"`
	Int     *int32  `json:"int,omitempty"`
	Float   string  `json:"float,omitempty"`
	Bits    *uint32 `json:"bits,omitempty"`
}

// MarshalJSON encodes the instruction as a flat object. Float constants are
// written as strings with their raw bits so NaN and infinities survive.
func (i Instruction) MarshalJSON() ([]byte, error) {
	out := instructionJSON{Op: i.Opcode.String()}
	switch imm := i.Imm.(type) {
	case ByteImm:
		out.Data = &imm.Value
	case MultiImm:
		out.Data = &imm.Count
		out.Operand = &imm.Index
	case VarImm:
		out.Operand = &imm.Index
	case StringImm:
		out.Operand = &imm.Index
	case IndexImm:
		out.Operand = &imm.Index
	case BranchImm:
		out.Operand = &imm.Target
	case CallImm:
		out.Operand = &imm.Target
	case SysCallImm:
		out.Operand = &imm.ID
	case RawImm:
		out.Operand = &imm.Value
	case I32Imm:
		out.Int = &imm.Value
	case F32Imm:
		bits := imm.Bits()
		out.Float = formatF32(imm.Value)
		out.Bits = &bits
	}
	return json.Marshal(out)
}

// DecodeInstructions decodes a standalone instruction stream. The whole of
// code is the word budget, so its length must be even.
func DecodeInstructions(code []byte) ([]Instruction, error) {
	if len(code)%2 != 0 {
		return nil, errors.MalformedStream(int64(len(code)-1),
			fmt.Sprintf("stream length %d is not a whole number of words", len(code)))
	}
	r := binary.NewReader(bytes.NewReader(code))
	return decodeInstructions(r, uint32(len(code)/2))
}

// decodeInstructions reads opcodeCount words from r. On success the reader
// is positioned exactly at the end of the stream.
func decodeInstructions(r *binary.Reader, opcodeCount uint32) ([]Instruction, error) {
	end := r.Position() + int64(opcodeCount)*2
	instrs := make([]Instruction, 0, preallocCount(opcodeCount))

	for r.Position() < end {
		start := r.Position()
		raw, err := r.ReadU16LE()
		if err != nil {
			return nil, readFailure(errors.PhaseInstructions, "instructions", start, err)
		}
		op := Opcode(raw & 0xff)
		data := uint8(raw >> 8)

		shape := op.Shape()
		if shape == ShapeInvalid {
			return nil, errors.UnknownOpcode(start, byte(op))
		}
		if need, left := int64(shape.OperandSize()), end-r.Position(); need > left {
			return nil, errors.OperandOverrun(start, op.String(), need, left)
		}

		instr, err := decodeOperands(r, op, data)
		if err != nil {
			return nil, err
		}
		instrs = append(instrs, instr)
	}

	return instrs, nil
}

// decodeOperands builds the instruction for op, consuming any operand that
// follows the opcode word.
func decodeOperands(r *binary.Reader, op Opcode, data uint8) (Instruction, error) {
	instr := Instruction{Opcode: op}

	switch op.Shape() {
	case ShapeNone:
		return instr, nil
	case ShapeData:
		instr.Imm = ByteImm{Value: data}
		return instr, nil
	}

	start := r.Position()
	if op.Shape() == ShapeDword {
		switch op {
		case OpPushInt:
			v, err := r.ReadI32LE()
			if err != nil {
				return instr, readFailure(errors.PhaseInstructions, "instructions", start, err)
			}
			instr.Imm = I32Imm{Value: v}
		case OpPushFloat:
			v, err := r.ReadF32LE()
			if err != nil {
				return instr, readFailure(errors.PhaseInstructions, "instructions", start, err)
			}
			instr.Imm = F32Imm{Value: v}
		}
		return instr, nil
	}

	w, err := r.ReadU16LE()
	if err != nil {
		return instr, readFailure(errors.PhaseInstructions, "instructions", start, err)
	}

	switch op {
	case OpPushMultipleVars, OpPopAndStoreMultiple:
		instr.Imm = MultiImm{Count: data, Index: w}
	case OpPushVar, OpPushVarIndexed, OpPopAndStore, OpStore, OpStoreIndexed:
		instr.Imm = VarImm{Index: w}
	case OpPushString:
		instr.Imm = StringImm{Index: w}
	case OpSwap, OpSwitch:
		instr.Imm = IndexImm{Index: w}
	case OpBranchTrue, OpBranchFalse, OpBranchTrueNoPop, OpBranchFalseNoPop, OpJump:
		instr.Imm = BranchImm{Target: w}
	case OpCall:
		instr.Imm = CallImm{Target: w}
	case OpSysCall:
		instr.Imm = SysCallImm{ID: w}
	case OpUnk2:
		instr.Imm = RawImm{Value: w}
	default:
		return instr, errors.UnknownOpcode(start-2, byte(op))
	}
	return instr, nil
}

// InstructionOffsets returns the byte offset of each instruction relative
// to the start of the instruction stream.
func (m *Module) InstructionOffsets() []uint32 {
	offsets := make([]uint32, len(m.Instructions))
	var off uint32
	for i, instr := range m.Instructions {
		offsets[i] = off
		off += uint32(instr.Size())
	}
	return offsets
}
