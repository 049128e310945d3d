package script

import "fmt"

// HeaderSize is the encoded size of Header: 26 little-endian uint32 fields.
const HeaderSize = 26 * 4

// Opcode identifies an instruction. It is the low byte of the instruction's
// first 16-bit word.
type Opcode byte

// Opcodes in encoding order.
const (
	OpPushVar             Opcode = 0x00
	OpPushMultipleVars    Opcode = 0x01
	OpPushVarIndexed      Opcode = 0x02
	OpPushInt             Opcode = 0x03
	OpPushFloat           Opcode = 0x04
	OpPushByte            Opcode = 0x05
	OpPushByteAsFloat     Opcode = 0x06
	OpPushString          Opcode = 0x07
	OpPop                 Opcode = 0x08
	OpPopAndStore         Opcode = 0x09
	OpPopAndStoreMultiple Opcode = 0x0A
	OpStore               Opcode = 0x0B
	OpStoreIndexed        Opcode = 0x0C
	OpDup                 Opcode = 0x0D
	OpSwap                Opcode = 0x0E
	OpPushOwner           Opcode = 0x0F

	// Comparison
	OpLessThan   Opcode = 0x10
	OpLessThanEq Opcode = 0x11
	OpGtrThan    Opcode = 0x12
	OpGtrThanEq  Opcode = 0x13
	OpEqual      Opcode = 0x14
	OpNotEqual   Opcode = 0x15

	// Arithmetic
	OpAdd    Opcode = 0x16
	OpSub    Opcode = 0x17
	OpMult   Opcode = 0x18
	OpDiv    Opcode = 0x19
	OpMod    Opcode = 0x1A
	OpNegate Opcode = 0x1B
	OpAbs    Opcode = 0x1C
	OpShiftL Opcode = 0x1D
	OpShiftR Opcode = 0x1E

	// Logical and bitwise
	OpLogicalAnd Opcode = 0x1F
	OpLogicalOr  Opcode = 0x20
	OpLogicalNot Opcode = 0x21
	OpBitwiseAnd Opcode = 0x22
	OpBitwiseOr  Opcode = 0x23
	OpBitwiseXor Opcode = 0x24
	OpBitwiseNot Opcode = 0x25

	// Control flow
	OpBranchTrue       Opcode = 0x26
	OpBranchFalse      Opcode = 0x27
	OpBranchTrueNoPop  Opcode = 0x28
	OpBranchFalseNoPop Opcode = 0x29
	OpJump             Opcode = 0x2A
	OpCall             Opcode = 0x2B
	OpSysCall          Opcode = 0x2C
	OpReturn           Opcode = 0x2D
	OpSwitch           Opcode = 0x2E

	// Purpose not known; operands kept raw.
	OpUnk2 Opcode = 0x2F
	OpUnk3 Opcode = 0x30
	OpUnk4 Opcode = 0x31

	OpEnd    Opcode = 0x32
	OpSleep  Opcode = 0x33
	OpPrint  Opcode = 0x34
	OpTarget Opcode = 0x35
	OpNop    Opcode = 0x36
)

// NumOpcodes is the number of assigned opcode values. Assigned opcodes are
// contiguous from zero.
const NumOpcodes = int(OpNop) + 1

// Shape describes how many bytes follow the opcode word and where an
// instruction's operands live.
type Shape uint8

const (
	// ShapeInvalid marks byte values with no assigned opcode.
	ShapeInvalid Shape = iota
	// ShapeNone: opcode word only.
	ShapeNone
	// ShapeData: operand is the opcode word's high byte.
	ShapeData
	// ShapeDataWord: high byte plus one following 16-bit word.
	ShapeDataWord
	// ShapeWord: one following 16-bit word.
	ShapeWord
	// ShapeDword: one following 32-bit value.
	ShapeDword
)

// OperandSize returns the number of bytes that follow the opcode word.
func (s Shape) OperandSize() int {
	switch s {
	case ShapeDataWord, ShapeWord:
		return 2
	case ShapeDword:
		return 4
	default:
		return 0
	}
}

// Size returns the total encoded instruction size in bytes, or 0 for ShapeInvalid.
func (s Shape) Size() int {
	if s == ShapeInvalid {
		return 0
	}
	return 2 + s.OperandSize()
}

func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeData:
		return "data"
	case ShapeDataWord:
		return "data+word"
	case ShapeWord:
		return "word"
	case ShapeDword:
		return "dword"
	default:
		return "invalid"
	}
}

type opcodeInfo struct {
	name  string
	shape Shape
}

// opcodeTable is total over every byte value; unassigned entries are the
// zero opcodeInfo, whose shape is ShapeInvalid.
var opcodeTable = [256]opcodeInfo{
	OpPushVar:             {"PushVar", ShapeWord},
	OpPushMultipleVars:    {"PushMultipleVars", ShapeDataWord},
	OpPushVarIndexed:      {"PushVarIndexed", ShapeWord},
	OpPushInt:             {"PushInt", ShapeDword},
	OpPushFloat:           {"PushFloat", ShapeDword},
	OpPushByte:            {"PushByte", ShapeData},
	OpPushByteAsFloat:     {"PushByteAsFloat", ShapeData},
	OpPushString:          {"PushString", ShapeWord},
	OpPop:                 {"Pop", ShapeNone},
	OpPopAndStore:         {"PopAndStore", ShapeWord},
	OpPopAndStoreMultiple: {"PopAndStoreMultiple", ShapeDataWord},
	OpStore:               {"Store", ShapeWord},
	OpStoreIndexed:        {"StoreIndexed", ShapeWord},
	OpDup:                 {"Dup", ShapeNone},
	OpSwap:                {"Swap", ShapeWord},
	OpPushOwner:           {"PushOwner", ShapeNone},
	OpLessThan:            {"LessThan", ShapeNone},
	OpLessThanEq:          {"LessThanEq", ShapeNone},
	OpGtrThan:             {"GtrThan", ShapeNone},
	OpGtrThanEq:           {"GtrThanEq", ShapeNone},
	OpEqual:               {"Equal", ShapeNone},
	OpNotEqual:            {"NotEqual", ShapeNone},
	OpAdd:                 {"Add", ShapeNone},
	OpSub:                 {"Sub", ShapeNone},
	OpMult:                {"Mult", ShapeNone},
	OpDiv:                 {"Div", ShapeNone},
	OpMod:                 {"Mod", ShapeNone},
	OpNegate:              {"Negate", ShapeNone},
	OpAbs:                 {"Abs", ShapeNone},
	OpShiftL:              {"ShiftL", ShapeNone},
	OpShiftR:              {"ShiftR", ShapeNone},
	OpLogicalAnd:          {"LogicalAnd", ShapeNone},
	OpLogicalOr:           {"LogicalOr", ShapeNone},
	OpLogicalNot:          {"LogicalNot", ShapeNone},
	OpBitwiseAnd:          {"BitwiseAnd", ShapeNone},
	OpBitwiseOr:           {"BitwiseOr", ShapeNone},
	OpBitwiseXor:          {"BitwiseXor", ShapeNone},
	OpBitwiseNot:          {"BitwiseNot", ShapeNone},
	OpBranchTrue:          {"BranchTrue", ShapeWord},
	OpBranchFalse:         {"BranchFalse", ShapeWord},
	OpBranchTrueNoPop:     {"BranchTrueNoPop", ShapeWord},
	OpBranchFalseNoPop:    {"BranchFalseNoPop", ShapeWord},
	OpJump:                {"Jump", ShapeWord},
	OpCall:                {"Call", ShapeWord},
	OpSysCall:             {"SysCall", ShapeWord},
	OpReturn:              {"Return", ShapeNone},
	OpSwitch:              {"Switch", ShapeWord},
	OpUnk2:                {"Unk2", ShapeWord},
	OpUnk3:                {"Unk3", ShapeNone},
	OpUnk4:                {"Unk4", ShapeNone},
	OpEnd:                 {"End", ShapeNone},
	OpSleep:               {"Sleep", ShapeNone},
	OpPrint:               {"Print", ShapeNone},
	OpTarget:              {"Target", ShapeNone},
	OpNop:                 {"Nop", ShapeNone},
}

// Shape returns the operand shape of op. Unassigned values return ShapeInvalid.
func (op Opcode) Shape() Shape {
	return opcodeTable[op].shape
}

// Known reports whether op is an assigned opcode.
func (op Opcode) Known() bool {
	return opcodeTable[op].shape != ShapeInvalid
}

func (op Opcode) String() string {
	if name := opcodeTable[op].name; name != "" {
		return name
	}
	return fmt.Sprintf("Unknown(0x%02x)", byte(op))
}

// OpcodeByName returns the opcode with the given name.
func OpcodeByName(name string) (Opcode, bool) {
	for i := 0; i < NumOpcodes; i++ {
		if opcodeTable[i].name == name {
			return Opcode(i), true
		}
	}
	return 0, false
}
