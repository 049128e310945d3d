package script

import "github.com/wippyai/sxscript/errors"

// SectionSpan is the position of one section under sequential layout.
type SectionSpan struct {
	Name     string
	Declared uint32 // offset declared in the header
	Offset   int64  // offset implied by sequential decoding
	Count    uint32
	Size     int64 // bytes
}

// Layout returns the sections following the header, in file order, with the
// offsets implied by contiguous sequential layout.
func (m *Module) Layout() []SectionSpan {
	h := m.Header
	spans := []SectionSpan{
		{Name: "instructions", Declared: h.OpcodesOffset, Count: h.OpcodeCount, Size: h.StreamSize()},
		{Name: "debug_infos", Declared: h.DebugInfosOffset, Count: h.DebugInfoCount, Size: int64(h.DebugInfoCount) * DebugInfoSize},
		{Name: "variables", Declared: h.VariablesOffset, Count: h.VariableCount, Size: int64(h.VariableCount) * VariableSize},
		{Name: "statics", Declared: h.StaticsOffset, Count: h.StaticCount, Size: int64(h.StaticCount) * StaticVariableSize},
		{Name: "unks", Declared: h.UnksOffset, Count: h.UnkCount, Size: int64(h.UnkCount) * UnkSize},
		{Name: "functions", Declared: h.FunctionsOffset, Count: h.FunctionCount, Size: int64(h.FunctionCount) * FunctionSize},
		{Name: "variable_lookups", Declared: h.VariableLookupOffset, Count: h.VariableLookupCount, Size: int64(h.VariableLookupCount) * VariableLookupSize},
		{Name: "label_lookups", Declared: h.LabelLookupOffset, Count: h.LabelLookupCount, Size: int64(h.LabelLookupCount) * LabelLookupSize},
		{Name: "switch_tables", Declared: h.SwitchTablesOffset, Count: h.SwitchTableCount, Size: int64(h.SwitchTableCount) * SwitchTableSize},
		{Name: "string_offsets", Declared: h.StringTableOffset, Count: h.StringCount, Size: int64(h.StringCount) * StringOffsetSize},
	}

	off := int64(HeaderSize)
	for i := range spans {
		spans[i].Offset = off
		off += spans[i].Size
	}
	return spans
}

// CheckLayout compares each declared section offset with the offset implied
// by sequential layout and returns the first mismatch. An empty section
// declared at offset zero is accepted.
func (m *Module) CheckLayout() error {
	for _, s := range m.Layout() {
		if s.Count == 0 && s.Declared == 0 {
			continue
		}
		if int64(s.Declared) != s.Offset {
			return errors.LayoutMismatch(s.Name, int64(s.Declared), s.Offset)
		}
	}
	return nil
}
