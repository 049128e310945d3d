package script

import "github.com/wippyai/sxscript/script/internal/binary"

func readDebugInfo(r *binary.Reader) (DebugInfo, error) {
	var d DebugInfo
	var err error
	if d.FileNameOffset, err = r.ReadU32LE(); err != nil {
		return d, err
	}
	d.LineOffset, err = r.ReadU32LE()
	return d, err
}

func readVariable(r *binary.Reader) (Variable, error) {
	var v Variable
	var err error
	if v.NameOffset, err = r.ReadU32LE(); err != nil {
		return v, err
	}
	if v.VariableType, err = r.ReadU32LE(); err != nil {
		return v, err
	}
	v.Size, err = r.ReadI16LE()
	return v, err
}

func readStaticVariable(r *binary.Reader) (StaticVariable, error) {
	var s StaticVariable
	var err error
	if s.NameOffset, err = r.ReadU32LE(); err != nil {
		return s, err
	}
	for i := range s.Unk {
		if s.Unk[i], err = r.ReadU16LE(); err != nil {
			return s, err
		}
	}
	return s, nil
}

func readUnk(r *binary.Reader) (Unk, error) {
	var u Unk
	var err error
	for i := range u.Unk {
		if u.Unk[i], err = r.ReadU32LE(); err != nil {
			return u, err
		}
	}
	for i := range u.Unk2 {
		if u.Unk2[i], err = r.ReadU16LE(); err != nil {
			return u, err
		}
	}
	return u, nil
}

func readFunction(r *binary.Reader) (Function, error) {
	var f Function
	var err error
	if f.NameOffset, err = r.ReadU32LE(); err != nil {
		return f, err
	}
	if f.NameHash, err = r.ReadU32LE(); err != nil {
		return f, err
	}
	if f.Address, err = r.ReadU32LE(); err != nil {
		return f, err
	}
	f.StackDelta, err = r.ReadI32LE()
	return f, err
}

func readVariableLookup(r *binary.Reader) (VariableLookup, error) {
	var v VariableLookup
	var err error
	if v.Hash, err = r.ReadU32LE(); err != nil {
		return v, err
	}
	v.VariableIndex, err = r.ReadU32LE()
	return v, err
}

func readLabelLookup(r *binary.Reader) (LabelLookup, error) {
	var l LabelLookup
	var err error
	if l.Hash, err = r.ReadU32LE(); err != nil {
		return l, err
	}
	if l.NameOffset, err = r.ReadU32LE(); err != nil {
		return l, err
	}
	l.ProgramCounter, err = r.ReadU32LE()
	return l, err
}

func readSwitchTable(r *binary.Reader) (SwitchTable, error) {
	var s SwitchTable
	var err error
	if s.Value, err = r.ReadU32LE(); err != nil {
		return s, err
	}
	s.ProgramCounter, err = r.ReadU32LE()
	return s, err
}
