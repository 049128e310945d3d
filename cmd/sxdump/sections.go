package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wippyai/sxscript/script"
)

var sectionNames = []string{
	"header",
	"instructions",
	"debug_infos",
	"variables",
	"statics",
	"unks",
	"functions",
	"variable_lookups",
	"label_lookups",
	"switch_tables",
	"string_offsets",
	"layout",
}

type moduleDump struct {
	Header          script.Header           `json:"header"`
	Instructions    []script.Instruction    `json:"instructions"`
	DebugInfos      []script.DebugInfo      `json:"debug_infos"`
	Variables       []script.Variable       `json:"variables"`
	StaticVariables []script.StaticVariable `json:"statics"`
	Unks            []script.Unk            `json:"unks"`
	Functions       []script.Function       `json:"functions"`
	VariableLookups []script.VariableLookup `json:"variable_lookups"`
	LabelLookups    []script.LabelLookup    `json:"label_lookups"`
	SwitchTables    []script.SwitchTable    `json:"switch_tables"`
	StringOffsets   []uint32                `json:"string_offsets"`
	End             int64                   `json:"end"`
}

func wholeModule(m *script.Module) moduleDump {
	return moduleDump{
		Header:          m.Header,
		Instructions:    m.Instructions,
		DebugInfos:      m.DebugInfos,
		Variables:       m.Variables,
		StaticVariables: m.StaticVariables,
		Unks:            m.Unks,
		Functions:       m.Functions,
		VariableLookups: m.VariableLookups,
		LabelLookups:    m.LabelLookups,
		SwitchTables:    m.SwitchTables,
		StringOffsets:   m.StringOffsets,
		End:             m.End,
	}
}

// section returns the value of one named section.
func section(m *script.Module, name string) (any, error) {
	switch name {
	case "header":
		return m.Header, nil
	case "instructions":
		return m.Instructions, nil
	case "debug_infos":
		return m.DebugInfos, nil
	case "variables":
		return m.Variables, nil
	case "statics":
		return m.StaticVariables, nil
	case "unks":
		return m.Unks, nil
	case "functions":
		return m.Functions, nil
	case "variable_lookups":
		return m.VariableLookups, nil
	case "label_lookups":
		return m.LabelLookups, nil
	case "switch_tables":
		return m.SwitchTables, nil
	case "string_offsets":
		return m.StringOffsets, nil
	case "layout":
		return m.Layout(), nil
	}
	return nil, fmt.Errorf("unknown section %q (want one of %s)", name, strings.Join(sectionNames, ", "))
}

// sectionLen returns the number of entries shown for a section.
func sectionLen(m *script.Module, name string) int {
	switch name {
	case "header":
		return 1
	case "instructions":
		return len(m.Instructions)
	case "debug_infos":
		return len(m.DebugInfos)
	case "variables":
		return len(m.Variables)
	case "statics":
		return len(m.StaticVariables)
	case "unks":
		return len(m.Unks)
	case "functions":
		return len(m.Functions)
	case "variable_lookups":
		return len(m.VariableLookups)
	case "label_lookups":
		return len(m.LabelLookups)
	case "switch_tables":
		return len(m.SwitchTables)
	case "string_offsets":
		return len(m.StringOffsets)
	case "layout":
		return len(m.Layout())
	}
	return 0
}

func filterByOpcode(instrs []script.Instruction, op script.Opcode) []script.Instruction {
	out := make([]script.Instruction, 0)
	for _, instr := range instrs {
		if instr.Opcode == op {
			out = append(out, instr)
		}
	}
	return out
}

func renderJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return string(data), nil
}
