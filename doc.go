// Package sxscript decodes compiled script bytecode modules.
//
// The modules are produced by an offline compiler for a small stack-based
// virtual machine. This library turns a module file into an immutable
// in-memory value for inspection and analysis tools; it does not execute
// or re-encode scripts.
//
// # Architecture Overview
//
//	sxscript/
//	├── script/          Module decoding: header, instruction stream, record tables
//	├── errors/          Structured error types carrying byte offsets
//	└── cmd/sxdump/      CLI: info, JSON dump and interactive browser
//
// # Quick Start
//
//	m, err := script.ReadFile("cloth.sx", script.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, instr := range m.Instructions {
//	    fmt.Println(instr)
//	}
package sxscript
