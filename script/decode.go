package script

import (
	"bufio"
	"bytes"
	stderrors "errors"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/sxscript/errors"
	"github.com/wippyai/sxscript/script/internal/binary"
)

// maxPrealloc caps slice preallocation driven by header counts, so a corrupt
// count fails on the first missing record instead of on allocation.
const maxPrealloc = 1 << 16

// Options configures decoding.
type Options struct {
	// Magic, when non-zero, is the required header magic.
	Magic uint32
	// Version, when non-zero, is the required header version.
	Version uint32
	// StrictLayout fails the decode when a declared section offset does not
	// match the sequential layout. Otherwise mismatches are only logged.
	StrictLayout bool
}

// DefaultOptions returns default decode configuration: no header checks and
// a lenient layout check.
func DefaultOptions() Options {
	return Options{}
}

// ParseModule decodes a script module from its complete file contents.
func ParseModule(data []byte) (*Module, error) {
	return ParseModuleWithOptions(data, DefaultOptions())
}

// ParseModuleWithOptions decodes a script module using opts.
func ParseModuleWithOptions(data []byte, opts Options) (*Module, error) {
	return decodeModule(binary.NewReader(bytes.NewReader(data)), opts)
}

// ParseReader decodes a script module from a stream. Any read error aborts
// the decode; nothing is retried.
func ParseReader(r io.Reader, opts Options) (*Module, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return decodeModule(binary.NewReader(br), opts)
}

// ReadFile decodes the script module stored at path.
func ReadFile(path string, opts Options) (*Module, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(errors.PhaseRead, errors.KindIOFailure).
			Section(path).
			Detail("open").
			Cause(err).
			Build()
	}
	defer f.Close()

	m, err := ParseReader(f, opts)
	if err != nil {
		return nil, err
	}
	Logger().Debug("decoded script file",
		zap.String("path", path),
		zap.Int64("bytes", m.End))
	return m, nil
}

func decodeModule(r *binary.Reader, opts Options) (*Module, error) {
	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if opts.Magic != 0 && h.Magic != opts.Magic {
		return nil, errors.InvalidMagic(h.Magic, opts.Magic)
	}
	if opts.Version != 0 && h.Version != opts.Version {
		return nil, errors.InvalidVersion(h.Version, opts.Version)
	}

	log := Logger()
	log.Debug("decoded header",
		zap.Uint32("magic", h.Magic),
		zap.Uint32("version", h.Version),
		zap.Uint32("opcode_count", h.OpcodeCount))

	m := &Module{Header: h}

	m.Instructions, err = decodeInstructions(r, h.OpcodeCount)
	if err != nil {
		return nil, err
	}
	log.Debug("decoded instructions",
		zap.Int("instructions", len(m.Instructions)),
		zap.Uint32("words", h.OpcodeCount))

	if err := readSections(r, m); err != nil {
		return nil, err
	}
	m.End = r.Position()

	if err := m.CheckLayout(); err != nil {
		if opts.StrictLayout {
			return nil, err
		}
		log.Warn("section offsets disagree with sequential layout", zap.Error(err))
	}

	return m, nil
}

func readHeader(r *binary.Reader) (Header, error) {
	var h Header
	fields := []*uint32{
		&h.Magic, &h.Version, &h.Status, &h.Size,
		&h.CompiledFileNameOffset, &h.SourceFileNameOffset,
		&h.OpcodeCount, &h.DebugInfoCount, &h.VariableCount, &h.StaticCount,
		&h.UnkCount, &h.FunctionCount, &h.StringCount,
		&h.VariableLookupCount, &h.LabelLookupCount, &h.SwitchTableCount,
		&h.OpcodesOffset, &h.DebugInfosOffset, &h.VariablesOffset,
		&h.StaticsOffset, &h.UnksOffset, &h.FunctionsOffset,
		&h.VariableLookupOffset, &h.LabelLookupOffset,
		&h.SwitchTablesOffset, &h.StringTableOffset,
	}
	for _, f := range fields {
		start := r.Position()
		v, err := r.ReadU32LE()
		if err != nil {
			return Header{}, readFailure(errors.PhaseHeader, "header", start, err)
		}
		*f = v
	}
	return h, nil
}

// readSections reads the fixed-stride record arrays that follow the
// instruction stream, in file order.
func readSections(r *binary.Reader, m *Module) error {
	h := m.Header
	var err error

	if m.DebugInfos, err = readRecords(r, "debug_infos", h.DebugInfoCount, readDebugInfo); err != nil {
		return err
	}
	if m.Variables, err = readRecords(r, "variables", h.VariableCount, readVariable); err != nil {
		return err
	}
	if m.StaticVariables, err = readRecords(r, "statics", h.StaticCount, readStaticVariable); err != nil {
		return err
	}
	if m.Unks, err = readRecords(r, "unks", h.UnkCount, readUnk); err != nil {
		return err
	}
	if m.Functions, err = readRecords(r, "functions", h.FunctionCount, readFunction); err != nil {
		return err
	}
	if m.VariableLookups, err = readRecords(r, "variable_lookups", h.VariableLookupCount, readVariableLookup); err != nil {
		return err
	}
	if m.LabelLookups, err = readRecords(r, "label_lookups", h.LabelLookupCount, readLabelLookup); err != nil {
		return err
	}
	if m.SwitchTables, err = readRecords(r, "switch_tables", h.SwitchTableCount, readSwitchTable); err != nil {
		return err
	}
	if m.StringOffsets, err = readRecords(r, "string_offsets", h.StringCount, (*binary.Reader).ReadU32LE); err != nil {
		return err
	}
	return nil
}

// readRecords repeats read count times. A failure is reported at the offset
// of the record that could not be read.
func readRecords[T any](r *binary.Reader, section string, count uint32, read func(*binary.Reader) (T, error)) ([]T, error) {
	out := make([]T, 0, preallocCount(count))
	for i := uint32(0); i < count; i++ {
		start := r.Position()
		rec, err := read(r)
		if err != nil {
			return nil, readFailure(errors.PhaseRecords, section, start, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// readFailure classifies a reader error: running out of input is
// Truncated, anything else from the source is IoFailure.
func readFailure(phase errors.Phase, section string, offset int64, err error) error {
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.Truncated(phase, section, offset, err)
	}
	return errors.IOFailure(phase, section, offset, err)
}

func preallocCount(n uint32) int {
	if n > maxPrealloc {
		return maxPrealloc
	}
	return int(n)
}
