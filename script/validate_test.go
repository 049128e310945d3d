package script_test

import (
	stderrors "errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/sxscript/errors"
	"github.com/wippyai/sxscript/script"
)

func TestLayout(t *testing.T) {
	f := fullFixture()
	m, err := script.ParseModule(f.bytes())
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}

	spans := m.Layout()
	if len(spans) != 10 {
		t.Fatalf("expected 10 sections, got %d", len(spans))
	}
	if spans[0].Name != "instructions" || spans[0].Offset != script.HeaderSize {
		t.Errorf("first span = %+v", spans[0])
	}
	for i, s := range spans {
		if int64(s.Declared) != s.Offset {
			t.Errorf("span %d (%s): declared 0x%x, offset 0x%x", i, s.Name, s.Declared, s.Offset)
		}
	}
	last := spans[len(spans)-1]
	if last.Offset+last.Size != m.End {
		t.Errorf("layout ends at %d, decode ended at %d", last.Offset+last.Size, m.End)
	}
	if err := m.CheckLayout(); err != nil {
		t.Errorf("CheckLayout: %v", err)
	}
}

func TestCheckLayoutEmptySectionsAtZero(t *testing.T) {
	f := fixture{Code: sampleCode(), StringOffsets: []uint32{4}}
	data := f.bytesWith(func(h *script.Header) {
		h.DebugInfosOffset = 0
		h.FunctionsOffset = 0
	})

	m, err := script.ParseModuleWithOptions(data, script.Options{StrictLayout: true})
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	if err := m.CheckLayout(); err != nil {
		t.Errorf("CheckLayout: %v", err)
	}
}

func TestCheckLayoutMismatch(t *testing.T) {
	m := &script.Module{Header: script.Header{
		OpcodeCount:   2,
		OpcodesOffset: script.HeaderSize + 8,
	}}

	err := m.CheckLayout()
	if !stderrors.Is(err, errors.ErrLayoutMismatch) {
		t.Fatalf("expected layout mismatch, got %v", err)
	}
	var derr *errors.Error
	stderrors.As(err, &derr)
	if derr.Section != "instructions" {
		t.Errorf("section = %q", derr.Section)
	}
	if derr.Value != int64(script.HeaderSize) {
		t.Errorf("value = %v, want %d", derr.Value, script.HeaderSize)
	}
}

func TestLenientLayoutLogsWarning(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	script.SetLogger(zap.New(core))
	defer script.SetLogger(zap.NewNop())

	data := fullFixture().bytesWith(func(h *script.Header) { h.SwitchTablesOffset = 1 })
	if _, err := script.ParseModule(data); err != nil {
		t.Fatalf("ParseModule: %v", err)
	}

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if logs.FilterMessage("decoded instructions").Len() != 1 {
		t.Error("expected instruction debug entry")
	}
}
