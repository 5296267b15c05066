package wasmgen

import (
	"bytes"
	"context"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

func TestForwardModuleBuilder_EmptyBuild(t *testing.T) {
	b := NewForwardModuleBuilder("kernel")
	if result := b.Build(); result != nil {
		t.Error("expected nil for empty builder")
	}
}

func TestForwardModuleBuilder_AddFunc(t *testing.T) {
	b := NewForwardModuleBuilder("kernel")
	b.AddFunc("compute", []api.ValueType{api.ValueTypeI64, api.ValueTypeF64}, []api.ValueType{api.ValueTypeF64})

	if len(b.funcs) != 1 {
		t.Fatalf("expected 1 func, got %d", len(b.funcs))
	}
	if b.funcs[0].name != "compute" {
		t.Errorf("expected name 'compute', got '%s'", b.funcs[0].name)
	}
}

func TestForwardModuleBuilder_Header(t *testing.T) {
	b := NewForwardModuleBuilder("kernel")
	b.AddFunc("compute", []api.ValueType{api.ValueTypeI64, api.ValueTypeF64}, []api.ValueType{api.ValueTypeF64})

	mod := b.Build()
	if len(mod) < 8 {
		t.Fatalf("module too small: %d bytes", len(mod))
	}
	if !bytes.Equal(mod[:4], []byte{0x00, 0x61, 0x73, 0x6d}) {
		t.Error("invalid WASM magic")
	}
	if !bytes.Equal(mod[4:8], []byte{0x01, 0x00, 0x00, 0x00}) {
		t.Error("invalid WASM version")
	}
}

// TestForwardModuleBuilder_RoundTrip instantiates the emitted module under
// wazero and checks the export forwards to the host function.
func TestForwardModuleBuilder_RoundTrip(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	_, err := rt.NewHostModuleBuilder("kernel").
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
			n := stack[0]
			p := api.DecodeF64(stack[1])
			stack[0] = api.EncodeF64(float64(n) + p)
		}), []api.ValueType{api.ValueTypeI64, api.ValueTypeF64}, []api.ValueType{api.ValueTypeF64}).
		Export("compute").
		Instantiate(ctx)
	if err != nil {
		t.Fatalf("instantiate host module: %v", err)
	}

	b := NewForwardModuleBuilder("kernel")
	b.AddFunc("compute", []api.ValueType{api.ValueTypeI64, api.ValueTypeF64}, []api.ValueType{api.ValueTypeF64})

	guest, err := rt.Instantiate(ctx, b.Build())
	if err != nil {
		t.Fatalf("instantiate guest: %v", err)
	}

	fn := guest.ExportedFunction("compute")
	if fn == nil {
		t.Fatal("guest does not export compute")
	}

	results, err := fn.Call(ctx, 40, api.EncodeF64(2.5))
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if got := api.DecodeF64(results[0]); got != 42.5 {
		t.Errorf("forwarded call = %v, want 42.5", got)
	}
}

func TestEncodeULEB128(t *testing.T) {
	tests := []struct {
		value uint32
		want  []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
	}
	for _, tt := range tests {
		if got := EncodeULEB128(tt.value); !bytes.Equal(got, tt.want) {
			t.Errorf("EncodeULEB128(%d) = %x, want %x", tt.value, got, tt.want)
		}
	}
}

func TestValTypeToWasm(t *testing.T) {
	tests := []struct {
		in   api.ValueType
		want byte
	}{
		{api.ValueTypeI32, 0x7f},
		{api.ValueTypeI64, 0x7e},
		{api.ValueTypeF32, 0x7d},
		{api.ValueTypeF64, 0x7c},
	}
	for _, tt := range tests {
		if got := ValTypeToWasm(tt.in); got != tt.want {
			t.Errorf("ValTypeToWasm(%v) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}
