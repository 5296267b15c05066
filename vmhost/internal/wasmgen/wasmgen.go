package wasmgen

import (
	"github.com/tetratelabs/wazero/api"
)

// ForwardModuleBuilder builds a guest module that imports functions from a
// host module and re-exports a forwarding wrapper for each.
type ForwardModuleBuilder struct {
	hostModuleName string
	funcs          []forwardFunc
}

type forwardFunc struct {
	name        string
	paramTypes  []api.ValueType
	resultTypes []api.ValueType
}

// NewForwardModuleBuilder creates a builder importing from hostModuleName.
func NewForwardModuleBuilder(hostModuleName string) *ForwardModuleBuilder {
	return &ForwardModuleBuilder{hostModuleName: hostModuleName}
}

// AddFunc declares a function to import and re-export under the same name.
func (b *ForwardModuleBuilder) AddFunc(name string, params, results []api.ValueType) {
	b.funcs = append(b.funcs, forwardFunc{
		name:        name,
		paramTypes:  params,
		resultTypes: results,
	})
}

// Build generates the WASM module bytes. Returns nil when no functions were
// declared.
func (b *ForwardModuleBuilder) Build() []byte {
	if len(b.funcs) == 0 {
		return nil
	}

	var wasm []byte

	// Magic and version
	wasm = append(wasm, 0x00, 0x61, 0x73, 0x6d)
	wasm = append(wasm, 0x01, 0x00, 0x00, 0x00)

	wasm = appendSection(wasm, 0x01, b.buildTypeSection())
	wasm = appendSection(wasm, 0x02, b.buildImportSection())
	wasm = appendSection(wasm, 0x03, b.buildFuncSection())
	wasm = appendSection(wasm, 0x07, b.buildExportSection())
	wasm = appendSection(wasm, 0x0a, b.buildCodeSection())

	return wasm
}

func appendSection(wasm []byte, id byte, section []byte) []byte {
	wasm = append(wasm, id)
	wasm = append(wasm, EncodeULEB128(uint32(len(section)))...)
	return append(wasm, section...)
}

// One type per function; import i and forwarding function i share type i.
func (b *ForwardModuleBuilder) buildTypeSection() []byte {
	var section []byte
	section = append(section, EncodeULEB128(uint32(len(b.funcs)))...)

	for _, f := range b.funcs {
		section = append(section, 0x60)
		section = append(section, EncodeULEB128(uint32(len(f.paramTypes)))...)
		for _, t := range f.paramTypes {
			section = append(section, ValTypeToWasm(t))
		}
		section = append(section, EncodeULEB128(uint32(len(f.resultTypes)))...)
		for _, t := range f.resultTypes {
			section = append(section, ValTypeToWasm(t))
		}
	}

	return section
}

func (b *ForwardModuleBuilder) buildImportSection() []byte {
	var section []byte
	section = append(section, EncodeULEB128(uint32(len(b.funcs)))...)

	for i, f := range b.funcs {
		section = appendName(section, b.hostModuleName)
		section = appendName(section, f.name)
		section = append(section, 0x00)
		section = append(section, EncodeULEB128(uint32(i))...)
	}

	return section
}

func (b *ForwardModuleBuilder) buildFuncSection() []byte {
	var section []byte
	section = append(section, EncodeULEB128(uint32(len(b.funcs)))...)
	for i := range b.funcs {
		section = append(section, EncodeULEB128(uint32(i))...)
	}
	return section
}

// Defined function indices follow the imports, so forwarding function i sits
// at index len(funcs)+i.
func (b *ForwardModuleBuilder) buildExportSection() []byte {
	var section []byte
	section = append(section, EncodeULEB128(uint32(len(b.funcs)))...)

	for i, f := range b.funcs {
		section = appendName(section, f.name)
		section = append(section, 0x00)
		section = append(section, EncodeULEB128(uint32(len(b.funcs)+i))...)
	}

	return section
}

// Each body pushes its params and tail-calls the matching import:
// local.get 0..n-1, call i, end.
func (b *ForwardModuleBuilder) buildCodeSection() []byte {
	var section []byte
	section = append(section, EncodeULEB128(uint32(len(b.funcs)))...)

	for i, f := range b.funcs {
		var body []byte
		body = append(body, 0x00) // no locals
		for p := range f.paramTypes {
			body = append(body, 0x20)
			body = append(body, EncodeULEB128(uint32(p))...)
		}
		body = append(body, 0x10)
		body = append(body, EncodeULEB128(uint32(i))...)
		body = append(body, 0x0b)

		section = append(section, EncodeULEB128(uint32(len(body)))...)
		section = append(section, body...)
	}

	return section
}

func appendName(section []byte, name string) []byte {
	section = append(section, EncodeULEB128(uint32(len(name)))...)
	return append(section, []byte(name)...)
}

// EncodeULEB128 encodes an unsigned value in LEB128 format.
func EncodeULEB128(v uint32) []byte {
	var result []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		result = append(result, b)
		if v == 0 {
			break
		}
	}
	return result
}

// ValTypeToWasm converts a wazero value type to WASM encoding.
func ValTypeToWasm(t api.ValueType) byte {
	switch t {
	case api.ValueTypeI32:
		return 0x7f
	case api.ValueTypeI64:
		return 0x7e
	case api.ValueTypeF32:
		return 0x7d
	case api.ValueTypeF64:
		return 0x7c
	default:
		return 0x7f
	}
}
