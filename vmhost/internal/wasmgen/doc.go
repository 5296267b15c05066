// Package wasmgen emits the minimal guest module used by the VM binding.
//
// The guest imports each declared function from the host module and
// re-exports a forwarding function with the same name and signature, so a
// call into a guest export crosses the real VM boundary twice: host -> guest
// export -> imported host function.
//
// Section bytes are written directly; the module is small and fixed-shape, so
// there is no dependency on a WAT toolchain.
//
// This package is internal to vmhost and should not be used directly.
package wasmgen
