// Package kernelbridge exposes one pure compute kernel through two host
// bindings that share a single call contract.
//
// # Architecture Overview
//
// The module is organized into small packages with distinct responsibilities:
//
//	kernelbridge/        Root package with the Binding interface and registry
//	├── kernel/          Pure compute routine, no validation, no failure path
//	├── vmhost/          Sandboxed-VM binding (wazero), exact number marshaling
//	├── scripthost/      Scripting-host binding (Shopify/go-lua)
//	├── errors/          Structured error types shared by the bindings
//	└── cmd/run/         CLI driver; build tags select which bindings link in
//
// # Call Contract
//
// Both bindings observe identical semantics: a non-negative iteration count
// and a float64 parameter go in, the kernel's deterministic float64 result
// comes out, bit-identical regardless of the path taken. All validation
// happens at the binding boundary before the kernel runs; each binding
// reports failures in its own host's idiom and nothing else.
//
// # Build Selection
//
// Bindings register themselves from tag-guarded files in cmd/run. The default
// build links only the VM binding; -tags lua adds the scripting binding and
// -tags novm removes the VM one, down to a kernel-only artifact. Selection
// never changes kernel behavior.
//
// # Thread Safety
//
// The kernel is freely callable from concurrent goroutines. A vmhost.VM or
// scripthost.Host instance is single-goroutine; use one instance per worker.
package kernelbridge
