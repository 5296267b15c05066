// Package vmhost exposes the kernel inside a sandboxed WebAssembly VM.
//
// New builds a wazero runtime, registers the kernel as a host function under
// module "kernel", and instantiates a synthesized guest module whose exported
// "compute" forwards to that import. Calls through (*VM).Compute therefore
// cross the real VM boundary rather than shortcutting to the kernel.
//
// The VM host's native numbers are IEEE-754 doubles, so iteration counts are
// only exact up to 2^53-1. ComputeNumber takes the host-native float64 form
// and converts it exactly or fails; nothing is clamped or truncated. See
// IterationsFromNumber for the conversion rules.
//
// A VM is not safe for concurrent use. Create one VM per goroutine; the
// underlying kernel is stateless, so parallel VMs agree bit-for-bit.
package vmhost
