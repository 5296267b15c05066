// Package kernel implements the pure compute routine shared by all host
// bindings.
//
// Compute is a deterministic, allocation-free mapping from an iteration count
// and a scalar parameter to a scalar result. It performs no validation: the
// binding layers (vmhost, scripthost) own the conversion and range checks for
// their host's numeric types, and the kernel itself cannot fail. Non-finite
// parameters propagate arithmetically into the result.
//
// Determinism is bit-exact: equal inputs produce identical Float64bits on
// every call path, which the cross-binding tests rely on. The summation order
// inside Compute is therefore part of the contract, not an implementation
// detail.
package kernel
