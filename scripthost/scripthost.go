package scripthost

import (
	"context"
	"math"

	"github.com/Shopify/go-lua"
	"go.uber.org/zap"

	"github.com/wippyai/kernel-bridge/errors"
	"github.com/wippyai/kernel-bridge/kernel"
)

// Name is the registry name of this binding.
const Name = "lua"

// Register installs the global compute(iterations, param) function into l.
// Use this to expose the kernel inside an existing interpreter; Host wraps it
// for callers that want a self-contained state.
func Register(l *lua.State) {
	l.Register("compute", computeFn)
}

// computeFn is the Lua-facing entry point. Argument validation failures raise
// Lua errors through the interpreter; the kernel is only reached with a valid
// count. The param argument is deliberately unvalidated so NaN and ±Inf
// propagate into the result.
func computeFn(l *lua.State) int {
	count := lua.CheckNumber(l, 1)
	param := lua.CheckNumber(l, 2)

	iterations, msg := iterationsFromLua(count)
	if msg != "" {
		lua.ArgumentError(l, 1, msg)
	}

	l.PushNumber(kernel.Compute(iterations, param))
	return 1
}

// iterationsFromLua applies the same exact-conversion rules as the VM
// binding. A non-empty message means the value was rejected.
func iterationsFromLua(n float64) (uint64, string) {
	switch {
	case math.IsNaN(n) || math.IsInf(n, 0):
		return 0, "iteration count must be finite"
	case n < 0:
		return 0, "iteration count must be non-negative"
	case math.Trunc(n) != n:
		return 0, "iteration count must be integral"
	case n > float64(kernel.MaxVMSafeIterations):
		return 0, "iteration count exceeds the safe-integer range (2^53-1)"
	}
	return uint64(n), ""
}

// Host owns a Lua state with the compute function registered.
// Not safe for concurrent use.
type Host struct {
	state  *lua.State
	logger *zap.Logger
}

type config struct {
	logger *zap.Logger
}

// Option configures Host construction.
type Option func(*config)

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

// New creates a Host with the standard libraries opened and compute
// registered.
func New(opts ...Option) *Host {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	l := lua.NewState()
	lua.OpenLibraries(l)
	Register(l)

	cfg.logger.Debug("lua binding ready")

	return &Host{state: l, logger: cfg.logger}
}

// Name identifies the binding.
func (h *Host) Name() string { return Name }

// Compute drives one call through the interpreter: the global compute
// function is invoked with host-native number arguments under ProtectedCall,
// so the scripting boundary and its error convention are exercised rather
// than bypassed. Blocks until the loop completes.
func (h *Host) Compute(ctx context.Context, iterations uint64, param float64) (float64, error) {
	if iterations > kernel.MaxVMSafeIterations {
		return 0, errors.New(errors.PhaseMarshal, errors.KindOutOfRange).
			Binding(Name).
			Value(iterations).
			Detail("iteration count exceeds the safe-integer range (2^53-1)").
			Build()
	}

	h.state.Global("compute")
	h.state.PushNumber(float64(iterations))
	h.state.PushNumber(param)

	if err := h.state.ProtectedCall(2, 1, 0); err != nil {
		return 0, errors.Wrap(errors.PhaseCall, errors.KindCallFailed, err, "lua compute call")
	}

	result, ok := h.state.ToNumber(-1)
	h.state.Pop(1)
	if !ok {
		return 0, errors.New(errors.PhaseCall, errors.KindCallFailed).
			Binding(Name).
			Detail("compute returned a non-numeric value").
			Build()
	}
	return result, nil
}

// Do runs a Lua chunk in the host's state. Script errors, including argument
// errors raised by compute, come back as Go errors.
func (h *Host) Do(src string) error {
	return lua.DoString(h.state, src)
}

// Global fetches a named global as a number, for reading script results back
// out in tests and embeddings.
func (h *Host) Global(name string) (float64, bool) {
	h.state.Global(name)
	defer h.state.Pop(1)
	return h.state.ToNumber(-1)
}

// Close drops the state reference. go-lua states hold no external resources,
// so there is nothing else to release.
func (h *Host) Close(ctx context.Context) error {
	h.state = nil
	return nil
}
