package vmhost

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/kernel-bridge/errors"
	"github.com/wippyai/kernel-bridge/kernel"
	"github.com/wippyai/kernel-bridge/vmhost/internal/wasmgen"
)

// Name is the registry name of this binding.
const Name = "vm"

const (
	hostModuleName = "kernel"
	exportName     = "compute"
)

var (
	computeParams  = []api.ValueType{api.ValueTypeI64, api.ValueTypeF64}
	computeResults = []api.ValueType{api.ValueTypeF64}
)

// VM routes compute calls through a sandboxed wazero instance.
// Not safe for concurrent use; create one VM per goroutine.
type VM struct {
	runtime wazero.Runtime
	compute api.Function
	logger  *zap.Logger
}

type config struct {
	logger           *zap.Logger
	memoryLimitPages uint32
}

// Option configures VM construction.
type Option func(*config)

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithMemoryLimitPages caps guest linear memory in 64KB pages. The compute
// guest declares no memory, so this only bounds future guests loaded into the
// same runtime. 0 means the wazero default.
func WithMemoryLimitPages(pages uint32) Option {
	return func(c *config) { c.memoryLimitPages = pages }
}

// hostCompute adapts the raw VM call stack to the kernel: params arrive as
// (i64 iterations, f64 param), the result leaves as f64.
func hostCompute(_ context.Context, _ api.Module, stack []uint64) {
	iterations := stack[0]
	param := api.DecodeF64(stack[1])
	stack[0] = api.EncodeF64(kernel.Compute(iterations, param))
}

// New builds the VM binding: a wazero runtime with the kernel registered as a
// host function and the forwarding guest instantiated.
func New(ctx context.Context, opts ...Option) (*VM, error) {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg.memoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.memoryLimitPages)
	}
	rt := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	_, err := rt.NewHostModuleBuilder(hostModuleName).
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(hostCompute), computeParams, computeResults).
		Export(exportName).
		Instantiate(ctx)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Instantiation("instantiate kernel host module", err)
	}

	builder := wasmgen.NewForwardModuleBuilder(hostModuleName)
	builder.AddFunc(exportName, computeParams, computeResults)

	guest, err := rt.Instantiate(ctx, builder.Build())
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Instantiation("instantiate compute guest", err)
	}

	fn := guest.ExportedFunction(exportName)
	if fn == nil {
		_ = rt.Close(ctx)
		return nil, errors.NotFound(errors.PhaseLoad, "guest export "+exportName)
	}

	cfg.logger.Debug("vm binding ready",
		zap.String("host_module", hostModuleName),
		zap.String("export", exportName))

	return &VM{runtime: rt, compute: fn, logger: cfg.logger}, nil
}

// Name identifies the binding.
func (vm *VM) Name() string { return Name }

// Compute calls the guest export, which forwards to the kernel through the VM
// boundary. iterations above the host's safe-integer range fail before the
// call; param is passed through unvalidated, so NaN and ±Inf propagate into
// the result. The call blocks until the full loop completes.
func (vm *VM) Compute(ctx context.Context, iterations uint64, param float64) (float64, error) {
	if iterations > kernel.MaxVMSafeIterations {
		return 0, errors.New(errors.PhaseMarshal, errors.KindOutOfRange).
			Binding(Name).
			Value(iterations).
			Detail("iteration count exceeds the safe-integer range (2^53-1)").
			Build()
	}

	results, err := vm.compute.Call(ctx, iterations, api.EncodeF64(param))
	if err != nil {
		return 0, errors.Wrap(errors.PhaseCall, errors.KindCallFailed, err, "guest compute call")
	}
	return api.DecodeF64(results[0]), nil
}

// ComputeNumber is the VM-native-number entry point: the iteration count
// arrives in the host's double representation and is converted exactly or
// rejected.
func (vm *VM) ComputeNumber(ctx context.Context, iterations, param float64) (float64, error) {
	n, err := IterationsFromNumber(iterations)
	if err != nil {
		return 0, err
	}
	return vm.Compute(ctx, n, param)
}

// Close tears down the wazero runtime and every module inside it.
func (vm *VM) Close(ctx context.Context) error {
	return vm.runtime.Close(ctx)
}
