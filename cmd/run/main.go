package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"golang.org/x/term"

	kernelbridge "github.com/wippyai/kernel-bridge"
	"github.com/wippyai/kernel-bridge/kernel"
)

// directName selects the kernel with no binding in between, the path a build
// with every adapter excluded still has.
const directName = "kernel"

type config struct {
	Binding    string  `env:"KERNEL_BINDING" envDefault:"vm"`
	Iterations int64   `env:"KERNEL_ITERATIONS" envDefault:"-1"`
	Param      float64 `env:"KERNEL_PARAM" envDefault:"1.0"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: parse env: %v\n", err)
		os.Exit(1)
	}

	var (
		binding     = flag.String("binding", cfg.Binding, "Binding to call through (vm, lua, kernel)")
		iterations  = flag.Int64("iterations", cfg.Iterations, "Iteration count (non-negative)")
		param       = flag.Float64("param", cfg.Param, "Scalar parameter")
		list        = flag.Bool("list", false, "List bindings in this build and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *list {
		for _, name := range kernelbridge.Bindings() {
			fmt.Println(name)
		}
		fmt.Println(directName)
		return
	}

	// No explicit count on a terminal means the user wants the TUI.
	if *interactive || (*iterations < 0 && term.IsTerminal(int(os.Stdin.Fd()))) {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *iterations < 0 {
		fmt.Fprintln(os.Stderr, "Usage: run -binding <name> -iterations <n> [-param <x>]")
		fmt.Fprintln(os.Stderr, "       run -list")
		fmt.Fprintln(os.Stderr, "       run -i  (interactive mode)")
		os.Exit(1)
	}

	result, err := compute(context.Background(), *binding, uint64(*iterations), *param)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(strconv.FormatFloat(result, 'g', -1, 64))
}

func compute(ctx context.Context, name string, iterations uint64, param float64) (float64, error) {
	if name == directName {
		return kernel.Compute(iterations, param), nil
	}

	b, err := kernelbridge.Open(ctx, name)
	if err != nil {
		return 0, err
	}
	defer b.Close(ctx)

	return b.Compute(ctx, iterations, param)
}
