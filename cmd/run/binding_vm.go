//go:build !novm

// binding_vm.go links the sandboxed-VM binding into the artifact. It is part
// of the default build; exclude it with -tags novm.
package main

import (
	"context"

	kernelbridge "github.com/wippyai/kernel-bridge"
	"github.com/wippyai/kernel-bridge/vmhost"
)

func init() {
	kernelbridge.Register(vmhost.Name, func(ctx context.Context) (kernelbridge.Binding, error) {
		return vmhost.New(ctx)
	})
}
