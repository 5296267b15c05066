//go:build lua

// binding_lua.go links the Lua scripting binding into the artifact when
// building with -tags lua. Independent of the VM toggle; both may be enabled.
package main

import (
	"context"

	kernelbridge "github.com/wippyai/kernel-bridge"
	"github.com/wippyai/kernel-bridge/scripthost"
)

func init() {
	kernelbridge.Register(scripthost.Name, func(ctx context.Context) (kernelbridge.Binding, error) {
		return scripthost.New(), nil
	})
}
