// Package scripthost exposes the kernel to a Lua scripting host.
//
// Register installs a global compute(iterations, param) function into a
// lua.State. Invalid iteration counts raise a Lua argument error inside the
// interpreter, the host's native failure convention; no Go panic or sentinel
// value crosses the boundary. Host, the embedding convenience, owns a state
// with the standard libraries opened and drives calls through it so the
// scripting boundary is exercised even from Go.
//
// Lua numbers are IEEE-754 doubles, so the same 2^53-1 safe-integer bound as
// the VM binding applies on the way in.
//
// A Host is not safe for concurrent use; lua.State is single-threaded.
package scripthost
