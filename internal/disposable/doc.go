// Package disposable provides idempotent disposal capabilities and the
// composite Set used to tear down everything the extension registered
// against the host in one step.
//
// Every registration handed out by the hub or the editor boundary is
// expressed as a Disposable. The lifecycle controller owns one Set per
// activation; disposing that set is the only teardown path, which keeps
// repeated host reload cycles leak-free.
package disposable
