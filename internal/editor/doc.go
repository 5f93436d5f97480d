// Package editor defines the boundary to the host editor.
//
// The types here are interfaces only: the real implementations live in
// the host integration, and the fakes used by tests live in the
// editortest subpackage. Everything the extension registers against the
// host comes back as a disposal handle, which the lifecycle controller
// collects so a host-driven reload can detach cleanly.
package editor
