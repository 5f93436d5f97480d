// Package events defines the closed catalog of event types the hub
// carries, each with a statically defined payload struct.
//
// Types follow the hub's dot-notation convention:
//
//	<entity>.<action>        e.g. motif.changed, editor.opened
//	<entity>.<sub>.<action>  e.g. project.roots.changed, file.saved.new
//
// Emitters wrap payloads in the matching struct; subscribers use
// event.On with the same struct for compile-checked handling. Nothing
// outside this package introduces new event types.
package events
