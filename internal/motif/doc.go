// Package motif classifies the active theme as light or dark and
// publishes the change as an edge-triggered event.
package motif
