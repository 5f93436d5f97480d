// Package project tracks the host's open project roots and coalesces
// repeated reports into change events on the hub.
package project
