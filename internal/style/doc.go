// Package style reads and patches host stylesheet declarations. Its one
// job is undoing the icon offset some themes ship, reversibly, so the
// extension can be unloaded without leaving the UI altered.
package style
