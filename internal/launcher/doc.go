// Package launcher wires the layout store, hover intent, persistence and
// discovery into the single service the UI and the CLI talk to.
package launcher
