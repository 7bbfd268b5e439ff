package platform

// Package platform contains OS integration: launching application bundles,
// revealing them in the file manager, per-user config and data directories,
// default discovery roots, and atomic file replacement.
