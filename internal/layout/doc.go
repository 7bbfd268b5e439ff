package layout

// Package layout owns the launcher grid: a flat sequence of elements cut into
// fixed-capacity pages. Every mutation (swap, drop resolution, folder edits,
// reconciliation with discovered applications) runs on a working copy under
// the store lock and is committed only once the page invariant holds, after
// which subscribers receive a snapshot of the new layout.
