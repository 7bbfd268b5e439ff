package discovery

// Package discovery finds installed applications under a set of root
// directories and watches those roots so the layout can be reconciled when
// applications are installed or removed.
