package ui

// Package ui contains the Fyne-based desktop user interface for the launcher.
// It renders the paged icon grid, turns pointer drags into hover and drop
// events for the launcher service, and hosts folder popups, search and
// settings. All UI strings are localized via Localization.
