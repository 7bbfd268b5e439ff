package model

// Package model defines the grid element types shared across the app:
// applications, folders and empty placeholders, plus the identifiers that
// keep them stable across reordering and restarts.
