package model

// Kind identifies which variant an Element is
type Kind string

const (
	// KindApp is a launchable application
	KindApp Kind = "app"

	// KindFolder is a user-created group of applications
	KindFolder Kind = "folder"

	// KindEmpty is a placeholder occupying a grid slot
	KindEmpty Kind = "empty"
)

// String returns the string representation of Kind
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the known element kinds
func (k Kind) IsValid() bool {
	return k == KindApp || k == KindFolder || k == KindEmpty
}

// IsOccupied returns true for kinds that hold visible content
func (k Kind) IsOccupied() bool {
	return k == KindApp || k == KindFolder
}
