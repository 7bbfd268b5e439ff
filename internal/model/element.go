package model

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ID is the stable identifier of a grid element. It is assigned once when
// the element is created and never reused.
type ID string

// NewID returns a fresh random identifier
func NewID() ID {
	return ID(uuid.NewString())
}

// ParseID validates s as an element identifier
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid element id %q: %w", s, err)
	}
	return ID(u.String()), nil
}

// String returns the string representation of ID
func (id ID) String() string {
	return string(id)
}

// Element is one grid slot. The set of implementations is closed:
// Application, Folder and Empty.
type Element interface {
	ElementID() ID
	Kind() Kind
	isElement()
}

// Application is an installed program shown on the grid
type Application struct {
	ID   ID
	Name string
	Path string // filesystem path, used as the de-duplication key
	Icon string // runtime-only icon handle, never persisted
}

// Folder groups applications under a user-editable name. Folders do not nest.
type Folder struct {
	ID    ID
	Name  string
	Items []Application
}

// Empty is a placeholder that keeps a slot occupied on a page
type Empty struct {
	ID ID
}

// ElementID returns the application's identifier
func (a Application) ElementID() ID {
	return a.ID
}

func (a Application) Kind() Kind {
	return KindApp
}

func (Application) isElement() {}

// ElementID returns the folder's identifier
func (f Folder) ElementID() ID {
	return f.ID
}

func (f Folder) Kind() Kind {
	return KindFolder
}

func (Folder) isElement() {}

func (e Empty) ElementID() ID {
	return e.ID
}

func (e Empty) Kind() Kind {
	return KindEmpty
}

func (Empty) isElement() {}

// NewApplication creates an application element with a fresh ID
func NewApplication(name, path, icon string) Application {
	return Application{ID: NewID(), Name: name, Path: path, Icon: icon}
}

// NewFolder creates a folder element with a fresh ID holding a copy of items
func NewFolder(name string, items ...Application) Folder {
	return Folder{ID: NewID(), Name: name, Items: append([]Application(nil), items...)}
}

// NewEmpty creates a placeholder with a fresh ID
func NewEmpty() Empty {
	return Empty{ID: NewID()}
}

// IndexOf returns the position of the item with the given id, or -1
func (f Folder) IndexOf(id ID) int {
	for i, item := range f.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether the folder holds an item with the given id
func (f Folder) Contains(id ID) bool {
	return f.IndexOf(id) >= 0
}

// Clone returns a copy of the folder that shares no item storage with f
func (f Folder) Clone() Folder {
	f.Items = append([]Application(nil), f.Items...)
	return f
}

// Clone returns a copy of e that can be mutated without affecting e
func Clone(e Element) Element {
	if f, ok := e.(Folder); ok {
		return f.Clone()
	}
	return e
}

// CloneAll deep-copies a sequence of elements
func CloneAll(elements []Element) []Element {
	out := make([]Element, len(elements))
	for i, e := range elements {
		out[i] = Clone(e)
	}
	return out
}

// IsEmpty reports whether e is a placeholder
func IsEmpty(e Element) bool {
	_, ok := e.(Empty)
	return ok
}

// DisplayName returns the label shown under the element's icon
func DisplayName(e Element) string {
	switch v := e.(type) {
	case Application:
		return v.Name
	case Folder:
		return v.Name
	default:
		return ""
	}
}

// Installed is one application found on disk by discovery
type Installed struct {
	Name string
	Path string
	Icon string
}

// NameFromPath derives a display name from a bundle path by stripping the
// directory and extension.
func NameFromPath(path string) string {
	base := filepath.Base(path)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return base
}
