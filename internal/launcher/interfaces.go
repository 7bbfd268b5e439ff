package launcher

import (
	"context"

	"github.com/ytget/launchgrid/internal/layout"
	"github.com/ytget/launchgrid/internal/model"
)

// Launchpad defines the interface for the launcher service.
type Launchpad interface {
	Start(ctx context.Context) error
	Refresh(ctx context.Context) error
	Close()

	// SetUpdateCallback registers fn to run after every committed layout change
	SetUpdateCallback(fn func())

	// SetOutcomeCallback registers fn to receive the outcome of every resolved drop
	SetOutcomeCallback(fn func(layout.Outcome))

	HoverEnter(dragged, target model.ID) bool
	HoverExit()
	Drop(dragged, target model.ID) bool
	CancelDrag()

	Delete(id model.ID) bool
	ReturnApp(appID, folderID model.ID) bool
	ReorderInFolder(folderID model.ID, from, to int) bool
	RenameFolder(folderID model.ID, name string) bool
	Swap(page, slotA, slotB int) bool

	Pages(query string) [][]model.Element
	PageSize() int
	Find(id model.ID) (model.Element, bool)
	Launch(id model.ID) error

	SetHoverThreshold(ms int)
}

// Scanner lists the applications installed on this machine.
type Scanner interface {
	Scan(ctx context.Context) ([]model.Installed, error)
	Roots() []string
}

// LaunchFunc starts the application installed at path.
type LaunchFunc func(path string) error
