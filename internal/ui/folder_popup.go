package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/launchgrid/internal/launcher"
	"github.com/ytget/launchgrid/internal/model"
)

// FolderPopup shows the contents of one folder and the actions available
// on its items
type FolderPopup struct {
	window       fyne.Window
	localization *Localization
	svc          launcher.Launchpad
	icons        *IconCache
	iconSize     float32

	folderID model.ID
	items    []model.Application

	// UI components
	popup     *widget.PopUp
	nameEntry *widget.Entry
	list      *widget.List

	// Callbacks
	onLaunch func(model.ID)
}

// NewFolderPopup creates a hidden folder popup
func NewFolderPopup(window fyne.Window, localization *Localization, svc launcher.Launchpad, icons *IconCache, onLaunch func(model.ID)) *FolderPopup {
	fp := &FolderPopup{
		window:       window,
		localization: localization,
		svc:          svc,
		icons:        icons,
		iconSize:     32,
		onLaunch:     onLaunch,
	}
	fp.createUI()
	return fp
}

// createUI builds the popup content
func (fp *FolderPopup) createUI() {
	fp.nameEntry = widget.NewEntry()
	fp.nameEntry.SetPlaceHolder(fp.localization.GetText(KeyFolderName))
	fp.nameEntry.OnSubmitted = fp.onRename

	renameBtn := widget.NewButtonWithIcon("", theme.DocumentSaveIcon(), func() {
		fp.onRename(fp.nameEntry.Text)
	})
	closeBtn := widget.NewButtonWithIcon("", theme.CancelIcon(), fp.Hide)
	closeBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, nil, container.NewHBox(renameBtn, closeBtn), fp.nameEntry)

	fp.list = widget.NewList(
		func() int {
			return len(fp.items)
		},
		fp.createItemRow,
		fp.updateItemRow,
	)

	content := container.NewBorder(header, nil, nil, nil, fp.list)
	fp.popup = widget.NewModalPopUp(content, fp.window.Canvas())
	fp.popup.Resize(fyne.NewSize(FolderPopupWidth, FolderPopupHeight))
}

// createItemRow creates a template item row
func (fp *FolderPopup) createItemRow() fyne.CanvasObject {
	icon := canvas.NewImageFromResource(theme.ComputerIcon())
	icon.FillMode = canvas.ImageFillContain
	icon.SetMinSize(fyne.NewSize(fp.iconSize, fp.iconSize))

	name := widget.NewButton("", nil)
	name.Alignment = widget.ButtonAlignLeading
	name.Importance = widget.LowImportance

	left := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), nil)
	right := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), nil)
	out := widget.NewButtonWithIcon("", theme.MoveUpIcon(), nil)
	remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
	for _, b := range []*widget.Button{left, right, out, remove} {
		b.Importance = widget.LowImportance
	}

	actions := container.NewHBox(left, right, out, remove)
	return container.NewBorder(nil, nil, icon, actions, container.NewHBox(name, layout.NewSpacer()))
}

// updateItemRow binds a row to the item at index id
func (fp *FolderPopup) updateItemRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(fp.items) {
		return
	}
	item := fp.items[id]
	row := obj.(*fyne.Container)

	var icon *canvas.Image
	var actions, middle *fyne.Container
	for _, o := range row.Objects {
		switch v := o.(type) {
		case *canvas.Image:
			icon = v
		case *fyne.Container:
			if len(v.Objects) == 4 {
				actions = v
			} else {
				middle = v
			}
		}
	}
	if icon == nil || actions == nil || middle == nil {
		return
	}

	icon.Resource = fp.icons.Resource(item.Icon)
	icon.Refresh()

	name := middle.Objects[0].(*widget.Button)
	name.SetText(item.Name)
	name.OnTapped = func() {
		if fp.onLaunch != nil {
			fp.onLaunch(item.ID)
		}
	}

	index, folderID := int(id), fp.folderID
	left := actions.Objects[0].(*widget.Button)
	right := actions.Objects[1].(*widget.Button)
	out := actions.Objects[2].(*widget.Button)
	remove := actions.Objects[3].(*widget.Button)

	left.OnTapped = func() { fp.svc.ReorderInFolder(folderID, index, index-1) }
	right.OnTapped = func() { fp.svc.ReorderInFolder(folderID, index, index+1) }
	out.OnTapped = func() { fp.svc.ReturnApp(item.ID, folderID) }
	remove.OnTapped = func() { fp.svc.Delete(item.ID) }

	if index == 0 {
		left.Disable()
	} else {
		left.Enable()
	}
	if index == len(fp.items)-1 {
		right.Disable()
	} else {
		right.Enable()
	}
}

// Show opens the popup for the folder with folderID
func (fp *FolderPopup) Show(folderID model.ID) {
	fp.folderID = folderID
	if !fp.reload() {
		return
	}
	fp.nameEntry.SetText(fp.name())
	fp.popup.Show()
}

// Hide closes the popup
func (fp *FolderPopup) Hide() {
	fp.folderID = ""
	fp.items = nil
	fp.popup.Hide()
}

// Visible reports whether a folder is currently shown
func (fp *FolderPopup) Visible() bool {
	return fp.folderID != "" && fp.popup.Visible()
}

// Refresh re-reads the folder after a layout change. The popup closes when
// the folder no longer exists, for example after its last item moved out.
func (fp *FolderPopup) Refresh() {
	if fp.folderID == "" {
		return
	}
	if !fp.reload() {
		fp.Hide()
		return
	}
	fp.list.Refresh()
}

// reload copies the folder items from the service
func (fp *FolderPopup) reload() bool {
	element, ok := fp.svc.Find(fp.folderID)
	if !ok {
		return false
	}
	folder, ok := element.(model.Folder)
	if !ok {
		return false
	}
	fp.items = folder.Items
	fp.list.Refresh()
	return true
}

func (fp *FolderPopup) name() string {
	element, ok := fp.svc.Find(fp.folderID)
	if !ok {
		return ""
	}
	return model.DisplayName(element)
}

// onRename applies the name typed in the header
func (fp *FolderPopup) onRename(name string) {
	if fp.folderID == "" {
		return
	}
	if !fp.svc.RenameFolder(fp.folderID, name) {
		fp.nameEntry.SetText(fp.name())
	}
}
