package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/launchgrid/internal/config"
	launchlayout "github.com/ytget/launchgrid/internal/layout"
	"github.com/ytget/launchgrid/internal/launcher"
	"github.com/ytget/launchgrid/internal/model"
	"github.com/ytget/launchgrid/internal/platform"
)

// Options configures the root UI
type Options struct {
	Columns            int
	DefaultThresholdMS int
	Version            string
	Logger             *zap.Logger
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	svc          launcher.Launchpad
	settings     *config.Settings
	localization *Localization
	icons        *IconCache
	logger       *zap.Logger
	opts         Options

	// UI components
	searchEntry *widget.Entry
	settingsBtn *widget.Button
	grid        *fyne.Container
	emptyLabel  *widget.Label
	prevBtn     *widget.Button
	nextBtn     *widget.Button
	dots        *fyne.Container
	swipe       *swipeArea
	folderPopup *FolderPopup

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationGen       int

	page          int
	pageCount     int
	query         string
	tiles         []*Tile
	trayAvailable bool

	drag dragState
}

// dragState follows one icon drag from its first motion event to release
type dragState struct {
	active   bool
	consumed bool // a long hover already resolved this gesture
	source   *Tile
	target   *Tile
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, svc launcher.Launchpad, opts Options) *RootUI {
	if opts.Columns <= 0 {
		opts.Columns = launchlayout.DefaultColumns
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		svc:          svc,
		settings:     settings,
		localization: localization,
		icons:        NewIconCache(),
		logger:       opts.Logger,
		opts:         opts,
		page:         settings.GetLastPage(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	svc.SetHoverThreshold(settings.GetHoverThresholdMS(opts.DefaultThresholdMS))
	svc.SetUpdateCallback(ui.onLayoutChanged)
	svc.SetOutcomeCallback(ui.onDropOutcome)

	ui.setupUI()
	ui.render()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()
	ui.setupTray()

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(IconSearch + " " + ui.localization.GetText(KeySearch))
	ui.searchEntry.OnChanged = ui.onSearchChanged
	ui.searchEntry.OnSubmitted = func(string) {
		ui.launchFirstMatch()
	}

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, nil, ui.settingsBtn,
		container.NewGridWithColumns(3, layout.NewSpacer(), ui.searchEntry, layout.NewSpacer()))

	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignCenter
	ui.notificationContainer = container.NewCenter(ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.grid = container.NewGridWithColumns(ui.opts.Columns)
	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyNoResults))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter
	ui.emptyLabel.Hide()
	ui.swipe = newSwipeArea(ui.onGesture)

	center := container.NewStack(ui.swipe, container.NewPadded(ui.grid), container.NewCenter(ui.emptyLabel))

	ui.prevBtn = widget.NewButton(IconPrev, ui.prevPage)
	ui.prevBtn.Importance = widget.LowImportance
	ui.nextBtn = widget.NewButton(IconNext, ui.nextPage)
	ui.nextBtn.Importance = widget.LowImportance
	ui.dots = container.NewHBox()

	pager := container.NewHBox(
		layout.NewSpacer(),
		ui.prevBtn,
		ui.dots,
		ui.nextBtn,
		layout.NewSpacer(),
	)
	bottom := container.NewVBox(ui.notificationContainer, pager)

	ui.folderPopup = NewFolderPopup(ui.window, ui.localization, ui.svc, ui.icons, ui.launch)

	content := container.NewBorder(topPanel, bottom, nil, nil, center)
	ui.window.SetContent(content)
	ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)
	ui.window.Resize(fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	rescanItem := fyne.NewMenuItem(ui.localization.GetText(KeyRescan), ui.onRescan)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	aboutItem := fyne.NewMenuItem(ui.localization.GetText(KeyAbout), ui.onShowAbout)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), rescanItem, settingsItem),
		languageMenu,
		fyne.NewMenu(ui.localization.GetText(KeyHelp), aboutItem),
	)
	ui.window.SetMainMenu(mainMenu)
}

// setupTray installs a tray menu where the desktop driver supports one, so
// that a hidden launcher can be brought back
func (ui *RootUI) setupTray() {
	desk, ok := ui.app.(desktop.App)
	if !ok {
		return
	}
	desk.SetSystemTrayMenu(fyne.NewMenu(ui.localization.GetText(KeyAppTitle),
		fyne.NewMenuItem(ui.localization.GetText(KeyShow), func() {
			ui.window.Show()
			ui.window.RequestFocus()
		}),
	))
	ui.trayAvailable = true
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.searchEntry.SetPlaceHolder(IconSearch + " " + ui.localization.GetText(KeySearch))
	ui.emptyLabel.SetText(ui.localization.GetText(KeyNoResults))
	ui.folderPopup = NewFolderPopup(ui.window, ui.localization, ui.svc, ui.icons, ui.launch)
	ui.render()
}

// onLayoutChanged runs after every committed layout change
func (ui *RootUI) onLayoutChanged() {
	fyne.Do(func() {
		ui.render()
		ui.folderPopup.Refresh()
	})
}

// render rebuilds the tiles of the current page
func (ui *RootUI) render() {
	pages := ui.svc.Pages(ui.query)
	ui.pageCount = len(pages)
	ui.page = clampPage(ui.page, ui.pageCount)

	var elements []model.Element
	if ui.pageCount > 0 {
		elements = pages[ui.page]
	}
	// a filtered last page is short, keep the grid geometry stable
	for len(elements) < ui.svc.PageSize() && ui.query != "" && len(elements) > 0 {
		elements = append(elements, model.NewEmpty())
	}

	iconSize := float32(ui.settings.GetIconSize())
	ui.tiles = ui.tiles[:0]
	objects := make([]fyne.CanvasObject, 0, len(elements))
	for _, e := range elements {
		tile := NewTile(e, ui.icons, iconSize)
		tile.OnTapped = ui.onTileTapped
		tile.OnSecondary = ui.onTileSecondary
		tile.OnDragged = ui.onTileDragged
		tile.OnDragEnd = ui.onTileDragEnd
		ui.tiles = append(ui.tiles, tile)
		objects = append(objects, tile)
	}
	ui.grid.Objects = objects
	ui.grid.Refresh()

	if ui.query != "" && ui.pageCount == 0 {
		ui.emptyLabel.Show()
	} else {
		ui.emptyLabel.Hide()
	}
	ui.updatePager()
}

// updatePager refreshes the page dots and arrows
func (ui *RootUI) updatePager() {
	ui.dots.Objects = ui.dots.Objects[:0]
	for i := 0; i < ui.pageCount; i++ {
		label := IconDotOff
		if i == ui.page {
			label = IconDotOn
		}
		target := i
		dot := widget.NewButton(label, func() { ui.setPage(target) })
		dot.Importance = widget.LowImportance
		ui.dots.Objects = append(ui.dots.Objects, dot)
	}
	ui.dots.Refresh()

	if ui.page > 0 {
		ui.prevBtn.Enable()
	} else {
		ui.prevBtn.Disable()
	}
	if ui.page < ui.pageCount-1 {
		ui.nextBtn.Enable()
	} else {
		ui.nextBtn.Disable()
	}
}

// clampPage keeps page inside [0, count)
func clampPage(page, count int) int {
	if page >= count {
		page = count - 1
	}
	if page < 0 {
		page = 0
	}
	return page
}

// setPage shows page n
func (ui *RootUI) setPage(n int) {
	n = clampPage(n, ui.pageCount)
	if n == ui.page {
		return
	}
	ui.page = n
	if ui.query == "" {
		ui.settings.SetLastPage(n)
	}
	ui.render()
}

func (ui *RootUI) prevPage() {
	ui.setPage(ui.page - 1)
}

func (ui *RootUI) nextPage() {
	ui.setPage(ui.page + 1)
}

// onGesture flips pages on background swipes
func (ui *RootUI) onGesture(gesture GestureType) {
	switch gesture {
	case GestureSwipeLeft:
		ui.nextPage()
	case GestureSwipeRight:
		ui.prevPage()
	}
}

// onTypedKey handles keys not consumed by a focused widget
func (ui *RootUI) onTypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyLeft, fyne.KeyPageUp:
		ui.prevPage()
	case fyne.KeyRight, fyne.KeyPageDown:
		ui.nextPage()
	case fyne.KeyHome:
		ui.setPage(0)
	case fyne.KeyEnd:
		ui.setPage(ui.pageCount - 1)
	case fyne.KeyEscape:
		if ui.folderPopup.Visible() {
			ui.folderPopup.Hide()
			return
		}
		ui.searchEntry.SetText("")
	}
}

// onSearchChanged filters the grid as the user types
func (ui *RootUI) onSearchChanged(query string) {
	ui.query = strings.TrimSpace(query)
	if ui.query == "" {
		ui.page = ui.settings.GetLastPage()
	} else {
		ui.page = 0
	}
	ui.render()
}

// launchFirstMatch opens the first application matching the search
func (ui *RootUI) launchFirstMatch() {
	if ui.query == "" {
		return
	}
	for _, tile := range ui.tiles {
		switch e := tile.Element().(type) {
		case model.Application:
			ui.launch(e.ID)
			return
		case model.Folder:
			for _, item := range e.Items {
				if launchlayout.MatchesQuery(item.Name, ui.query) {
					ui.launch(item.ID)
					return
				}
			}
		}
	}
}

// onTileTapped opens an application or a folder
func (ui *RootUI) onTileTapped(e model.Element) {
	switch v := e.(type) {
	case model.Application:
		ui.launch(v.ID)
	case model.Folder:
		ui.folderPopup.Show(v.ID)
	}
}

// onTileSecondary shows the context menu for a tile
func (ui *RootUI) onTileSecondary(e model.Element, ev *fyne.PointEvent) {
	var items []*fyne.MenuItem
	switch v := e.(type) {
	case model.Application:
		items = append(items,
			fyne.NewMenuItem(ui.localization.GetText(KeyOpen), func() { ui.launch(v.ID) }),
			fyne.NewMenuItem(ui.localization.GetText(KeyReveal), func() { ui.onReveal(v.Path) }),
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem(ui.localization.GetText(KeyDeleteIcon), func() { ui.svc.Delete(v.ID) }),
		)
	case model.Folder:
		items = append(items,
			fyne.NewMenuItem(ui.localization.GetText(KeyOpen), func() { ui.folderPopup.Show(v.ID) }),
			fyne.NewMenuItem(ui.localization.GetText(KeyRename), func() { ui.onRenameFolder(v) }),
		)
	default:
		return
	}
	widget.ShowPopUpMenuAtPosition(fyne.NewMenu("", items...), ui.window.Canvas(), ev.AbsolutePosition)
}

// onRenameFolder asks for a new folder name
func (ui *RootUI) onRenameFolder(folder model.Folder) {
	entry := widget.NewEntry()
	entry.SetText(folder.Name)
	dialog.ShowForm(ui.localization.GetText(KeyRename), ui.localization.GetText(KeySave), ui.localization.GetText(KeyCancel),
		[]*widget.FormItem{widget.NewFormItem(ui.localization.GetText(KeyFolderName), entry)},
		func(ok bool) {
			if ok {
				ui.svc.RenameFolder(folder.ID, entry.Text)
			}
		}, ui.window)
}

// onReveal shows an application bundle in the file manager
func (ui *RootUI) onReveal(path string) {
	if err := platform.RevealInManager(path); err != nil {
		ui.logger.Warn("failed to reveal application", zap.String("path", path), zap.Error(err))
		ui.showNotification(err.Error())
	}
}

// launch starts an application and optionally hides the launcher
func (ui *RootUI) launch(id model.ID) {
	if err := ui.svc.Launch(id); err != nil {
		ui.logger.Warn("launch failed", zap.String("id", id.String()), zap.Error(err))
		ui.showNotification(ui.localization.GetText(KeyLaunchFailed) + ": " + err.Error())
		return
	}
	if ui.folderPopup.Visible() {
		ui.folderPopup.Hide()
	}
	if ui.trayAvailable && ui.settings.GetHideOnLaunch() {
		ui.window.Hide()
	}
}

// onTileDragged tracks a drag across the grid. Placeholder tiles pass the
// motion to the background so the page can be swiped.
func (ui *RootUI) onTileDragged(e model.Element, ev *fyne.DragEvent) {
	if model.IsEmpty(e) && !ui.drag.active {
		ui.swipe.Dragged(ev)
		return
	}
	if ui.drag.consumed {
		return
	}
	if !ui.drag.active {
		ui.drag = dragState{active: true, source: ui.tileFor(e.ElementID())}
		if ui.drag.source == nil {
			ui.drag = dragState{}
			return
		}
		ui.drag.source.SetDragging(true)
	}

	target := ui.tileAt(ev.AbsolutePosition)
	if target == ui.drag.source || (target != nil && model.IsEmpty(target.Element())) {
		target = nil
	}
	if target == ui.drag.target {
		return
	}

	if ui.drag.target != nil {
		ui.drag.target.SetHighlighted(false)
		ui.svc.HoverExit()
	}
	ui.drag.target = target
	if target != nil {
		target.SetHighlighted(true)
		ui.svc.HoverEnter(ui.drag.source.Element().ElementID(), target.Element().ElementID())
	}
}

// onTileDragEnd resolves the drop, or cancels when released outside a tile
func (ui *RootUI) onTileDragEnd(e model.Element) {
	if model.IsEmpty(e) && !ui.drag.active {
		ui.swipe.DragEnd()
		return
	}
	state := ui.drag
	ui.drag = dragState{}
	if !state.active {
		return
	}

	state.source.SetDragging(false)
	if state.target != nil {
		state.target.SetHighlighted(false)
	}

	switch {
	case state.consumed, state.target == nil:
		ui.svc.CancelDrag()
	default:
		ui.svc.Drop(state.source.Element().ElementID(), state.target.Element().ElementID())
	}
}

// onDropOutcome reports refused drops and ends a drag that a long hover
// already resolved
func (ui *RootUI) onDropOutcome(outcome launchlayout.Outcome) {
	fyne.Do(func() {
		switch outcome.Action {
		case launchlayout.ActionRejected:
			ui.showNotification(ui.localization.GetText(KeyNoFreeSlot))
		case launchlayout.ActionGroup, launchlayout.ActionAppend:
			if ui.drag.active {
				ui.drag.consumed = true
			}
		}
	})
}

// tileFor returns the visible tile showing id
func (ui *RootUI) tileFor(id model.ID) *Tile {
	for _, tile := range ui.tiles {
		if tile.Element().ElementID() == id {
			return tile
		}
	}
	return nil
}

// tileAt returns the tile under the absolute canvas position p
func (ui *RootUI) tileAt(p fyne.Position) *Tile {
	driver := ui.app.Driver()
	rects := make([]slotRect, len(ui.tiles))
	for i, tile := range ui.tiles {
		rects[i] = slotRect{pos: driver.AbsolutePositionForObject(tile), size: tile.Size()}
	}
	if i := hitTest(rects, p); i >= 0 {
		return ui.tiles[i]
	}
	return nil
}

// onRescan scans the application directories in the background
func (ui *RootUI) onRescan() {
	ui.showNotification(ui.localization.GetText(KeyScanning))
	go func() {
		err := ui.svc.Refresh(context.Background())
		if err != nil {
			ui.logger.Warn("rescan failed", zap.Error(err))
			fyne.Do(func() {
				ui.showNotification(ui.localization.GetText(KeyScanFailed) + ": " + err.Error())
			})
			return
		}
		fyne.Do(ui.hideNotification)
	}()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.opts.DefaultThresholdMS, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies changed preferences
func (ui *RootUI) onSettingsSaved() {
	ui.svc.SetHoverThreshold(ui.settings.GetHoverThresholdMS(ui.opts.DefaultThresholdMS))
	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
		return
	}
	ui.render()
}

// onShowAbout shows the about dialog
func (ui *RootUI) onShowAbout() {
	title := ui.localization.GetText(KeyAppTitle)
	message := fmt.Sprintf("%s %s\n\n%s", title, ui.opts.Version, ui.localization.GetText(KeyAboutText))
	dialog.ShowInformation(ui.localization.GetText(KeyAbout), message, ui.window)
}

// showNotification displays a message under the grid for a few seconds
func (ui *RootUI) showNotification(message string) {
	ui.notificationGen++
	gen := ui.notificationGen

	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()

	time.AfterFunc(NotificationAutoHide, func() {
		fyne.Do(func() {
			if gen == ui.notificationGen {
				ui.hideNotification()
			}
		})
	})
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	ui.notificationContainer.Hide()
}

// Page returns the index of the page on screen
func (ui *RootUI) Page() int {
	return ui.page
}

// Tiles returns the tiles of the page on screen
func (ui *RootUI) Tiles() []*Tile {
	return ui.tiles
}

// Icon returns the theme icon used for the window
func Icon() fyne.Resource {
	if logo, err := LoadLogoResource(); err == nil {
		return logo
	}
	return theme.GridIcon()
}
