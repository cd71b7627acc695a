package ui

import (
	"log/slog"
	"slices"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/interior-hub/internal/catalog"
	"github.com/ytget/interior-hub/internal/config"
	"github.com/ytget/interior-hub/internal/model"
	"github.com/ytget/interior-hub/internal/platform"
)

// Notification constants
const (
	RootNotificationAutoHide = 4 * time.Second
)

// PageKind identifies one of the navigable pages
type PageKind int

const (
	PageHub PageKind = iota
	PageGroup
	PageItem
)

// String returns the page name used in logs
func (k PageKind) String() string {
	switch k {
	case PageHub:
		return "hub"
	case PageGroup:
		return "group"
	case PageItem:
		return "item"
	default:
		return "unknown"
	}
}

// page is one entry of the navigation history
type page struct {
	kind PageKind
	id   string
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	source       *catalog.Source
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	history  []page
	sections []*GroupSection

	backBtn   *widget.Button
	titleText *widget.Label
	body      *fyne.Container

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
}

// NewRootUI creates and initializes the main UI over source
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, source *catalog.Source) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		source:       source,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
	}

	ui.applyTheme()
	ui.applyAssetsDirectory()
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.ShowHub()

	slog.Info("UI setup completed", "language", localization.GetCurrentLanguage(), "columns", settings.GetGridColumns())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.backBtn = widget.NewButton(IconBack, ui.GoBack)
	ui.backBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.titleText = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	left := container.NewHBox(ui.backBtn)
	if logo, err := LoadLogoResource(platform.NewAssetResolver(ui.settings.GetAssetsDirectory())); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left.Add(logoImage)
	} else {
		slog.Debug("logo not loaded", "error", err)
	}

	topPanel := container.NewBorder(nil, nil, left, settingsBtn, ui.titleText)

	ui.notificationLabel = widget.NewLabel("")
	ui.notificationContainer = container.NewHBox(widget.NewIcon(theme.InfoIcon()), ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.body = container.NewStack()
	content := container.NewBorder(
		container.NewVBox(topPanel, ui.notificationContainer, widget.NewSeparator()),
		nil,
		nil,
		nil,
		ui.body,
	)
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	hubItem := fyne.NewMenuItem(ui.localization.GetText(KeyHub), ui.ShowHub)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	for _, code := range codes {
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(code)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), hubItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// CurrentPage returns the kind and id of the page on screen
func (ui *RootUI) CurrentPage() (PageKind, string) {
	if len(ui.history) == 0 {
		return PageHub, ""
	}
	p := ui.history[len(ui.history)-1]
	return p.kind, p.id
}

// Sections returns the hub sections currently built
func (ui *RootUI) Sections() []*GroupSection {
	return ui.sections
}

// ShowHub resets navigation to the hub page
func (ui *RootUI) ShowHub() {
	ui.history = []page{{kind: PageHub}}
	ui.render()
}

// ShowGroup navigates to the group page for groupID
func (ui *RootUI) ShowGroup(groupID string) {
	if _, ok := ui.source.Group(groupID); !ok {
		slog.Warn("group not found", "group", groupID)
		ui.showNotification(ui.localization.GetText(KeyGroupNotFound))
		return
	}
	ui.push(page{kind: PageGroup, id: groupID})
}

// ShowItem navigates to the item page for itemID
func (ui *RootUI) ShowItem(itemID string) {
	if _, ok := ui.source.Item(itemID); !ok {
		slog.Warn("item not found", "item", itemID)
		ui.showNotification(ui.localization.GetText(KeyItemNotFound))
		return
	}
	ui.push(page{kind: PageItem, id: itemID})
}

// GoBack returns to the previous page
func (ui *RootUI) GoBack() {
	if len(ui.history) <= 1 {
		return
	}
	ui.history = ui.history[:len(ui.history)-1]
	ui.render()
}

func (ui *RootUI) push(p page) {
	ui.history = append(ui.history, p)
	ui.render()
}

// render builds the page on top of the history
func (ui *RootUI) render() {
	kind, id := ui.CurrentPage()
	columns := ui.mobile.AdaptiveColumns(ui.settings.GetGridColumns())

	var content fyne.CanvasObject
	title := ui.localization.GetText(KeyAppTitle)

	switch kind {
	case PageGroup:
		if group, ok := ui.source.Group(id); ok {
			content = NewGroupPage(group, columns, ui.localization, ui.ShowItem)
			title = group.Title()
		}
	case PageItem:
		if item, ok := ui.source.Item(id); ok {
			content = NewItemPage(item)
			title = item.Title()
		}
	}

	if content == nil {
		// The entry left the source while it was in the history
		if kind != PageHub {
			slog.Warn("page no longer available", "page", kind.String(), "id", id)
			ui.history = []page{{kind: PageHub}}
			kind, id = PageHub, ""
		}
		content = ui.buildHub(columns)
	}

	ui.titleText.SetText(title)
	if len(ui.history) > 1 {
		ui.backBtn.Show()
	} else {
		ui.backBtn.Hide()
	}
	ui.body.Objects = []fyne.CanvasObject{content}
	ui.body.Refresh()
	slog.Debug("page rendered", "page", kind.String(), "id", id)
}

// buildHub creates one section per group. Rebuilding re-binds each group's
// top items to the new section.
func (ui *RootUI) buildHub(columns int) fyne.CanvasObject {
	for _, s := range ui.sections {
		s.Close()
	}
	ui.sections = ui.sections[:0]

	groups, err := ui.source.Groups(catalog.AllGroupsID)
	if err != nil {
		slog.Error("load groups", "error", err)
		return widget.NewLabel(err.Error())
	}

	list := container.NewVBox()
	for _, g := range groups {
		section := NewGroupSection(g, columns, ui.localization)
		section.SetCallbacks(ui.ShowGroup, ui.ShowItem)
		ui.sections = append(ui.sections, section)
		list.Add(section.Container())
	}
	return container.NewVScroll(list)
}

// AddItem appends item to the group with groupID; open hub sections follow
// through the group's top items
func (ui *RootUI) AddItem(groupID string, item *model.Item) error {
	group, ok := ui.source.Group(groupID)
	if !ok {
		return catalog.ErrGroupNotFound
	}
	item.SetImageResolver(platform.NewAssetResolver(ui.settings.GetAssetsDirectory()))
	return group.AddItem(item)
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
	ui.render()
}

// showNotification displays a message under the top panel for a few seconds
func (ui *RootUI) showNotification(message string) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil {
		return
	}
	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()

	time.AfterFunc(RootNotificationAutoHide, func() {
		fyne.Do(ui.notificationContainer.Hide)
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved re-applies every setting the running UI depends on
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.applyTheme()
	ui.applyAssetsDirectory()
	ui.createMenu()
	ui.refreshUITexts()
}

func (ui *RootUI) applyTheme() {
	if ui.settings.GetCompactTheme() {
		ui.app.Settings().SetTheme(NewCompactTheme())
		return
	}
	ui.app.Settings().SetTheme(theme.DefaultTheme())
}

// applyAssetsDirectory creates the assets directory on first run and points
// every image at it
func (ui *RootUI) applyAssetsDirectory() {
	dir := ui.settings.GetAssetsDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		slog.Warn("failed to ensure assets dir", "dir", dir, "error", err)
	}
	ui.source.SetImageResolver(platform.NewAssetResolver(dir))
	slog.Debug("assets directory applied", "dir", dir)
}
