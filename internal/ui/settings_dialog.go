package ui

import (
	"log/slog"
	"slices"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/interior-hub/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	loc      *Localization
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	assetsDirEntry *widget.Entry
	columnsSelect  *widget.Select
	languageSelect *widget.Select
	compactCheck   *widget.Check

	// language display name -> code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings were written.
func NewSettingsDialog(settings *config.Settings, loc *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		loc:      loc,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Assets directory selection
	sd.assetsDirEntry = widget.NewEntry()
	sd.assetsDirEntry.SetPlaceHolder(sd.loc.GetText(KeyAssetsDirectory))

	browseDirBtn := widget.NewButton(sd.loc.GetText(KeyBrowse), sd.onBrowseDirectory)
	assetsDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.assetsDirEntry)

	var columnOptions []string
	for _, n := range config.GridColumnOptions() {
		columnOptions = append(columnOptions, strconv.Itoa(n))
	}
	sd.columnsSelect = widget.NewSelect(columnOptions, nil)

	// Language selection, shown by display name in a stable order
	sd.languageCodes = make(map[string]string)
	var languageOptions []string
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		languageOptions = append(languageOptions, label)
	}
	slices.Sort(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.compactCheck = widget.NewCheck(sd.loc.GetText(KeyCompactTheme), nil)

	form := widget.NewForm(
		widget.NewFormItem(sd.loc.GetText(KeyAssetsDirectory), assetsDirRow),
		widget.NewFormItem(sd.loc.GetText(KeyGridColumns), sd.columnsSelect),
		widget.NewFormItem(sd.loc.GetText(KeyLanguage), sd.languageSelect),
		widget.NewFormItem("", sd.compactCheck),
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.loc.GetText(KeySettings),
		sd.loc.GetText(KeySave),
		sd.loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.assetsDirEntry.SetText(sd.settings.GetAssetsDirectory())
	sd.columnsSelect.SetSelected(strconv.Itoa(sd.settings.GetGridColumns()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.compactCheck.SetChecked(sd.settings.GetCompactTheme())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.assetsDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.loc.GetText(KeySettings), sd.loc.GetText(KeySettingsSaved), sd.window)
}

// apply writes the form values into settings
func (sd *SettingsDialog) apply() {
	if dir := sd.assetsDirEntry.Text; dir != "" {
		sd.settings.SetAssetsDirectory(dir)
	}

	if sd.columnsSelect.Selected != "" {
		columns, err := strconv.Atoi(sd.columnsSelect.Selected)
		if err == nil {
			err = sd.settings.SetGridColumns(columns)
		}
		if err != nil {
			slog.Warn("grid columns not saved", "value", sd.columnsSelect.Selected, "error", err)
		}
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	sd.settings.SetCompactTheme(sd.compactCheck.Checked)
}
