package ui

import (
	"fyne.io/fyne/v2/lang"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
	catalog         *catalog.Builder
	printer         *message.Printer
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyHub              = "hub"
	KeyBack             = "back"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyAssetsDirectory  = "assets_directory"
	KeyGridColumns      = "grid_columns"
	KeyCompactTheme     = "compact_theme"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeySettingsSaved    = "settings_saved"
	KeyRestartRequired  = "restart_required"
	KeyImageUnavailable = "image_unavailable"
	KeyGroupNotFound    = "group_not_found"
	KeyItemNotFound     = "item_not_found"
	KeyItemCount        = "item_count"
)

var languageTags = map[string]language.Tag{
	"en": language.English,
	"ru": language.Russian,
	"pt": language.Portuguese,
}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
		catalog:         catalog.NewBuilder(catalog.Fallback(language.English)),
	}

	l.initializeTexts()
	l.registerTexts()
	l.printer = message.NewPrinter(language.English, message.Catalog(l.catalog))
	return l
}

// SetLanguage sets the current language. "system" picks the OS locale when
// it is one of the available languages.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if tag, exists := languageTags[code]; exists {
		l.currentLanguage = code
		l.printer = message.NewPrinter(tag, message.Catalog(l.catalog))
	}
}

// GetText returns localized text for the given key. Unknown keys come back
// unchanged.
func (l *Localization) GetText(key string) string {
	return l.printer.Sprintf(key)
}

// ItemCount returns a pluralized "N items" label
func (l *Localization) ItemCount(n int) string {
	return l.printer.Sprintf(KeyItemCount, n)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

func systemLanguage() string {
	tag, err := language.Parse(lang.SystemLocale().LanguageString())
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	if _, ok := languageTags[base.String()]; ok {
		return base.String()
	}
	return "en"
}

// registerTexts loads the text tables and plural rules into the catalog
func (l *Localization) registerTexts() {
	for code, texts := range l.texts {
		tag := languageTags[code]
		for key, text := range texts {
			_ = l.catalog.SetString(tag, key, text)
		}
	}

	_ = l.catalog.Set(language.English, KeyItemCount, plural.Selectf(1, "%d",
		"=0", "No items",
		"one", "1 item",
		"other", "%d items",
	))
	_ = l.catalog.Set(language.Russian, KeyItemCount, plural.Selectf(1, "%d",
		"=0", "Нет элементов",
		"one", "%d элемент",
		"few", "%d элемента",
		"other", "%d элементов",
	))
	_ = l.catalog.Set(language.Portuguese, KeyItemCount, plural.Selectf(1, "%d",
		"=0", "Nenhum item",
		"one", "%d item",
		"other", "%d itens",
	))
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Interior Hub",
		KeyHub:              "Hub",
		KeyBack:             "Back",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyAssetsDirectory:  "Assets Directory",
		KeyGridColumns:      "Grid Columns",
		KeyCompactTheme:     "Compact Theme",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyRestartRequired:  "Some changes apply after restart",
		KeyImageUnavailable: "Image unavailable",
		KeyGroupNotFound:    "Group not found",
		KeyItemNotFound:     "Item not found",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Интерьерный хаб",
		KeyHub:              "Хаб",
		KeyBack:             "Назад",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyAssetsDirectory:  "Папка ресурсов",
		KeyGridColumns:      "Столбцы сетки",
		KeyCompactTheme:     "Компактная тема",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyBrowse:           "Обзор",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyRestartRequired:  "Часть изменений вступит в силу после перезапуска",
		KeyImageUnavailable: "Изображение недоступно",
		KeyGroupNotFound:    "Группа не найдена",
		KeyItemNotFound:     "Элемент не найден",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Interior Hub",
		KeyHub:              "Início",
		KeyBack:             "Voltar",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyAssetsDirectory:  "Diretório de Recursos",
		KeyGridColumns:      "Colunas da Grade",
		KeyCompactTheme:     "Tema Compacto",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyBrowse:           "Navegar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyRestartRequired:  "Algumas alterações valem após reiniciar",
		KeyImageUnavailable: "Imagem indisponível",
		KeyGroupNotFound:    "Grupo não encontrado",
		KeyItemNotFound:     "Item não encontrado",
	}
}
