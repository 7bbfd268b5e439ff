package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySearch            = "search"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyHelp              = "help"
	KeyAbout             = "about"
	KeyLanguage          = "language"
	KeyRescan            = "rescan"
	KeyQuit              = "quit"
	KeyShow              = "show"
	KeyOpen              = "open"
	KeyReveal            = "reveal"
	KeyDeleteIcon        = "delete_icon"
	KeyMoveOut           = "move_out"
	KeyMoveLeft          = "move_left"
	KeyMoveRight         = "move_right"
	KeyRename            = "rename"
	KeyFolderName        = "folder_name"
	KeyIconSize          = "icon_size"
	KeyHoverThreshold    = "hover_threshold"
	KeyHideOnLaunch      = "hide_on_launch"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyNoFreeSlot        = "no_free_slot"
	KeyLaunchFailed      = "launch_failed"
	KeyScanning          = "scanning"
	KeyScanFailed        = "scan_failed"
	KeyNoResults         = "no_results"
	KeyAboutText         = "about_text"
	KeyInterfaceSettings = "interface_settings"
	KeyGridSettings      = "grid_settings"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
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

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "LaunchGrid",
		KeySearch:            "Search",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyHelp:              "Help",
		KeyAbout:             "About",
		KeyLanguage:          "Language",
		KeyRescan:            "Rescan Applications",
		KeyQuit:              "Quit",
		KeyShow:              "Show Launcher",
		KeyOpen:              "Open",
		KeyReveal:            "Show in File Manager",
		KeyDeleteIcon:        "Delete Icon",
		KeyMoveOut:           "Move Out of Folder",
		KeyMoveLeft:          "Move Left",
		KeyMoveRight:         "Move Right",
		KeyRename:            "Rename",
		KeyFolderName:        "Folder name",
		KeyIconSize:          "Icon Size",
		KeyHoverThreshold:    "Hold to Group (ms)",
		KeyHideOnLaunch:      "Hide after launching an app",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyNoFreeSlot:        "No free slot on that page",
		KeyLaunchFailed:      "Could not open application",
		KeyScanning:          "Looking for applications...",
		KeyScanFailed:        "Could not scan applications",
		KeyNoResults:         "No matching applications",
		KeyAboutText:         "A paged application launcher.\nDrag icons to rearrange them, hold one over another to make a folder.",
		KeyInterfaceSettings: "Interface",
		KeyGridSettings:      "Grid",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "LaunchGrid",
		KeySearch:            "Поиск",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyHelp:              "Справка",
		KeyAbout:             "О программе",
		KeyLanguage:          "Язык",
		KeyRescan:            "Обновить список приложений",
		KeyQuit:              "Выход",
		KeyShow:              "Показать",
		KeyOpen:              "Открыть",
		KeyReveal:            "Показать в файловом менеджере",
		KeyDeleteIcon:        "Удалить значок",
		KeyMoveOut:           "Вынести из папки",
		KeyMoveLeft:          "Сдвинуть влево",
		KeyMoveRight:         "Сдвинуть вправо",
		KeyRename:            "Переименовать",
		KeyFolderName:        "Имя папки",
		KeyIconSize:          "Размер значков",
		KeyHoverThreshold:    "Удержание для папки (мс)",
		KeyHideOnLaunch:      "Скрывать после запуска приложения",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyNoFreeSlot:        "На этой странице нет свободного места",
		KeyLaunchFailed:      "Не удалось открыть приложение",
		KeyScanning:          "Поиск приложений...",
		KeyScanFailed:        "Не удалось найти приложения",
		KeyNoResults:         "Ничего не найдено",
		KeyAboutText:         "Постраничный запуск приложений.\nПеретаскивайте значки, удерживайте один над другим, чтобы создать папку.",
		KeyInterfaceSettings: "Интерфейс",
		KeyGridSettings:      "Сетка",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "LaunchGrid",
		KeySearch:            "Pesquisar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyHelp:              "Ajuda",
		KeyAbout:             "Sobre",
		KeyLanguage:          "Idioma",
		KeyRescan:            "Procurar Aplicativos",
		KeyQuit:              "Sair",
		KeyShow:              "Mostrar",
		KeyOpen:              "Abrir",
		KeyReveal:            "Mostrar no Gerenciador de Arquivos",
		KeyDeleteIcon:        "Remover Ícone",
		KeyMoveOut:           "Tirar da Pasta",
		KeyMoveLeft:          "Mover para a Esquerda",
		KeyMoveRight:         "Mover para a Direita",
		KeyRename:            "Renomear",
		KeyFolderName:        "Nome da pasta",
		KeyIconSize:          "Tamanho dos Ícones",
		KeyHoverThreshold:    "Segurar para Agrupar (ms)",
		KeyHideOnLaunch:      "Ocultar após abrir um aplicativo",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyNoFreeSlot:        "Não há espaço livre nessa página",
		KeyLaunchFailed:      "Não foi possível abrir o aplicativo",
		KeyScanning:          "Procurando aplicativos...",
		KeyScanFailed:        "Não foi possível procurar aplicativos",
		KeyNoResults:         "Nenhum aplicativo encontrado",
		KeyAboutText:         "Um lançador de aplicativos em páginas.\nArraste ícones para reorganizá-los, segure um sobre outro para criar uma pasta.",
		KeyInterfaceSettings: "Interface",
		KeyGridSettings:      "Grade",
	}
}
