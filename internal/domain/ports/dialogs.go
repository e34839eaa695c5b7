package ports

// FileDialog — абстракция системных диалогов выбора файла.
// Сервисы импорта/экспорта работают через этот интерфейс, поэтому
// тестируются без графической подсистемы; реализация на walk живёт
// в слое View.
type FileDialog interface {
	// ShowOpen показывает диалог открытия файла. ok == false означает,
	// что пользователь отменил выбор.
	ShowOpen(title, filter string) (path string, ok bool, err error)

	// ShowSave показывает диалог сохранения с предзаполненным именем.
	ShowSave(title, filter, defaultName string) (path string, ok bool, err error)
}
