package dialogs

import (
	"os"
	"path/filepath"
	"sync"

	"stendconfig/internal/domain/ports"

	"github.com/lxn/walk"
)

// WalkFileDialog реализует ports.FileDialog системными диалогами walk.
// Владелец задаётся после создания главного окна.
type WalkFileDialog struct {
	mu    sync.Mutex
	owner walk.Form
}

// NewWalkFileDialog создает новый экземпляр WalkFileDialog без владельца.
func NewWalkFileDialog() *WalkFileDialog {
	return &WalkFileDialog{}
}

// SetOwner привязывает диалоги к главному окну.
func (d *WalkFileDialog) SetOwner(owner walk.Form) {
	d.mu.Lock()
	d.owner = owner
	d.mu.Unlock()
}

func (d *WalkFileDialog) form() walk.Form {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.owner
}

// ShowOpen показывает диалог открытия файла.
func (d *WalkFileDialog) ShowOpen(title, filter string) (string, bool, error) {
	dlg := new(walk.FileDialog)
	dlg.Title = title
	dlg.Filter = filter
	dlg.InitialDirPath = documentsDir()

	ok, err := dlg.ShowOpen(d.form())
	if err != nil {
		return "", false, err
	}
	return dlg.FilePath, ok, nil
}

// ShowSave показывает диалог сохранения с предзаполненным именем файла.
func (d *WalkFileDialog) ShowSave(title, filter, defaultName string) (string, bool, error) {
	dlg := new(walk.FileDialog)
	dlg.Title = title
	dlg.Filter = filter
	dlg.FilePath = defaultName
	dlg.InitialDirPath = documentsDir()

	ok, err := dlg.ShowSave(d.form())
	if err != nil {
		return "", false, err
	}
	return dlg.FilePath, ok, nil
}

// documentsDir возвращает каталог документов пользователя или пустую строку.
func documentsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Documents")
}

var _ ports.FileDialog = (*WalkFileDialog)(nil)
