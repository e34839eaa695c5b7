package view

import (
	"stendconfig/internal/ui/controller"
	"stendconfig/internal/ui/view/dialogs"
)

// Run запускает графическое приложение
func Run(ctrl *controller.MainController, fileDlg *dialogs.WalkFileDialog) error {
	// Создание основного окна
	mw := NewMainWindowView(ctrl, fileDlg)

	// Создание и инициализация окна
	if err := mw.Create(); err != nil {
		return err
	}

	// Запуск главного цикла сообщений
	mw.Run()
	return nil
}
