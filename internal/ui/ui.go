package ui

import (
	"stendconfig/internal/ui/controller"
	"stendconfig/internal/ui/view"
	"stendconfig/internal/ui/view/dialogs"
)

// Run запускает графическое приложение с переданным контроллером.
func Run(ctrl *controller.MainController, fileDlg *dialogs.WalkFileDialog) error {
	return view.Run(ctrl, fileDlg)
}
