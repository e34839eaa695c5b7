package main

import (
	"stendconfig/internal/bridge"
	"stendconfig/internal/infrastructure/logger"
	"stendconfig/internal/infrastructure/serialport"
	"stendconfig/internal/infrastructure/storage"
	"stendconfig/internal/service/connection"
	"stendconfig/internal/service/params"
	"stendconfig/internal/ui"
	"stendconfig/internal/ui/controller"
	"stendconfig/internal/ui/view/dialogs"
	"stendconfig/internal/ui/viewmodel"
)

func main() {
	// 1. Initialize logger (infrastructure)
	log := logger.NewStdLogger("StendConfig: ")
	log.Info("Application starting")

	// 2. Infrastructure: serial driver, profile store, workbook repository
	driver := serialport.NewDriver(log)
	profileRepo := storage.NewFileProfileRepository("connection.json")
	workbookRepo := storage.NewXlsxWorkbookRepository()
	fileDlg := dialogs.NewWalkFileDialog()

	// 3. Event hub and host services
	hub := bridge.NewHub()
	defer hub.Close()

	connService := connection.NewService(driver, profileRepo, hub, log)
	paramsService := params.NewService(workbookRepo, fileDlg, log)

	// 4. Bridge between the UI shell and the host services
	br := bridge.New(connService, paramsService, hub)

	// 5. View model and controller
	vm := viewmodel.NewMainViewModel()
	ctrl := controller.NewMainController(vm, br)

	// 6. Run the GUI application
	log.Info("Initialization complete, starting GUI")
	if err := ui.Run(ctrl, fileDlg); err != nil {
		log.Fatal("GUI error: %v", err)
	}
}
