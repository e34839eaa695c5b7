package bridge

import "stendconfig/internal/domain/models"

// Конверты ответов моста. Любая ошибка нижележащих слоёв сводится к
// плоской строке Error; отмена диалога — третий исход, отличный и от
// успеха, и от ошибки.

// Result — универсальный конверт операции без полезной нагрузки.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// PortsResult — ответ на перечисление портов.
type PortsResult struct {
	Success bool     `json:"success"`
	Ports   []string `json:"ports,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// ImportResult — ответ на импорт набора параметров.
type ImportResult struct {
	Success    bool                `json:"success"`
	Canceled   bool                `json:"canceled,omitempty"`
	Parameters models.ParameterSet `json:"parameters,omitempty"`
	FilePath   string              `json:"filePath,omitempty"`
	Error      string              `json:"error,omitempty"`
}

// ExportResult — ответ на экспорт набора параметров.
type ExportResult struct {
	Success  bool   `json:"success"`
	Canceled bool   `json:"canceled,omitempty"`
	FilePath string `json:"filePath,omitempty"`
	Error    string `json:"error,omitempty"`
}

func ok() Result {
	return Result{Success: true}
}

func fail(err error) Result {
	return Result{Error: err.Error()}
}
