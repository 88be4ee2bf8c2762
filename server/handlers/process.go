package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"eoscan/importer"
	"eoscan/pipeline"
	apperrors "eoscan/server/errors"
)

// ProcessHandler обработчик загрузки и обработки файлов инвентаризации
type ProcessHandler struct {
	processor      *pipeline.Processor
	maxUploadBytes int64
}

// NewProcessHandler создает новый обработчик обработки инвентаризации
func NewProcessHandler(processor *pipeline.Processor, maxUploadBytes int64) *ProcessHandler {
	return &ProcessHandler{
		processor:      processor,
		maxUploadBytes: maxUploadBytes,
	}
}

// ProcessResponse ответ на обработку файла инвентаризации
type ProcessResponse struct {
	Success bool              `json:"success"`
	Summary pipeline.Summary  `json:"summary"`
	Results []pipeline.Result `json:"results"`
}

// HandleProcessCSV обрабатывает загруженный файл инвентаризации
// @Summary Обработать файл инвентаризации
// @Description Принимает CSV или XLSX файл инвентаризации, нормализует названия ПО, находит данные EOS и классифицирует риск каждой позиции
// @Tags process
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV или XLSX файл с колонками software_name, install_date, source"
// @Success 200 {object} ProcessResponse "Результаты обработки и сводка по уровням риска"
// @Failure 400 {object} ErrorResponse "Файл отсутствует или имеет неверный формат"
// @Failure 413 {object} ErrorResponse "Файл превышает допустимый размер"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/process-csv [post]
func (h *ProcessHandler) HandleProcessCSV(c *gin.Context) {
	start := time.Now()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		SendJSONError(c, apperrors.NewValidationError("no file provided in 'file' form field", err))
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadBytes {
		SendJSONError(c, apperrors.NewPayloadTooLargeError(
			fmt.Sprintf("file exceeds maximum upload size of %d bytes", h.maxUploadBytes), nil))
		return
	}

	filename := strings.ToLower(header.Filename)
	if !strings.HasSuffix(filename, ".csv") && !strings.HasSuffix(filename, ".xlsx") {
		SendJSONError(c, apperrors.NewValidationError(
			fmt.Sprintf("file must be .csv or .xlsx, got: %s", header.Filename), nil))
		return
	}

	var rows []pipeline.Row
	switch importer.DetectInventoryFormat(header.Filename) {
	case "xlsx":
		rows, err = importer.ParseInventoryXLSX(file)
	default:
		rows, err = importer.ParseInventoryCSV(file)
	}
	if err != nil {
		SendJSONError(c, apperrors.NewValidationError(
			fmt.Sprintf("failed to parse inventory file: %v", err), err).WithContext("process-csv"))
		return
	}

	results := h.processor.ProcessRows(rows, time.Now())
	summary := pipeline.Summarize(results)

	// Пустой файл - штатный ответ с нулевой сводкой, не ошибка
	if results == nil {
		results = []pipeline.Result{}
	}
	if summary.Total == 0 {
		LogWarn(c.Request.Context(), "Inventory file contained no data rows",
			"filename", header.Filename)
	}

	LogProcessingComplete(c.Request.Context(), header.Filename,
		summary.Total, summary.Critical, summary.Unknown,
		time.Since(start).Milliseconds())

	c.JSON(http.StatusOK, ProcessResponse{
		Success: true,
		Summary: summary,
		Results: results,
	})
}
