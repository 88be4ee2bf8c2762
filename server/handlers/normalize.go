package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"eoscan/pipeline"
	apperrors "eoscan/server/errors"
)

// NormalizeHandler обработчик нормализации одиночных названий ПО
type NormalizeHandler struct {
	processor *pipeline.Processor
}

// NewNormalizeHandler создает новый обработчик нормализации
func NewNormalizeHandler(processor *pipeline.Processor) *NormalizeHandler {
	return &NormalizeHandler{processor: processor}
}

// NormalizeRequest запрос на нормализацию одного названия ПО
type NormalizeRequest struct {
	SoftwareName string `json:"software_name" binding:"required"`
}

// HandleNormalize нормализует одно название ПО и оценивает его риск
// @Summary Нормализовать название ПО
// @Description Прогоняет одно название ПО через полный конвейер: нормализация, поиск EOS, классификация риска
// @Tags process
// @Accept json
// @Produce json
// @Param request body NormalizeRequest true "Название ПО"
// @Success 200 {object} pipeline.Result "Результат обработки"
// @Failure 400 {object} ErrorResponse "Пустое или отсутствующее название"
// @Router /api/normalize [post]
func (h *NormalizeHandler) HandleNormalize(c *gin.Context) {
	var req NormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendJSONError(c, apperrors.NewValidationError("software_name is required", err))
		return
	}

	if strings.TrimSpace(req.SoftwareName) == "" {
		SendJSONError(c, apperrors.NewValidationError("software_name must not be blank", nil))
		return
	}

	result := h.processor.ProcessRow(pipeline.Row{SoftwareName: req.SoftwareName}, time.Now())

	c.JSON(http.StatusOK, result)
}
