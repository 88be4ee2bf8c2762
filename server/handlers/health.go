package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler обработчик проверки работоспособности сервиса
type HealthHandler struct {
	eosProducts int
}

// NewHealthHandler создает новый обработчик health check.
// eosProducts - число продуктов в загруженном справочнике EOS, отдается
// в ответе как признак того, что сервис поднялся с данными.
func NewHealthHandler(eosProducts int) *HealthHandler {
	return &HealthHandler{eosProducts: eosProducts}
}

// HandleHealth проверка работоспособности сервиса
// @Summary Health check
// @Description Возвращает статус сервиса и размер загруженного справочника EOS
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{} "Статус сервиса"
// @Router /health [get]
func (h *HealthHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"eos_products": h.eosProducts,
	})
}
