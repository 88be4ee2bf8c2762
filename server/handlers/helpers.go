package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "eoscan/server/errors"
)

// ErrorResponse формат JSON ошибки API
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// SendJSONError отправляет JSON ошибку и логирует её.
// AppError определяет статус ответа, прочие ошибки дают 500 с общим
// сообщением - внутренние детали наружу не выходят.
func SendJSONError(c *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		statusCode = appErr.Code
		message = appErr.Message
	}

	LogError(c.Request.Context(), err, "HTTP error",
		"status_code", statusCode,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	c.JSON(statusCode, ErrorResponse{
		Error:   true,
		Message: message,
	})
}

// HandleNotFound отвечает JSON ошибкой на незарегистрированный маршрут
func HandleNotFound(c *gin.Context) {
	SendJSONError(c, apperrors.NewNotFoundError(
		fmt.Sprintf("route not found: %s %s", c.Request.Method, c.Request.URL.Path), nil))
}
