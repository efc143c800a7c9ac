package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error  *AppError `json:"error"`
	Locked bool      `json:"locked,omitempty"`
}

// GinErrorHandler - обработчик ошибок для Gin
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError - основная логика обработки ошибок для Gin
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}
	if appErr.HTTPCode >= 500 && !h.Debug {
		// Причину 5xx клиенту не отдаем
		appErr = appErr.WithDetails(nil)
	}

	// закрытое портфолио клиент отличает по флагу locked
	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{
		Error:  appErr,
		Locked: appErr.Code == CodePaymentRequired,
	})
}

// debugErrors включается из конфига при старте (SetDebug)
var debugErrors = false

// SetDebug управляет выводом деталей 5xx ошибок
func SetDebug(debug bool) {
	debugErrors = debug
}

// HandleError - быстрая функция-помощник для Gin
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: debugErrors}
	handler.HandleGinError(c, err)
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
