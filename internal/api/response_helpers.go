// internal/api/response_helpers.go
package api

import (
	"net/http"
	"time"

	apperrors "github.com/Corphon/DocSummarizerMCP/internal/errors"
	"github.com/gin-gonic/gin"
)

// ResponseHelper 响应助手类
type ResponseHelper struct{}

// NewResponseHelper 创建响应助手
func NewResponseHelper() *ResponseHelper {
	return &ResponseHelper{}
}

// Success 成功响应
func (rh *ResponseHelper) Success(c *gin.Context, data interface{}, message ...string) {
	response := &APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
		RequestID: rh.getRequestID(c),
	}

	if len(message) > 0 {
		response.Message = message[0]
	}

	c.JSON(http.StatusOK, response)
}

// ValidationError 参数校验失败响应
func (rh *ResponseHelper) ValidationError(c *gin.Context, message, details string) {
	rh.errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", message, details)
}

// NotFound 资源不存在响应
func (rh *ResponseHelper) NotFound(c *gin.Context, message string) {
	rh.errorResponse(c, http.StatusNotFound, "NOT_FOUND", message, "")
}

// InternalError 服务端错误响应
// 错误详情只进日志，不透传给客户端
func (rh *ResponseHelper) InternalError(c *gin.Context, message string, err error) {
	code := "PROCESSING_ERROR"
	var appErr *apperrors.AppError
	if e, ok := err.(*apperrors.AppError); ok {
		appErr = e
		code = appErr.Code
	}
	rh.errorResponse(c, http.StatusInternalServerError, code, message, "")
}

func (rh *ResponseHelper) errorResponse(c *gin.Context, status int, code, message, details string) {
	c.JSON(status, &APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
		Timestamp: time.Now(),
		RequestID: rh.getRequestID(c),
	})
}

// getRequestID 从上下文取请求ID（由中间件注入）
func (rh *ResponseHelper) getRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
