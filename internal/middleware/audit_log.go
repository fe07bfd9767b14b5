// Package middleware provides audit logging utilities.
package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/warehouse-service/internal/domain/model"
	"github.com/guttosm/warehouse-service/internal/service"
)

// AuditLog logs a data-changing action for audit purposes.
// This should be used for critical actions like order submissions and updates.
func AuditLog(loggingService service.LoggingService, c *gin.Context, action string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["action"] = action

	requestID := GetRequestID(c)
	entry := &model.LogEntry{
		Timestamp: time.Now(),
		Level:     "info",
		Message:   message,
		RequestID: requestID,
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Fields:    fields,
	}

	// Store asynchronously to avoid blocking
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

// AuditLogError logs a failed action for audit purposes.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, action string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["action"] = action

	requestID := GetRequestID(c)
	entry := &model.LogEntry{
		Timestamp: time.Now(),
		Level:     "error",
		Message:   message,
		RequestID: requestID,
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Error:     err.Error(),
		Fields:    fields,
	}

	// Store asynchronously to avoid blocking
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
