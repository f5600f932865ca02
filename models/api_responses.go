package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ApiResponse is the envelope every gateway endpoint returns. Success is the
// sole error signal the dashboard understands; Message carries the
// user-visible text either way.
type ApiResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Meta    *Pagination  `json:"meta,omitempty"`
	Rate    *RateLimiter `json:"rate_limit,omitempty"`
}

type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"10"`
	Total      int `json:"total" example:"42"`
	TotalPages int `json:"total_pages" example:"5"`
}

type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// helper to fetch rate limiter info from Gin context
func getRateFromContext(c *gin.Context) *RateLimiter {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get("rateLimiter"); exists {
		if rl, ok := rate.(*RateLimiter); ok {
			return rl
		}
	}
	return nil
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	return ApiResponse{
		Success: true,
		Message: message,
		Data:    data,
		Rate:    getRateFromContext(c),
	}
}

func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	return ApiResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
		Rate:    getRateFromContext(c),
	}
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	return ApiResponse{
		Success: false,
		Message: message,
		Rate:    getRateFromContext(c),
	}
}
