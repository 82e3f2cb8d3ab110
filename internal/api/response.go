// File: internal/api/response.go
package api

// ErrorResponse 全域錯誤響應模型
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	// detail 錯誤描述
	Detail string `json:"detail" example:"Product not found"`
}

// MessageResponse 一般訊息回應
// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Product deleted successfully"`
}

// HealthResponse 健康檢查回應
// swagger:model api.HealthResponse
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}
