package httpx

type ProcessBatchRequest struct {
	FilePath string `json:"file_path"`
}

type BatchResponse struct {
	BatchID   string `json:"batch_id"`
	Total     int    `json:"total"`
	Processed int    `json:"processed"`
	Skipped   int    `json:"skipped"`
}

type RecordLogResponse struct {
	RecordID      string   `json:"record_id"`
	Status        string   `json:"status"`
	Step          string   `json:"step,omitempty"`
	ErrorMessages []string `json:"error_messages,omitempty"`
	TraceID       string   `json:"trace_id,omitempty"`
	UpdatedAt     string   `json:"updated_at"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
