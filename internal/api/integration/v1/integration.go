// Package integrationv1 holds the integration.v1 service contract. The types mirror
// integration.proto field for field and travel over the json codec.
package integrationv1

type ProcessBatchRequest struct {
	FilePath string `json:"file_path,omitempty"`
}

func (x *ProcessBatchRequest) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

// ProcessBatchResponse reports the outcome of one batch run. Message is
// always set; the counters are zero when the run failed before processing.
type ProcessBatchResponse struct {
	Message   string `json:"message,omitempty"`
	BatchId   string `json:"batch_id,omitempty"`
	Total     int32  `json:"total,omitempty"`
	Processed int32  `json:"processed,omitempty"`
	Skipped   int32  `json:"skipped,omitempty"`
}

func (x *ProcessBatchResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *ProcessBatchResponse) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *ProcessBatchResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *ProcessBatchResponse) GetProcessed() int32 {
	if x != nil {
		return x.Processed
	}
	return 0
}

func (x *ProcessBatchResponse) GetSkipped() int32 {
	if x != nil {
		return x.Skipped
	}
	return 0
}
