package model

import (
	leadmodel "github.com/wso2/sales-lead-scoring-service/internal/leads/model"
)

// ScoringResult is the outcome of one scoring run. Scored records are kept
// even when the sink write fails so the caller can still retrieve them.
type ScoringResult struct {
	RunID        string             `json:"run_id"`
	NoData       bool               `json:"no_data"`
	TotalRecords int                `json:"total_records"`
	Scored       []leadmodel.Record `json:"-"`
	Distribution map[string]int     `json:"tier_distribution"`
	SinkWritten  bool               `json:"sink_written"`
	SinkFailure  string             `json:"sink_failure,omitempty"`
}
