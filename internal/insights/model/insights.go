package model

// KPIReport summarizes the lead funnel for the current record set, matching
// the key metrics shown on the nurture dashboard.
type KPIReport struct {
	TotalLeads            int     `json:"total_leads"`
	QuotesRequested       int     `json:"quotes_requested"`
	ApplicationsStarted   int     `json:"applications_started"`
	ApplicationsSubmitted int     `json:"applications_submitted"`
	ApplicationsApplied   int     `json:"applications_applied"`
	ConversionRate        float64 `json:"conversion_rate"`
	AvgFormCompletionRate float64 `json:"avg_form_completion_rate"`
}

// FunnelStage is one step of the application funnel with its lead count.
type FunnelStage struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

// StateCount is the number of leads in one state.
type StateCount struct {
	State string `json:"state"`
	Count int    `json:"count"`
}
