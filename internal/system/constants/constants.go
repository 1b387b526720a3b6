package constants

const ApiBasePath = "/api/v1"

// Cache keys

const LeadsCacheKey = "leads:all"

// Scoring conventions. Score units and threshold units are fixed per
// convention and never mixed.
const (
	ConventionDirect     = "direct"
	ConventionPercentage = "percentage"
)

// Scoring run statuses.
const (
	RunStatusCompleted = "completed"
	RunStatusNoData    = "no_data"
	RunStatusFailed    = "failed"
)

// Funnel stage columns in order. These are behavioral flags on the customer
// records, counted by the insights service.
var FunnelStages = []string{
	"Quote Requested",
	"Application Started",
	"Application Submitted",
	"Application Applied",
}
