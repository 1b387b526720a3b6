package store

import (
	"fmt"
	"time"

	runmodel "github.com/wso2/sales-lead-scoring-service/internal/runs/model"
	"github.com/wso2/sales-lead-scoring-service/internal/system/database/provider"
	errors2 "github.com/wso2/sales-lead-scoring-service/internal/system/errors"
	"github.com/wso2/sales-lead-scoring-service/internal/system/log"
)

// InsertScoringRun persists one finished run into the run history table.
func InsertScoringRun(run runmodel.ScoringRun) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for recording a scoring run"
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DB_CLIENT_INIT.Code,
			Message:     errors2.DB_CLIENT_INIT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `
		INSERT INTO scoring_runs (
		run_id, started_at, finished_at, total_records, scored_records,
		platinum_count, gold_count, silver_count, bronze_count, status, failure_reason
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (run_id) DO NOTHING;`

	_, err = dbClient.ExecuteQuery(query,
		run.RunID,
		run.StartedAt,
		run.FinishedAt,
		run.TotalRecords,
		run.ScoredRecords,
		run.PlatinumCount,
		run.GoldCount,
		run.SilverCount,
		run.BronzeCount,
		run.Status,
		run.FailureReason,
	)

	if err != nil {
		errorMsg := fmt.Sprintf("Failed to insert scoring run with Id: %s", run.RunID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_SCORING_RUN.Code,
			Message:     errors2.ADD_SCORING_RUN.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info("Scoring run recorded: " + run.RunID)
	return nil
}

// GetScoringRuns returns all recorded runs, most recent first.
func GetScoringRuns() ([]runmodel.ScoringRun, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:    errors2.DB_CLIENT_INIT.Code,
			Message: errors2.DB_CLIENT_INIT.Message,
		}, err)
	}
	defer dbClient.Close()

	query := `
		SELECT run_id, started_at, finished_at, total_records, scored_records,
		       platinum_count, gold_count, silver_count, bronze_count, status, failure_reason
		FROM scoring_runs
		ORDER BY started_at DESC;`

	rows, err := dbClient.ExecuteQuery(query)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:    errors2.FETCH_SCORING_RUNS.Code,
			Message: errors2.FETCH_SCORING_RUNS.Message,
		}, err)
	}

	runs := make([]runmodel.ScoringRun, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, scanRunRow(row))
	}
	return runs, nil
}

// GetScoringRun returns one run by its identifier, or nil when absent.
func GetScoringRun(runID string) (*runmodel.ScoringRun, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:    errors2.DB_CLIENT_INIT.Code,
			Message: errors2.DB_CLIENT_INIT.Message,
		}, err)
	}
	defer dbClient.Close()

	query := `
		SELECT run_id, started_at, finished_at, total_records, scored_records,
		       platinum_count, gold_count, silver_count, bronze_count, status, failure_reason
		FROM scoring_runs
		WHERE run_id = $1;`

	rows, err := dbClient.ExecuteQuery(query, runID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:    errors2.FETCH_SCORING_RUNS.Code,
			Message: errors2.FETCH_SCORING_RUNS.Message,
		}, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	run := scanRunRow(rows[0])
	return &run, nil
}

func scanRunRow(row map[string]interface{}) runmodel.ScoringRun {
	return runmodel.ScoringRun{
		RunID:         asString(row["run_id"]),
		StartedAt:     asTime(row["started_at"]),
		FinishedAt:    asTime(row["finished_at"]),
		TotalRecords:  asInt(row["total_records"]),
		ScoredRecords: asInt(row["scored_records"]),
		PlatinumCount: asInt(row["platinum_count"]),
		GoldCount:     asInt(row["gold_count"]),
		SilverCount:   asInt(row["silver_count"]),
		BronzeCount:   asInt(row["bronze_count"]),
		Status:        asString(row["status"]),
		FailureReason: asString(row["failure_reason"]),
	}
}

func asString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func asInt(value interface{}) int {
	switch v := value.(type) {
	case int64:
		return int(v)
	case int32:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func asTime(value interface{}) time.Time {
	if t, ok := value.(time.Time); ok {
		return t
	}
	return time.Time{}
}
