package service

import (
	"net/http"

	runmodel "github.com/wso2/sales-lead-scoring-service/internal/runs/model"
	"github.com/wso2/sales-lead-scoring-service/internal/runs/store"
	errors2 "github.com/wso2/sales-lead-scoring-service/internal/system/errors"
)

// RunsServiceInterface exposes the scoring run history.
type RunsServiceInterface interface {
	RecordRun(run runmodel.ScoringRun) error
	GetRuns() ([]runmodel.ScoringRun, error)
	GetRun(runID string) (*runmodel.ScoringRun, error)
}

type RunsService struct{}

var runsService = &RunsService{}

// GetRunsService returns the run history service instance.
func GetRunsService() RunsServiceInterface {
	return runsService
}

// RecordRun persists a finished scoring run.
func (s *RunsService) RecordRun(run runmodel.ScoringRun) error {
	return store.InsertScoringRun(run)
}

// GetRuns returns all recorded runs, most recent first.
func (s *RunsService) GetRuns() ([]runmodel.ScoringRun, error) {
	return store.GetScoringRuns()
}

// GetRun returns one run by id.
func (s *RunsService) GetRun(runID string) (*runmodel.ScoringRun, error) {
	run, err := store.GetScoringRun(runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.ErrRunNotFound.Code,
			Message:     errors2.ErrRunNotFound.Message,
			Description: errors2.ErrRunNotFound.Description,
		}, http.StatusNotFound)
	}
	return run, nil
}
