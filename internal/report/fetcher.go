// Package report builds task reports from a service.Service.
package report

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"todoexport/internal/service"
)

// Fetcher retrieves task reports. It holds no state between calls, so a
// failed Fetch can be retried by calling it again.
type Fetcher struct {
	svc service.Service
	log *zap.Logger
}

// NewFetcher creates a Fetcher over svc. A nil logger discards output.
func NewFetcher(svc service.Service, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{svc: svc, log: logger}
}

// Fetch returns the task report for one user.
//
// The profile is mandatory: any failure looking it up is returned as is
// (a *service.FetchError from the backend). The task list is fetched only
// after the profile succeeds; an empty list yields an empty report.
func (f *Fetcher) Fetch(ctx context.Context, id service.UserID) (service.TaskReport, error) {
	if !id.Valid() {
		return service.TaskReport{}, fmt.Errorf("%w: %d", service.ErrInvalidUserID, int(id))
	}

	profile, err := f.svc.User(ctx, id)
	if err != nil {
		return service.TaskReport{}, err
	}
	// The join key is the requested id, never the payload.
	profile.ID = id

	tasks, err := f.svc.Tasks(ctx, id)
	if err != nil {
		return service.TaskReport{}, err
	}

	report := service.NewTaskReport(profile, tasks)
	f.log.Debug("fetched report",
		zap.Int("user_id", int(id)),
		zap.String("username", profile.Username),
		zap.Int("tasks", len(report.Records)),
	)
	return report, nil
}
