package report

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"todoexport/internal/service"
)

// BatchOptions controls FetchAll.
type BatchOptions struct {
	// SkipErrors records per-user failures and moves on instead of aborting.
	SkipErrors bool

	// SkipEmpty leaves users with no tasks out of the result.
	SkipEmpty bool
}

// Failure is a user that could not be exported during a batch.
type Failure struct {
	User service.UserProfile
	Err  error
}

// BatchResult is the outcome of FetchAll.
type BatchResult struct {
	// Reports are in user list order.
	Reports []service.TaskReport

	// Failures is only populated with SkipErrors.
	Failures []Failure
}

// FetchAll exports every user, one at a time, in the order the backend
// lists them. Tasks are joined with the username from the user list.
//
// A failure fetching the user list is always fatal. A failure for a single
// user aborts the batch unless opts.SkipErrors is set.
func (f *Fetcher) FetchAll(ctx context.Context, opts BatchOptions) (BatchResult, error) {
	users, err := f.svc.Users(ctx)
	if err != nil {
		return BatchResult{}, fmt.Errorf("fetch users: %w", err)
	}

	var result BatchResult
	for _, user := range users {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		tasks, err := f.svc.Tasks(ctx, user.ID)
		if err != nil {
			if !opts.SkipErrors {
				return result, fmt.Errorf("fetch tasks for user %d: %w", int(user.ID), err)
			}
			f.log.Warn("skipping user",
				zap.Int("user_id", int(user.ID)),
				zap.String("username", user.Username),
				zap.Error(err),
			)
			result.Failures = append(result.Failures, Failure{User: user, Err: err})
			continue
		}

		if len(tasks) == 0 && opts.SkipEmpty {
			f.log.Debug("skipping user with no tasks", zap.Int("user_id", int(user.ID)))
			continue
		}

		result.Reports = append(result.Reports, service.NewTaskReport(user, tasks))
	}
	return result, nil
}
