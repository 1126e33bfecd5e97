// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"todoexport/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu    sync.RWMutex
	users []service.UserProfile
	tasks map[service.UserID][]service.Task

	// Error injection for testing
	UserErr  map[service.UserID]error
	UsersErr error
	TasksErr map[service.UserID]error

	// Calls records backend calls in order, e.g. "user:1", "tasks:1", "users".
	Calls []string
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{
		tasks:    make(map[service.UserID][]service.Task),
		UserErr:  make(map[service.UserID]error),
		TasksErr: make(map[service.UserID]error),
	}
}

// AddUser adds a user to the fake service.
func (f *FakeService) AddUser(id service.UserID, username string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, service.UserProfile{ID: id, Username: username})
}

// AddTask adds a task to a user.
func (f *FakeService) AddTask(id service.UserID, title string, completed bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[id] = append(f.tasks[id], service.Task{
		Title:     &title,
		Completed: &completed,
	})
}

// AddRawTask adds a task as-is, allowing nil fields.
func (f *FakeService) AddRawTask(id service.UserID, task service.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[id] = append(f.tasks[id], task)
}

// User implements service.Service.
func (f *FakeService) User(ctx context.Context, id service.UserID) (service.UserProfile, error) {
	f.record("user:" + id.String())
	if err := f.UserErr[id]; err != nil {
		return service.UserProfile{}, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return service.UserProfile{}, &service.FetchError{Kind: service.ErrNotFound, URL: "/users/" + id.String()}
}

// Users implements service.Service.
func (f *FakeService) Users(ctx context.Context) ([]service.UserProfile, error) {
	f.record("users")
	if f.UsersErr != nil {
		return nil, f.UsersErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.UserProfile, len(f.users))
	copy(result, f.users)
	return result, nil
}

// Tasks implements service.Service.
func (f *FakeService) Tasks(ctx context.Context, id service.UserID) ([]service.Task, error) {
	f.record("tasks:" + id.String())
	if err := f.TasksErr[id]; err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks[id]))
	copy(result, f.tasks[id])
	return result, nil
}

func (f *FakeService) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, call)
}
