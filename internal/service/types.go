package service

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidUserID is returned by ParseUserID for anything but a positive decimal integer.
var ErrInvalidUserID = errors.New("invalid user id")

// UserID identifies a user in the remote service. Always positive.
type UserID int

// String returns the decimal form used in URLs, file names and JSON keys.
func (id UserID) String() string {
	return strconv.Itoa(int(id))
}

// Valid reports whether id is usable as a lookup key.
func (id UserID) Valid() bool {
	return id > 0
}

// ParseUserID parses a command-line user id.
// Only plain digits are accepted ("+1", " 1" and "0x1" are rejected).
func ParseUserID(s string) (UserID, error) {
	if s == "" {
		return 0, ErrInvalidUserID
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %s", ErrInvalidUserID, s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidUserID, s)
	}
	return UserID(n), nil
}

// UserProfile is a user as returned by the user lookup endpoint.
type UserProfile struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
}

// Task is a raw task item. Title and Completed are nil when the
// payload omits them.
type Task struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// TaskRecord is a task joined with its owner's username.
type TaskRecord struct {
	Title     *string
	Completed *bool
	Username  string
}

// TaskReport is the ordered set of task records for one user.
type TaskReport struct {
	UserID   UserID
	Username string
	Records  []TaskRecord
}

// NewTaskReport joins tasks with the given profile.
// Order is preserved; every record carries profile.Username.
func NewTaskReport(profile UserProfile, tasks []Task) TaskReport {
	records := make([]TaskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, TaskRecord{
			Title:     t.Title,
			Completed: t.Completed,
			Username:  profile.Username,
		})
	}
	return TaskReport{
		UserID:   profile.ID,
		Username: profile.Username,
		Records:  records,
	}
}
