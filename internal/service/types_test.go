package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserID(t *testing.T) {
	tests := []struct {
		in      string
		want    UserID
		wantErr bool
	}{
		{in: "1", want: 1},
		{in: "10", want: 10},
		{in: "007", want: 7},
		{in: "", wantErr: true},
		{in: "0", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "+1", wantErr: true},
		{in: " 1", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1.5", wantErr: true},
		{in: "99999999999999999999999", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseUserID(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidUserID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserID_String(t *testing.T) {
	assert.Equal(t, "42", UserID(42).String())
	assert.True(t, UserID(1).Valid())
	assert.False(t, UserID(0).Valid())
}

func TestNewTaskReport_JoinsUsername(t *testing.T) {
	title := "delectus aut autem"
	done := false
	profile := UserProfile{ID: 1, Username: "Bret"}

	report := NewTaskReport(profile, []Task{
		{Title: &title, Completed: &done},
		{},
	})

	assert.Equal(t, UserID(1), report.UserID)
	assert.Equal(t, "Bret", report.Username)
	require.Len(t, report.Records, 2)
	for _, r := range report.Records {
		assert.Equal(t, "Bret", r.Username)
	}
	assert.Equal(t, &title, report.Records[0].Title)
	assert.Nil(t, report.Records[1].Title)
	assert.Nil(t, report.Records[1].Completed)
}

func TestNewTaskReport_NoTasks(t *testing.T) {
	report := NewTaskReport(UserProfile{ID: 3, Username: "Samantha"}, nil)

	assert.NotNil(t, report.Records)
	assert.Empty(t, report.Records)
}
