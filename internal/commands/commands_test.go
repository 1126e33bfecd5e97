package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoexport/internal/commands"
	"todoexport/internal/config"
	"todoexport/internal/exitcode"
	"todoexport/internal/output"
	"todoexport/internal/service"
	"todoexport/internal/testutil"
)

// runCommand is a helper to run a command with FakeService.
// Export files land in the returned output directory.
func runCommand(t *testing.T, cmd commands.Command, svc *testutil.FakeService, args []string, quiet bool) (stdout, stderr string, code int, outDir string) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := config.Default()
	cfg.Dir = t.TempDir()
	cfg.OutputDir = t.TempDir()
	cfg.Quiet = quiet

	var s service.Service
	if svc != nil {
		s = svc
	}

	ctx := context.Background()
	code = cmd.Run(ctx, cfg, s, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code, cfg.OutputDir
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code, _ := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "todoexport 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code, _ := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("help output should contain 'Usage:'")
	}
}

// Tests for export command
func TestExportCommand_Example(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddUser(1, "Bret")
	svc.AddTask(1, "delectus aut autem", false)

	stdout, stderr, code, dir := runCommand(t, &commands.ExportCmd{}, svc, []string{"1"}, false)

	require.Equal(t, exitcode.Success, code, stderr)
	assert.Empty(t, stderr)

	path := filepath.Join(dir, "1.json")
	assert.Equal(t, "Data for employee ID 1 has been exported to "+path+"\n", stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"1": [{"task": "delectus aut autem", "completed": false, "username": "Bret"}]}`, string(data))
}

func TestExportCommand_NTasksSameUsername(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddUser(3, "Samantha")
	for _, title := range []string{"fugiat veniam minus", "et porro tempora", "laboriosam mollitia"} {
		svc.AddTask(3, title, true)
	}

	_, stderr, code, dir := runCommand(t, &commands.ExportCmd{}, svc, []string{"3"}, true)
	require.Equal(t, exitcode.Success, code, stderr)

	rep, err := output.ReadUserReport(filepath.Join(dir, "3.json"))
	require.NoError(t, err)
	assert.Equal(t, service.UserID(3), rep.UserID)
	require.Len(t, rep.Records, 3)
	for _, r := range rep.Records {
		assert.Equal(t, "Samantha", r.Username)
	}
}

func TestExportCommand_NoTasks(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddUser(5, "Kamren")

	_, stderr, code, dir := runCommand(t, &commands.ExportCmd{}, svc, []string{"5"}, true)
	require.Equal(t, exitcode.Success, code, stderr)

	data, err := os.ReadFile(filepath.Join(dir, "5.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"5": []}`, string(data))
}

func TestExportCommand_Quiet(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddUser(1, "Bret")

	stdout, _, code, _ := runCommand(t, &commands.ExportCmd{}, svc, []string{"1"}, true)

	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stdout)
}

func TestExportCommand_BadArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "missing", args: nil, wantErr: "error: user id required\n"},
		{name: "non-numeric", args: []string{"abc"}, wantErr: "error: invalid user id: abc\n"},
		{name: "zero", args: []string{"0"}, wantErr: "error: invalid user id: 0\n"},
		{name: "decimal", args: []string{"1.5"}, wantErr: "error: invalid user id: 1.5\n"},
		{name: "extra", args: []string{"1", "2"}, wantErr: "error: too many arguments: [2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := testutil.NewFakeService()
			svc.AddUser(1, "Bret")

			_, stderr, code, dir := runCommand(t, &commands.ExportCmd{}, svc, tt.args, false)

			assert.Equal(t, exitcode.UserError, code)
			assert.True(t, strings.HasPrefix(stderr, tt.wantErr), "stderr: %q", stderr)
			assert.Contains(t, stderr, "usage: ")
			assert.Empty(t, listDir(t, dir), "no file may be written")
			assert.Empty(t, svc.Calls, "no request may be made")
		})
	}
}

func TestExportCommand_NotFound(t *testing.T) {
	svc := testutil.NewFakeService()

	_, stderr, code, dir := runCommand(t, &commands.ExportCmd{}, svc, []string{"11"}, false)

	assert.Equal(t, exitcode.BackendError, code)
	assert.Contains(t, stderr, "error: backend error: not found")
	assert.Empty(t, listDir(t, dir))
}

func TestExportCommand_FetchErrorsWriteNothing(t *testing.T) {
	for _, kind := range []error{service.ErrTransport, service.ErrEmptyResponse, service.ErrMalformedJSON, service.ErrMissingField} {
		t.Run(kind.Error(), func(t *testing.T) {
			svc := testutil.NewFakeService()
			svc.AddUser(1, "Bret")
			svc.UserErr[1] = &service.FetchError{Kind: kind}

			_, stderr, code, dir := runCommand(t, &commands.ExportCmd{}, svc, []string{"1"}, false)

			assert.Equal(t, exitcode.BackendError, code)
			assert.Contains(t, stderr, kind.Error())
			assert.Empty(t, listDir(t, dir))
		})
	}
}

func TestExportCommand_WriteError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddUser(1, "Bret")

	var outBuf, errBuf bytes.Buffer
	cfg := config.Default()
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	cfg.OutputDir = filepath.Join(blocker, "sub")

	code := (&commands.ExportCmd{}).Run(context.Background(), cfg, svc, []string{"1"}, &outBuf, &errBuf)

	assert.Equal(t, exitcode.WriteError, code)
	assert.Contains(t, errBuf.String(), "error: write ")
}

// Tests for all command
func allService() *testutil.FakeService {
	svc := testutil.NewFakeService()
	svc.AddUser(1, "Bret")
	svc.AddUser(2, "Antonette")
	svc.AddUser(3, "Samantha")
	svc.AddTask(1, "delectus aut autem", false)
	svc.AddTask(3, "fugiat veniam minus", true)
	return svc
}

func TestAllCommand(t *testing.T) {
	svc := allService()
	cmd := &commands.AllCmd{}

	stdout, stderr, code, dir := runCommand(t, cmd, svc, nil, false)
	require.Equal(t, exitcode.Success, code, stderr)

	path := filepath.Join(dir, config.DefaultAllOutputFile)
	assert.Equal(t, "Data for all employees has been exported to "+path+"\n", stdout)

	reports, err := output.ReadAllReports(path)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, service.UserID(1), reports[0].UserID)
	assert.Equal(t, "Bret", reports[0].Records[0].Username)
	assert.Empty(t, reports[1].Records)
	assert.Equal(t, "Samantha", reports[2].Username)
}

func TestAllCommand_OutFlagAndSkipEmpty(t *testing.T) {
	svc := allService()
	cmd := &commands.AllCmd{}
	out := filepath.Join(t.TempDir(), "everyone.json")
	cmd.SetOptions(out, false, true)

	_, stderr, code, _ := runCommand(t, cmd, svc, nil, true)
	require.Equal(t, exitcode.Success, code, stderr)

	reports, err := output.ReadAllReports(out)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, service.UserID(3), reports[1].UserID)
}

func TestAllCommand_UserFailureAborts(t *testing.T) {
	svc := allService()
	svc.TasksErr[2] = &service.FetchError{Kind: service.ErrTransport}

	_, stderr, code, dir := runCommand(t, &commands.AllCmd{}, svc, nil, false)

	assert.Equal(t, exitcode.BackendError, code)
	assert.Contains(t, stderr, "fetch tasks for user 2")
	assert.Empty(t, listDir(t, dir))
}

func TestAllCommand_SkipErrors(t *testing.T) {
	svc := allService()
	svc.TasksErr[2] = &service.FetchError{Kind: service.ErrTransport}
	cmd := &commands.AllCmd{}
	cmd.SetOptions("", true, false)

	_, stderr, code, dir := runCommand(t, cmd, svc, nil, true)

	require.Equal(t, exitcode.Success, code, stderr)
	assert.Contains(t, stderr, "skipped employee ID 2 (Antonette): transport error")

	reports, err := output.ReadAllReports(filepath.Join(dir, config.DefaultAllOutputFile))
	require.NoError(t, err)
	assert.Len(t, reports, 2)
}

func TestAllCommand_UsersErrorIsFatal(t *testing.T) {
	svc := allService()
	svc.UsersErr = &service.FetchError{Kind: service.ErrMalformedJSON}

	_, stderr, code, dir := runCommand(t, &commands.AllCmd{}, svc, nil, false)

	assert.Equal(t, exitcode.BackendError, code)
	assert.Contains(t, stderr, "malformed json")
	assert.Empty(t, listDir(t, dir))
}

func TestAllCommand_RejectsArgs(t *testing.T) {
	_, stderr, code, _ := runCommand(t, &commands.AllCmd{}, allService(), []string{"1"}, false)

	assert.Equal(t, exitcode.UserError, code)
	assert.Contains(t, stderr, "unexpected arguments")
}
