package output

import (
	"fmt"
	"os"
	"path/filepath"

	"todoexport/internal/service"
)

// FileMode is the permission of written export files.
const FileMode os.FileMode = 0644

// WriteUserReport writes the single-user document to path.
// Returns the number of bytes written.
func WriteUserReport(path string, r service.TaskReport) (int, error) {
	data, err := MarshalUserReport(r)
	if err != nil {
		return 0, err
	}
	return len(data), WriteFile(path, data)
}

// WriteAllReports writes the all-employees document to path.
func WriteAllReports(path string, reports []service.TaskReport) (int, error) {
	data, err := MarshalAllReports(reports)
	if err != nil {
		return 0, err
	}
	return len(data), WriteFile(path, data)
}

// ReadUserReport reads a single-user export file back.
func ReadUserReport(path string) (service.TaskReport, error) {
	reports, err := ReadAllReports(path)
	if err != nil {
		return service.TaskReport{}, err
	}
	if len(reports) != 1 {
		return service.TaskReport{}, fmt.Errorf("%s: expected 1 user, found %d", path, len(reports))
	}
	return reports[0], nil
}

// ReadAllReports reads an export file back, in file order.
func ReadAllReports(path string) ([]service.TaskReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reports, err := DecodeReports(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reports, nil
}

// WriteFile replaces path atomically: readers see the old file or the new
// one, never a partial write. Missing parent directories are created.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(FileMode); err != nil {
		return err
	}
	_ = tmp.Sync() // best-effort durability
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
