// Package output renders task reports as JSON export files and prints
// status lines for the CLI.
package output

import (
	"fmt"
	"io"

	"todoexport/internal/service"
)

// UserFileName returns the export file name for a single user, "<id>.json".
func UserFileName(id service.UserID) string {
	return id.String() + ".json"
}

// FormatUserExported prints the status line for a single-user export.
// Format: "Data for employee ID {ID} has been exported to {PATH}\n"
func FormatUserExported(w io.Writer, id service.UserID, path string) {
	fmt.Fprintf(w, "Data for employee ID %s has been exported to %s\n", id, path)
}

// FormatAllExported prints the status line for the all-employees export.
func FormatAllExported(w io.Writer, path string) {
	fmt.Fprintf(w, "Data for all employees has been exported to %s\n", path)
}

// FormatSkipped prints one line per user left out of a batch export.
// Format: "skipped employee ID {ID} ({USERNAME}): {ERR}\n"
func FormatSkipped(w io.Writer, id service.UserID, username string, err error) {
	fmt.Fprintf(w, "skipped employee ID %s (%s): %v\n", id, normalizeUsername(username), err)
}

// normalizeUsername keeps status lines readable for blank usernames.
func normalizeUsername(username string) string {
	if username == "" {
		return "(unknown)"
	}
	return username
}
