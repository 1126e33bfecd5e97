package commands

import (
	"fmt"
	"io"

	"todoexport/internal/exitcode"
)

// backendError reports a failed fetch and returns the matching exit code.
func backendError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	return exitcode.BackendError
}
