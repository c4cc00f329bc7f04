package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownOutputFile is returned when the extraction tool exits zero but
// never reported a destination or already-downloaded line, so the output
// filename cannot be determined.
var ErrUnknownOutputFile = errors.New("download finished but output filename is unknown")

// ToolError reports a non-zero exit from an external tool invocation. Output
// carries the captured stderr (or merged output) text.
type ToolError struct {
	Tool   string
	Op     string
	Output string
	Err    error
}

func (e *ToolError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("%s %s failed: %v: %s", e.Tool, e.Op, e.Err, e.Output)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Tool, e.Op, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// ProvisionError reports a failed binary download or extraction during setup.
// Setup aborts on the first ProvisionError.
type ProvisionError struct {
	URL string
	Err error
}

func (e *ProvisionError) Error() string {
	return fmt.Sprintf("failed to provision %s: %v", e.URL, e.Err)
}

func (e *ProvisionError) Unwrap() error {
	return e.Err
}
