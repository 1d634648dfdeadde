package network_wifi

import "fmt"

// InterfaceError is returned when the scan command exits non-zero, usually
// because the interface is down, busy, or missing. Output holds whatever the
// command printed.
type InterfaceError struct {
	Interface string
	Output    string
	Err       error
}

func (e *InterfaceError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("scanning %s: %v", e.Interface, e.Err)
	}
	return fmt.Sprintf("scanning %s: %s", e.Interface, e.Output)
}

func (e *InterfaceError) Unwrap() error {
	return e.Err
}

// ExitError is a command that ran but exited non-zero.
type ExitError struct {
	Command string
	Code    int
	Output  []byte
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command, e.Code)
}
