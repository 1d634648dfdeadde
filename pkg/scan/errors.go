package scan

import (
	"errors"
	"fmt"
)

// ErrMalformedFrequency is returned (wrapped in a *BlockError) when a
// Frequency line does not look like "<value> <unit>Hz [(Channel N)]".
var ErrMalformedFrequency = errors.New("malformed frequency line")

// BlockError ties a parse failure to the cell block that caused it.
type BlockError struct {
	Index int // position of the block in the scan output, -1 when unknown
	Block string
	Err   error
}

func (e *BlockError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("cell block: %v", e.Err)
	}
	return fmt.Sprintf("cell block %d: %v", e.Index, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}
