package chain

import "fmt"

// RevertError is returned when a transaction or call is rejected by the ledger or by
// contract code. All state changes of the transaction are rolled back.
type RevertError struct {
	// Reason is the human readable revert reason
	Reason string
	// Method is the top-level method that reverted, empty for deployments and transfers
	Method string
	err    error
}

// Revert wraps a revert reason into a RevertError
func Revert(err error) error {
	return &RevertError{Reason: err.Error(), err: err}
}

func (e *RevertError) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("execution reverted: %s: %s", e.Method, e.Reason)
	}
	return fmt.Sprintf("execution reverted: %s", e.Reason)
}

func (e *RevertError) Unwrap() error {
	return e.err
}
