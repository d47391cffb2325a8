package adjustment

import "errors"

var (
	ErrAdjustmentNotFound = errors.New("adjustment not found")
	ErrAlreadyProcessed   = errors.New("adjustment has already been approved or rejected")
	ErrInvalidDecision    = errors.New("decision must be 'approved' or 'rejected'")
	ErrTimestampRequired  = errors.New("a timestamp is required for this adjustment type")
)
