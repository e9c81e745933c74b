package intelligence

import "errors"

// ErrInvalidResponse is matched by every OperationError.
var ErrInvalidResponse = errors.New("invalid response format")

// ValidationError is returned before any remote call is made. Message is
// shown to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// OperationError is the single failure an operation reports once the remote
// call was attempted. The underlying cause is logged, never carried.
type OperationError struct {
	Operation string
	Message   string
}

func (e *OperationError) Error() string { return e.Message }

func (e *OperationError) Is(target error) bool { return target == ErrInvalidResponse }

// Operation names used for logging, metrics and the generic messages.
const (
	OpAnalysis   = "analysis"
	OpComparison = "comparison"
	OpSchemes    = "schemes"
)

var genericMessages = map[string]string{
	OpAnalysis:   "Failed to get a valid analysis from the AI. The response format was incorrect.",
	OpComparison: "Failed to get a valid comparison from the AI. The response format was incorrect.",
	OpSchemes:    "Failed to get a valid scheme list from the AI. The response format was incorrect.",
}

func newOperationError(op string) *OperationError {
	return &OperationError{Operation: op, Message: genericMessages[op]}
}

// User-facing validation messages.
const (
	MsgInvalidProfileAmount = "Please enter a valid loan amount in your profile."
	MsgMissingLoanText      = "Please paste your loan agreement text."
	MsgMissingOffers        = "Please provide details for both loan offers."
	MsgMissingSchemeInput   = "Please provide both loan purpose and amount."
	MsgInvalidSchemeAmount  = "Please enter a valid loan amount."
)
