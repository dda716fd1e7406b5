// Package contracterr classifies raw provider and transport errors into a
// closed taxonomy with user-facing messages and retry hints.
package contracterr

import (
	"fmt"
	"strings"
)

// Kind identifies the classified category of a contract interaction error.
type Kind string

const (
	KindWalletNotConnected  Kind = "WALLET_NOT_CONNECTED"
	KindWrongNetwork        Kind = "WRONG_NETWORK"
	KindUserRejected        Kind = "USER_REJECTED"
	KindInsufficientFunds   Kind = "INSUFFICIENT_FUNDS"
	KindGasEstimationFailed Kind = "GAS_ESTIMATION_FAILED"
	KindTransactionReverted Kind = "TRANSACTION_REVERTED"
	KindTransportError      Kind = "TRANSPORT_ERROR"
	KindTimeout             Kind = "TIMEOUT"
	KindInvalidInput        Kind = "INVALID_INPUT"
	KindUnknown             Kind = "UNKNOWN"
)

// String returns the string representation.
func (k Kind) String() string {
	return string(k)
}

// ContractError is a classified contract interaction failure. It wraps the
// raw error so that callers can still match on the original message; the
// transaction queue's retry decision is substring-based, so the raw text must
// survive classification.
type ContractError struct {
	Kind      Kind
	Message   string
	Retryable bool
	Err       error
}

// Error returns the raw error text when available, falling back to the
// user-facing message. Keeping the raw text here is load-bearing: retry
// marker detection downstream matches on Error().
func (e *ContractError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the original error.
func (e *ContractError) Unwrap() error {
	return e.Err
}

// UserMessage returns the user-friendly message for display.
func (e *ContractError) UserMessage() string {
	return e.Message
}

// RecoveryHint suggests a recovery action for recoverable failures.
func (e *ContractError) RecoveryHint() string {
	switch e.Kind {
	case KindWalletNotConnected:
		return "configure a key file and run the command again"
	case KindWrongNetwork:
		return "switch your node endpoint to Shardeum Mezame (chain id 8119)"
	case KindInsufficientFunds:
		return "fund your account from the Shardeum faucet"
	case KindUserRejected, KindTimeout, KindTransportError, KindGasEstimationFailed:
		return "try the operation again"
	default:
		return ""
	}
}

// UserFacing is implemented by errors carrying a display-ready message.
type UserFacing interface {
	UserMessage() string
}

// Recoverable is implemented by errors suggesting a recovery action.
type Recoverable interface {
	RecoveryHint() string
}

// classification is a single pattern-matching rule. Rules are evaluated in
// order; the first rule whose markers match the lowercased error text wins.
type classification struct {
	kind      Kind
	markers   []string
	message   string
	retryable bool
}

// rules is the fixed priority order of the taxonomy. Order matters:
// "insufficient funds" must be checked before the generic "failed" marker of
// TransactionReverted, and reverted before the transport markers.
var rules = []classification{
	{
		kind:      KindWalletNotConnected,
		markers:   []string{"not connect", "no account", "wallet not"},
		message:   "Wallet not connected. Please configure your wallet first.",
		retryable: false,
	},
	{
		kind:      KindWrongNetwork,
		markers:   []string{"wrong network", "chain mismatch", "unexpected chain"},
		message:   "Wrong network. Please switch to Shardeum Mezame (Chain ID: 8119).",
		retryable: false,
	},
	{
		kind:      KindUserRejected,
		markers:   []string{"user rejected", "denied", "rejected by user"},
		message:   "Transaction was rejected. Please try again.",
		retryable: true,
	},
	{
		kind:      KindInsufficientFunds,
		markers:   []string{"insufficient funds", "insufficient balance", "underpriced"},
		message:   "Insufficient SHM balance. Please check your wallet.",
		retryable: false,
	},
	{
		kind:      KindGasEstimationFailed,
		markers:   []string{"gas estimation", "cannot estimate gas", "estimate gas"},
		message:   "Gas estimation failed. The transaction may fail. Please try again.",
		retryable: true,
	},
	{
		kind:      KindTransactionReverted,
		markers:   []string{"reverted", "execution", "transaction failed"},
		message:   "Transaction failed. Please check contract parameters.",
		retryable: false,
	},
	{
		kind:      KindTransportError,
		markers:   []string{"failed to fetch", "econnrefused", "enotfound", "congested", "connection refused", "network error", "nonce"},
		message:   "Network error. Please check your connection and try again.",
		retryable: true,
	},
	{
		kind:      KindTimeout,
		markers:   []string{"timeout", "timed out", "deadline exceeded"},
		message:   "Request timed out. The network may be busy. Please try again.",
		retryable: true,
	},
	{
		kind:      KindInvalidInput,
		markers:   []string{"invalid", "format", "address", "too long", "empty", "must be"},
		message:   "Invalid input. Please check your parameters.",
		retryable: false,
	},
}

// Classify maps a raw error to the closed taxonomy. Classification is
// pattern-matched on the lowercased error text; the first matching rule in
// priority order wins. A nil error returns nil. An already classified error
// is returned unchanged.
func Classify(err error) *ContractError {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*ContractError); ok {
		return ce
	}

	lower := strings.ToLower(err.Error())
	for _, rule := range rules {
		for _, marker := range rule.markers {
			if strings.Contains(lower, marker) {
				return &ContractError{
					Kind:      rule.kind,
					Message:   rule.message,
					Retryable: rule.retryable,
					Err:       err,
				}
			}
		}
	}

	return &ContractError{
		Kind:      KindUnknown,
		Message:   "An unexpected error occurred. Please try again.",
		Retryable: true,
		Err:       err,
	}
}

// New creates a classified error directly, for failures detected before any
// provider call is made (validation, preconditions). The formatted message is
// used verbatim as the user-facing message.
func New(kind Kind, format string, args ...interface{}) *ContractError {
	msg := fmt.Sprintf(format, args...)
	return &ContractError{
		Kind:      kind,
		Message:   msg,
		Retryable: retryableFor(kind),
		Err:       fmt.Errorf("%s", msg),
	}
}

func retryableFor(kind Kind) bool {
	switch kind {
	case KindUserRejected, KindGasEstimationFailed, KindTransportError, KindTimeout, KindUnknown:
		return true
	default:
		return false
	}
}

// IsKind reports whether err is a classified error of the given kind.
func IsKind(err error, kind Kind) bool {
	ce, ok := err.(*ContractError)
	return ok && ce.Kind == kind
}

// IsRetryable reports whether the error is classified as likely to succeed
// on retry.
func IsRetryable(err error) bool {
	return Classify(err).Retryable
}
