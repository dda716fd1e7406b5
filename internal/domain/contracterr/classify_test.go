package contracterr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Taxonomy(t *testing.T) {
	tests := []struct {
		name      string
		err       string
		kind      Kind
		retryable bool
	}{
		{"wallet missing", "wallet not configured", KindWalletNotConnected, false},
		{"no account", "signer has no account", KindWalletNotConnected, false},
		{"wrong network", "wrong network: expected 8119", KindWrongNetwork, false},
		{"chain mismatch", "chain mismatch between wallet and node", KindWrongNetwork, false},
		{"user rejected", "MetaMask Tx Signature: User rejected the request", KindUserRejected, true},
		{"denied", "signature denied", KindUserRejected, true},
		{"insufficient funds", "insufficient funds for gas * price + value", KindInsufficientFunds, false},
		{"underpriced", "transaction underpriced", KindInsufficientFunds, false},
		{"gas estimation", "cannot estimate gas; transaction may fail", KindGasEstimationFailed, true},
		{"reverted", "execution reverted: Ownable: caller is not the owner", KindTransactionReverted, false},
		{"fetch failure", "TypeError: Failed to fetch", KindTransportError, true},
		{"connection refused", "dial tcp: connection refused", KindTransportError, true},
		{"congested", "network congested", KindTransportError, true},
		{"nonce", "nonce too low", KindTransportError, true},
		{"timeout", "request timeout", KindTimeout, true},
		{"deadline", "context deadline exceeded", KindTimeout, true},
		{"invalid address", "invalid address checksum", KindInvalidInput, false},
		{"unknown", "something inexplicable happened", KindUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ce := Classify(errors.New(tt.err))
			require.NotNil(t, ce)
			assert.Equal(t, tt.kind, ce.Kind)
			assert.Equal(t, tt.retryable, ce.Retryable)
			assert.NotEmpty(t, ce.Message)
		})
	}
}

// Priority matters: "insufficient funds" also contains no revert marker, but
// a revert reason mentioning funds must still classify as insufficient funds,
// and transport text mentioning a timeout must classify as transport first.
func TestClassify_PriorityOrder(t *testing.T) {
	ce := Classify(errors.New("insufficient funds: transaction failed"))
	assert.Equal(t, KindInsufficientFunds, ce.Kind)

	ce = Classify(errors.New("failed to fetch: timeout"))
	assert.Equal(t, KindTransportError, ce.Kind)

	ce = Classify(errors.New("execution reverted: invalid parameters"))
	assert.Equal(t, KindTransactionReverted, ce.Kind)
}

func TestClassify_Nil(t *testing.T) {
	assert.Nil(t, Classify(nil))
}

func TestClassify_PassThrough(t *testing.T) {
	orig := New(KindInvalidInput, "Proposal title cannot be empty.")
	again := Classify(orig)
	assert.Same(t, orig, again)
}

func TestClassify_CaseInsensitive(t *testing.T) {
	ce := Classify(errors.New("EXECUTION REVERTED"))
	assert.Equal(t, KindTransactionReverted, ce.Kind)
}

// The raw error text must survive classification because the transaction
// queue's retry detection matches substrings on Error().
func TestContractError_PreservesRawText(t *testing.T) {
	raw := errors.New("provider congested, retry shortly")
	ce := Classify(raw)

	assert.Equal(t, raw.Error(), ce.Error())
	assert.ErrorIs(t, ce, raw)
	assert.NotEqual(t, ce.Error(), ce.UserMessage())
}

func TestNew_VerbatimMessage(t *testing.T) {
	ce := New(KindInvalidInput, "Skill points must be between 1 and %d.", 1000)

	assert.Equal(t, KindInvalidInput, ce.Kind)
	assert.Equal(t, "Skill points must be between 1 and 1000.", ce.UserMessage())
	assert.False(t, ce.Retryable)
}

func TestNew_RetryableKinds(t *testing.T) {
	tests := []struct {
		kind      Kind
		retryable bool
	}{
		{KindWalletNotConnected, false},
		{KindWrongNetwork, false},
		{KindUserRejected, true},
		{KindInsufficientFunds, false},
		{KindGasEstimationFailed, true},
		{KindTransactionReverted, false},
		{KindTransportError, true},
		{KindTimeout, true},
		{KindInvalidInput, false},
		{KindUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			ce := New(tt.kind, "message")
			assert.Equal(t, tt.retryable, ce.Retryable)
		})
	}
}

func TestIsKind(t *testing.T) {
	err := New(KindWrongNetwork, "Wrong network.")
	assert.True(t, IsKind(err, KindWrongNetwork))
	assert.False(t, IsKind(err, KindTimeout))
	assert.False(t, IsKind(fmt.Errorf("plain"), KindTimeout))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(errors.New("timeout")))
	assert.False(t, IsRetryable(errors.New("execution reverted")))
}

func TestRecoveryHint(t *testing.T) {
	assert.NotEmpty(t, New(KindWalletNotConnected, "m").RecoveryHint())
	assert.NotEmpty(t, New(KindInsufficientFunds, "m").RecoveryHint())
	assert.Empty(t, New(KindInvalidInput, "m").RecoveryHint())
}
