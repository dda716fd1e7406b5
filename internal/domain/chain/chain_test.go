package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"valid lowercase", "0x742d35cc6634c0532925a3b844bc9e7595f0beb0", true},
		{"valid mixed case", "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0", true},
		{"missing prefix", "742d35cc6634c0532925a3b844bc9e7595f0beb0", false},
		{"too short", "0x742d35cc", false},
		{"too long", "0x742d35cc6634c0532925a3b844bc9e7595f0beb000", false},
		{"non-hex characters", "0x742d35cc6634c0532925a3b844bc9e7595f0bezz", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := ParseAddress(tt.input)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.input, addr.String())
			} else {
				assert.Error(t, err)
			}
			assert.Equal(t, tt.valid, IsValidAddress(tt.input))
		})
	}
}

func TestAddress_EqualFold(t *testing.T) {
	a := Address("0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0")
	b := Address("0x742d35cc6634c0532925a3b844bc9e7595f0beb0")
	c := Address("0x0000000000000000000000000000000000000001")

	assert.True(t, a.EqualFold(b))
	assert.True(t, b.EqualFold(a))
	assert.False(t, a.EqualFold(c))
}

func TestAddress_Short(t *testing.T) {
	addr := Address("0x742d35cc6634c0532925a3b844bc9e7595f0beb0")
	short := addr.Short()
	assert.Contains(t, short, "0x742d")
	assert.Less(t, len(short), len(addr.String()))
}

func TestShardeumMezameDefaults(t *testing.T) {
	assert.Equal(t, uint64(8119), ShardeumMezame.ChainID)
	assert.Equal(t, "SHM", ShardeumMezame.Currency)
	assert.Equal(t, "https://api-mezame.shardeum.org", ShardeumMezame.RPCURL)
}

func TestParams_ValidateNetwork(t *testing.T) {
	assert.NoError(t, ShardeumMezame.ValidateNetwork(8119))

	err := ShardeumMezame.ValidateNetwork(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong network")
}

func TestExplorerURLs(t *testing.T) {
	p := ShardeumMezame

	assert.Equal(t,
		"https://explorer-mezame.shardeum.org/tx/0xabc",
		p.TxURL("0xabc"))
	assert.Equal(t,
		"https://explorer-mezame.shardeum.org/address/0x742d35cc6634c0532925a3b844bc9e7595f0beb0",
		p.AddressURL(Address("0x742d35cc6634c0532925a3b844bc9e7595f0beb0")))
}
