// Package chain provides chain parameters and address/network value objects.
package chain

import (
	"fmt"
	"regexp"
	"strings"
)

// Params holds the fixed parameters of the target network.
type Params struct {
	ChainID      uint64
	Name         string
	Currency     string
	RPCURL       string
	ExplorerBase string
}

// ShardeumMezame is the default deployment target: the Shardeum Mezame testnet.
var ShardeumMezame = Params{
	ChainID:      8119,
	Name:         "Shardeum Mezame",
	Currency:     "SHM",
	RPCURL:       "https://api-mezame.shardeum.org",
	ExplorerBase: "https://explorer-mezame.shardeum.org",
}

// TxURL returns the block-explorer URL for a transaction hash.
func (p Params) TxURL(hash string) string {
	return fmt.Sprintf("%s/tx/%s", strings.TrimRight(p.ExplorerBase, "/"), hash)
}

// AddressURL returns the block-explorer URL for an address.
func (p Params) AddressURL(addr Address) string {
	return fmt.Sprintf("%s/address/%s", strings.TrimRight(p.ExplorerBase, "/"), addr)
}

// ValidateNetwork checks a connected chain id against the params. The error
// text carries the "wrong network" marker the classifier keys on.
func (p Params) ValidateNetwork(current uint64) error {
	if current == p.ChainID {
		return nil
	}
	return fmt.Errorf("wrong network: expected %s (chain id %d), connected to %d",
		p.Name, p.ChainID, current)
}

// Address represents a validated EVM address.
type Address string

var addressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// ParseAddress creates a new Address with validation.
func ParseAddress(s string) (Address, error) {
	if !addressPattern.MatchString(s) {
		return "", fmt.Errorf("invalid address format: %q", s)
	}
	return Address(s), nil
}

// IsValidAddress reports whether s is a strict 0x-prefixed 40-hex-digit address.
func IsValidAddress(s string) bool {
	return addressPattern.MatchString(s)
}

// String returns the string representation.
func (a Address) String() string {
	return string(a)
}

// EqualFold compares two addresses case-insensitively. EVM addresses are
// case-insensitive apart from the EIP-55 checksum, which is display-only.
func (a Address) EqualFold(other Address) bool {
	return strings.EqualFold(string(a), string(other))
}

// Short returns a truncated form suitable for display (0x1234...abcd).
func (a Address) Short() string {
	s := string(a)
	if len(s) < 12 {
		return s
	}
	return s[:6] + "..." + s[len(s)-4:]
}
