// Package ports defines the interfaces the application layer depends on.
// Infrastructure adapters implement them; the application never imports
// go-ethereum directly.
package ports

import (
	"context"
	"math/big"
	"time"

	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/chain"
)

// WalletClient is the signing wallet boundary. The core never implements a
// wallet; it only calls one.
type WalletClient interface {
	// Connected reports whether a signing account is available.
	Connected() bool

	// Account returns the wallet's account address.
	Account() (chain.Address, error)

	// ChainID returns the chain the wallet is configured for.
	ChainID(ctx context.Context) (uint64, error)

	// WriteContract packs and submits a state-changing contract call,
	// returning the transaction hash. Gas estimation is delegated to the
	// node; on estimation failure the adapter substitutes a conservative
	// default and proceeds.
	WriteContract(ctx context.Context, call ContractCall) (string, error)

	// SignMessage signs an arbitrary message with the wallet key.
	SignMessage(ctx context.Context, message []byte) ([]byte, error)
}

// NodeClient is the remote JSON-RPC node boundary for chain-state reads and
// confirmation polling.
type NodeClient interface {
	// ChainID returns the connected node's chain id.
	ChainID(ctx context.Context) (uint64, error)

	// ReadContract performs a view call and unpacks the results into out.
	ReadContract(ctx context.Context, call ContractCall, out ...interface{}) error

	// WaitForReceipt polls until the transaction is mined or the timeout
	// elapses.
	WaitForReceipt(ctx context.Context, txHash string, timeout time.Duration) (*Receipt, error)

	// EstimateGas estimates gas for a contract call.
	EstimateGas(ctx context.Context, call ContractCall) (uint64, error)

	// BalanceAt returns the native-token balance of an address.
	BalanceAt(ctx context.Context, addr chain.Address) (*big.Int, error)
}

// ContractCall identifies a contract function invocation.
type ContractCall struct {
	Address     chain.Address
	Contract    string // registered ABI name
	Function    string
	Args        []interface{}
	GasLimit    uint64 // zero means estimate
	FallbackGas uint64 // used when estimation fails; zero means no fallback
}

// Receipt is the confirmation record of a mined transaction.
type Receipt struct {
	TxHash      string
	BlockNumber int64
	Success     bool
	GasUsed     uint64
	Logs        []Log
}

// Log is a single contract event log entry.
type Log struct {
	Address chain.Address
	Event   string
	Actor   chain.Address // first indexed address topic, if any
	Topics  []string
	Data    []byte
}

// EventHandler receives matching contract event logs.
type EventHandler func(Log)

// EventWatcher delivers contract event logs to registered handlers,
// decoupled from any UI. Handlers may be invoked from a background
// goroutine; ordering relative to queued writes is not guaranteed.
type EventWatcher interface {
	// Subscribe registers a handler for an event on a contract address and
	// returns an unsubscribe function.
	Subscribe(addr chain.Address, contract, event string, handler EventHandler) (func(), error)
}
