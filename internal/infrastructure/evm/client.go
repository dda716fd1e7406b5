// Package evm provides go-ethereum backed adapters for the application
// ports: a JSON-RPC node client, a signing wallet, and an event watcher.
package evm

import (
	"context"
	"fmt"
	"math/big"
	"reflect"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/GauravWaghmare23/OnChain-Quest/internal/application/ports"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/chain"
)

// receiptPollInterval is how often WaitForReceipt asks the node for a
// receipt while waiting.
const receiptPollInterval = 2 * time.Second

// Client implements ports.NodeClient using go-ethereum.
type Client struct {
	rpcURL  string
	client  *ethclient.Client
	chainID *big.Int
}

// NewClient creates a new node client.
func NewClient(rpcURL string) *Client {
	return &Client{rpcURL: rpcURL}
}

// Connect establishes a connection to the RPC endpoint and caches the
// chain id.
func (c *Client) Connect(ctx context.Context) error {
	client, err := ethclient.DialContext(ctx, c.rpcURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RPC: %w", err)
	}
	c.client = client

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		c.client = nil
		return fmt.Errorf("failed to get chain ID: %w", err)
	}
	c.chainID = chainID
	return nil
}

// ChainID returns the connected node's chain id.
func (c *Client) ChainID(ctx context.Context) (uint64, error) {
	if c.chainID != nil {
		return c.chainID.Uint64(), nil
	}
	if c.client == nil {
		return 0, fmt.Errorf("client not connected")
	}
	chainID, err := c.client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	c.chainID = chainID
	return chainID.Uint64(), nil
}

// ReadContract performs a view call and unpacks the results into out.
func (c *Client) ReadContract(ctx context.Context, call ports.ContractCall, out ...interface{}) error {
	if c.client == nil {
		return fmt.Errorf("client not connected")
	}

	parsed, err := lookupABI(call.Contract)
	if err != nil {
		return err
	}

	data, err := packCall(call.Contract, call.Function, call.Args)
	if err != nil {
		return err
	}

	to := common.HexToAddress(call.Address.String())
	raw, err := c.client.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return fmt.Errorf("contract call %s failed: %w", call.Function, err)
	}

	results, err := parsed.Unpack(call.Function, raw)
	if err != nil {
		return fmt.Errorf("failed to unpack %s result: %w", call.Function, err)
	}
	if len(out) > len(results) {
		return fmt.Errorf("%s returned %d values, want %d", call.Function, len(results), len(out))
	}

	for i, target := range out {
		rv := reflect.ValueOf(target)
		if rv.Kind() != reflect.Ptr || rv.IsNil() {
			return fmt.Errorf("output %d must be a non-nil pointer", i)
		}
		// Address results surface as the domain address type so callers
		// never touch go-ethereum types.
		if addr, ok := results[i].(common.Address); ok {
			switch t := target.(type) {
			case *chain.Address:
				*t = chain.Address(addr.Hex())
				continue
			case *string:
				*t = addr.Hex()
				continue
			}
		}
		converted := abi.ConvertType(results[i], rv.Elem().Interface())
		rv.Elem().Set(reflect.ValueOf(converted))
	}
	return nil
}

// EstimateGas estimates gas for a contract call from the wallet-less
// perspective (no value transfer, packed calldata only).
func (c *Client) EstimateGas(ctx context.Context, call ports.ContractCall) (uint64, error) {
	if c.client == nil {
		return 0, fmt.Errorf("client not connected")
	}

	data, err := packCall(call.Contract, call.Function, call.Args)
	if err != nil {
		return 0, err
	}

	to := common.HexToAddress(call.Address.String())
	gas, err := c.client.EstimateGas(ctx, ethereum.CallMsg{To: &to, Data: data})
	if err != nil {
		return 0, fmt.Errorf("gas estimation failed: %w", err)
	}
	return gas, nil
}

// BalanceAt returns the native-token balance of an address.
func (c *Client) BalanceAt(ctx context.Context, addr chain.Address) (*big.Int, error) {
	if c.client == nil {
		return nil, fmt.Errorf("client not connected")
	}
	balance, err := c.client.BalanceAt(ctx, common.HexToAddress(addr.String()), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// WaitForReceipt polls until the transaction is mined or the timeout
// elapses. A timeout surfaces as an error containing "timeout" so the
// classifier maps it to the Timeout kind.
func (c *Client) WaitForReceipt(ctx context.Context, txHash string, timeout time.Duration) (*ports.Receipt, error) {
	if c.client == nil {
		return nil, fmt.Errorf("client not connected")
	}

	hash := common.HexToHash(txHash)
	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
			return nil, fmt.Errorf("timeout waiting for transaction %s", txHash)
		case <-ticker.C:
			receipt, err := c.client.TransactionReceipt(ctx, hash)
			if err != nil {
				// Not yet mined, keep waiting.
				continue
			}
			return convertReceipt(receipt), nil
		}
	}
}

func convertReceipt(receipt *types.Receipt) *ports.Receipt {
	logs := make([]ports.Log, len(receipt.Logs))
	for i, lg := range receipt.Logs {
		logs[i] = convertLog(lg)
	}
	return &ports.Receipt{
		TxHash:      receipt.TxHash.Hex(),
		BlockNumber: receipt.BlockNumber.Int64(),
		Success:     receipt.Status == types.ReceiptStatusSuccessful,
		GasUsed:     receipt.GasUsed,
		Logs:        logs,
	}
}

func convertLog(lg *types.Log) ports.Log {
	topics := make([]string, len(lg.Topics))
	for i, t := range lg.Topics {
		topics[i] = t.Hex()
	}
	out := ports.Log{
		Address: chain.Address(lg.Address.Hex()),
		Topics:  topics,
		Data:    lg.Data,
	}
	// The first indexed topic of every game contract event is the acting
	// player address, so surface it as the actor when present.
	if len(lg.Topics) > 1 {
		out.Actor = chain.Address(common.HexToAddress(lg.Topics[1].Hex()).Hex())
	}
	return out
}

// EthClient returns the underlying ethclient for adapters that share the
// connection (wallet, watcher).
func (c *Client) EthClient() *ethclient.Client {
	return c.client
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		c.client.Close()
		c.client = nil
	}
	return nil
}

// Ensure Client implements ports.NodeClient.
var _ ports.NodeClient = (*Client)(nil)
