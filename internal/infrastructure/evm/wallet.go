package evm

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"os"
	"strings"

	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/GauravWaghmare23/OnChain-Quest/internal/application/ports"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/chain"
)

// Wallet implements ports.WalletClient with a local private key. It plays
// the role an injected browser wallet plays in a dapp: it owns the key,
// signs, and submits.
type Wallet struct {
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int
	client  *ethclient.Client
	logger  log.Logger
}

// NewWallet creates a wallet from a hex-encoded private key.
func NewWallet(privateKeyHex string, chainID uint64, client *ethclient.Client, logger log.Logger) (*Wallet, error) {
	keyHex := strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x")
	key, err := crypto.HexToECDSA(keyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return &Wallet{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		chainID: new(big.Int).SetUint64(chainID),
		client:  client,
		logger:  logger.With("component", "wallet"),
	}, nil
}

// NewWalletFromFile creates a wallet from a file containing a hex-encoded
// private key.
func NewWalletFromFile(path string, chainID uint64, client *ethclient.Client, logger log.Logger) (*Wallet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}
	return NewWallet(string(raw), chainID, client, logger)
}

// Connected reports whether a signing account is available.
func (w *Wallet) Connected() bool {
	return w != nil && w.key != nil && w.client != nil
}

// Account returns the wallet's account address.
func (w *Wallet) Account() (chain.Address, error) {
	if w == nil || w.key == nil {
		return "", fmt.Errorf("wallet not connected: no account")
	}
	return chain.Address(w.address.Hex()), nil
}

// ChainID returns the chain the wallet is configured for.
func (w *Wallet) ChainID(ctx context.Context) (uint64, error) {
	return w.chainID.Uint64(), nil
}

// WriteContract packs, signs, and submits a state-changing contract call.
// Gas estimation is delegated to the node; when estimation fails and the
// call carries a fallback gas value, the write proceeds with the fallback
// instead of aborting (soft degradation).
func (w *Wallet) WriteContract(ctx context.Context, call ports.ContractCall) (string, error) {
	if !w.Connected() {
		return "", fmt.Errorf("wallet not connected")
	}

	data, err := packCall(call.Contract, call.Function, call.Args)
	if err != nil {
		return "", err
	}

	to := common.HexToAddress(call.Address.String())

	nonce, err := w.client.PendingNonceAt(ctx, w.address)
	if err != nil {
		return "", fmt.Errorf("failed to get nonce: %w", err)
	}
	gasPrice, err := w.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to suggest gas price: %w", err)
	}

	gasLimit := call.GasLimit
	if gasLimit == 0 {
		gasLimit, err = w.client.EstimateGas(ctx, ethereum.CallMsg{
			From:     w.address,
			To:       &to,
			GasPrice: gasPrice,
			Data:     data,
		})
		if err != nil {
			if call.FallbackGas == 0 {
				return "", fmt.Errorf("gas estimation failed: %w", err)
			}
			w.logger.Warn("gas estimation failed, using fallback",
				"function", call.Function, "fallback_gas", call.FallbackGas, "err", err)
			gasLimit = call.FallbackGas
		}
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    big.NewInt(0),
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(w.chainID), w.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := w.client.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	hash := signed.Hash().Hex()
	w.logger.Info("transaction submitted",
		"function", call.Function, "to", call.Address.Short(), "hash", hash)
	return hash, nil
}

// SignMessage signs a message with the EIP-191 personal-message prefix.
func (w *Wallet) SignMessage(ctx context.Context, message []byte) ([]byte, error) {
	if w == nil || w.key == nil {
		return nil, fmt.Errorf("wallet not connected")
	}
	sig, err := crypto.Sign(accounts.TextHash(message), w.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign message: %w", err)
	}
	return sig, nil
}

// Ensure Wallet implements ports.WalletClient.
var _ ports.WalletClient = (*Wallet)(nil)
