package evm

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/GauravWaghmare23/OnChain-Quest/internal/application/ports"
	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/chain"
)

// defaultPollInterval is how often the watcher polls for new logs.
const defaultPollInterval = 5 * time.Second

// subscription is one registered handler.
type subscription struct {
	id      int
	address common.Address
	topic   common.Hash
	event   string
	handler ports.EventHandler
}

// Watcher polls the node for contract event logs and dispatches them to
// registered handlers. It replaces a dapp's live event subscription with a
// FilterLogs polling loop.
type Watcher struct {
	client   *ethclient.Client
	interval time.Duration
	logger   log.Logger

	mu        sync.Mutex
	subs      map[int]*subscription
	nextID    int
	lastBlock uint64
}

// NewWatcher creates a watcher over an established client connection.
func NewWatcher(client *ethclient.Client, interval time.Duration, logger log.Logger) *Watcher {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Watcher{
		client:   client,
		interval: interval,
		logger:   logger.With("component", "watcher"),
		subs:     map[int]*subscription{},
	}
}

// Subscribe registers a handler for an event on a contract address and
// returns an unsubscribe function.
func (w *Watcher) Subscribe(addr chain.Address, contract, event string, handler ports.EventHandler) (func(), error) {
	parsed, err := lookupABI(contract)
	if err != nil {
		return nil, err
	}
	ev, ok := parsed.Events[event]
	if !ok {
		return nil, fmt.Errorf("contract %s has no event %s", contract, event)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextID++
	id := w.nextID
	w.subs[id] = &subscription{
		id:      id,
		address: common.HexToAddress(addr.String()),
		topic:   ev.ID,
		event:   event,
		handler: handler,
	}
	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.subs, id)
	}, nil
}

// Run polls for logs until the context is cancelled. Handlers run on the
// polling goroutine; they must not block for long.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *Watcher) poll(ctx context.Context) {
	head, err := w.client.BlockNumber(ctx)
	if err != nil {
		w.logger.Debug("failed to get head block", "err", err)
		return
	}

	w.mu.Lock()
	from := w.lastBlock + 1
	if w.lastBlock == 0 {
		// First poll: start at the head rather than replaying history.
		from = head
	}
	subs := make([]*subscription, 0, len(w.subs))
	addrs := make([]common.Address, 0, len(w.subs))
	for _, s := range w.subs {
		subs = append(subs, s)
		addrs = append(addrs, s.address)
	}
	w.mu.Unlock()

	if len(subs) == 0 || from > head {
		w.setLastBlock(head)
		return
	}

	logs, err := w.client.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(head),
		Addresses: addrs,
	})
	if err != nil {
		w.logger.Debug("failed to filter logs", "err", err)
		return
	}

	for i := range logs {
		lg := logs[i]
		if len(lg.Topics) == 0 {
			continue
		}
		for _, s := range subs {
			if lg.Address != s.address || lg.Topics[0] != s.topic {
				continue
			}
			out := convertLog(&lg)
			out.Event = s.event
			s.handler(out)
		}
	}

	w.setLastBlock(head)
}

func (w *Watcher) setLastBlock(n uint64) {
	w.mu.Lock()
	w.lastBlock = n
	w.mu.Unlock()
}

// Ensure Watcher implements ports.EventWatcher.
var _ ports.EventWatcher = (*Watcher)(nil)
