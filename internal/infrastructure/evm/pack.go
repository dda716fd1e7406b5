package evm

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/GauravWaghmare23/OnChain-Quest/internal/domain/chain"
)

// packCall encodes a contract call, converting domain argument types to the
// go-ethereum types the ABI encoder expects. Callers pass addresses as hex
// strings or chain.Address; everything else goes through unchanged.
func packCall(contract, function string, args []interface{}) ([]byte, error) {
	parsed, err := lookupABI(contract)
	if err != nil {
		return nil, err
	}
	method, ok := parsed.Methods[function]
	if !ok {
		return nil, fmt.Errorf("contract %s has no function %s", contract, function)
	}

	data, err := parsed.Pack(function, normalizeArgs(method, args)...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s call: %w", function, err)
	}
	return data, nil
}

func normalizeArgs(method abi.Method, args []interface{}) []interface{} {
	out := make([]interface{}, len(args))
	for i, a := range args {
		if i < len(method.Inputs) && method.Inputs[i].Type.T == abi.AddressTy {
			switch v := a.(type) {
			case string:
				out[i] = common.HexToAddress(v)
				continue
			case chain.Address:
				out[i] = common.HexToAddress(v.String())
				continue
			}
		}
		out[i] = a
	}
	return out
}
