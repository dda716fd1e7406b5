package evm

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Registered contract ABI names. Application code refers to contracts by
// these names; only this package knows the ABI JSON.
const (
	ContractStorage    = "storage"
	ContractSkills     = "skills"
	ContractGovernance = "governance"
	ContractNFT        = "nft"
)

const storageABIJSON = `[
	{"type":"event","name":"NumberStored","inputs":[
		{"name":"player","type":"address","indexed":true},
		{"name":"number","type":"uint256","indexed":false}]},
	{"type":"function","name":"storeNumber","stateMutability":"nonpayable",
		"inputs":[{"name":"_num","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"getNumber","stateMutability":"view",
		"inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"storedNumber","stateMutability":"view",
		"inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"lastPlayer","stateMutability":"view",
		"inputs":[],"outputs":[{"name":"","type":"address"}]}
]`

const skillsABIJSON = `[
	{"type":"event","name":"SkillEarned","inputs":[
		{"name":"player","type":"address","indexed":true},
		{"name":"points","type":"uint256","indexed":false}]},
	{"type":"function","name":"earnSkill","stateMutability":"nonpayable",
		"inputs":[{"name":"points","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"getMySkills","stateMutability":"view",
		"inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"resetSkills","stateMutability":"nonpayable",
		"inputs":[{"name":"player","type":"address"}],"outputs":[]},
	{"type":"function","name":"owner","stateMutability":"view",
		"inputs":[],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"skillPoints","stateMutability":"view",
		"inputs":[{"name":"","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`

const governanceABIJSON = `[
	{"type":"event","name":"ProposalCreated","inputs":[
		{"name":"title","type":"string","indexed":false}]},
	{"type":"event","name":"Voted","inputs":[
		{"name":"voter","type":"address","indexed":true},
		{"name":"proposalId","type":"uint256","indexed":false}]},
	{"type":"function","name":"createProposal","stateMutability":"nonpayable",
		"inputs":[{"name":"title","type":"string"}],"outputs":[]},
	{"type":"function","name":"vote","stateMutability":"nonpayable",
		"inputs":[{"name":"proposalId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"getProposals","stateMutability":"view",
		"inputs":[],"outputs":[{"name":"","type":"tuple[]","components":[
			{"name":"title","type":"string"},
			{"name":"votes","type":"uint256"}]}]},
	{"type":"function","name":"reputation","stateMutability":"view",
		"inputs":[{"name":"","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"voted","stateMutability":"view",
		"inputs":[{"name":"","type":"address"}],"outputs":[{"name":"","type":"bool"}]}
]`

const nftABIJSON = `[
	{"type":"function","name":"mintHero","stateMutability":"nonpayable",
		"inputs":[{"name":"to","type":"address"},{"name":"metadataURI","type":"string"}],
		"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view",
		"inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`

// abis holds the parsed contract ABIs, keyed by registered name.
var abis = map[string]abi.ABI{}

func init() {
	for name, src := range map[string]string{
		ContractStorage:    storageABIJSON,
		ContractSkills:     skillsABIJSON,
		ContractGovernance: governanceABIJSON,
		ContractNFT:        nftABIJSON,
	} {
		parsed, err := abi.JSON(strings.NewReader(src))
		if err != nil {
			panic(fmt.Sprintf("invalid %s ABI: %v", name, err))
		}
		abis[name] = parsed
	}
}

// lookupABI returns the parsed ABI for a registered contract name.
func lookupABI(contract string) (abi.ABI, error) {
	parsed, ok := abis[contract]
	if !ok {
		return abi.ABI{}, fmt.Errorf("unknown contract ABI: %s", contract)
	}
	return parsed, nil
}
