package tests

import (
	"math/big"
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
	"github.com/vera-labs/vera-contract/common"
)

const (
	tokenPath        = "../contracts/token"
	feeTokenPath     = "../contracts/feetoken"
	stakingTokenPath = "../contracts/stakingtoken"

	// initialSupply is the whole-token supply every contract is deployed
	// with in tests.
	initialSupply = 1_000_000
)

var unitScale = big.NewInt(common.UnitScale)

// toUnits converts a whole-token amount into the smallest balance units.
func toUnits(amount int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(amount), unitScale)
}

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

func deployTokenContract(t *testing.T, e *neotest.Executor, ctrPath, name, symbol string) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, ctrPath, path.Join(ctrPath, "config.yml"))

	args := make([]any, 4)
	args[0] = e.CommitteeHash
	args[1] = name
	args[2] = symbol
	args[3] = int64(initialSupply)

	e.DeployContract(t, c, args)
	return c.Hash
}

func newTokenInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)
	h := deployTokenContract(t, e, tokenPath, "Vera", "VERA")
	return e.CommitteeInvoker(h)
}

func newFeeTokenInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)
	h := deployTokenContract(t, e, feeTokenPath, "Vera Fee", "FVERA")
	return e.CommitteeInvoker(h)
}

func newStakingTokenInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)
	h := deployTokenContract(t, e, stakingTokenPath, "Vera Staking", "SVERA")
	return e.CommitteeInvoker(h)
}

// addBlockAt appends an empty block with the given timestamp, moving the
// chain clock forward for time-dependent invocations.
func addBlockAt(t *testing.T, c *neotest.ContractInvoker, timestamp uint64) {
	b := c.NewUnsignedBlock(t)
	b.Timestamp = timestamp
	require.NoError(t, c.Chain.AddBlock(c.SignBlock(b)))
}

func balanceOf(t *testing.T, c *neotest.ContractInvoker, acc util.Uint160) *big.Int {
	s, err := c.TestInvoke(t, "balanceOf", acc)
	require.NoError(t, err)
	return s.Top().BigInt()
}

func contractOwner(t *testing.T, c *neotest.ContractInvoker) util.Uint160 {
	s, err := c.TestInvoke(t, "owner")
	require.NoError(t, err)
	owner, err := util.Uint160DecodeBytesBE(s.Top().Bytes())
	require.NoError(t, err)
	return owner
}
