package tests

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
	"github.com/vera-labs/vera-contract/common"
)

func TestFeeTokenDeploy(t *testing.T) {
	c := newFeeTokenInvoker(t)

	c.Invoke(t, "Vera Fee", "name")
	c.Invoke(t, "FVERA", "symbol")
	c.Invoke(t, toUnits(initialSupply), "totalSupply")
	c.Invoke(t, 2, "feePercent")
	c.Invoke(t, big.NewInt(0), "totalFeesCollected")

	// the deployer collects fees until reassigned
	s, err := c.TestInvoke(t, "feeCollector")
	require.NoError(t, err)
	collector, err := util.Uint160DecodeBytesBE(s.Top().Bytes())
	require.NoError(t, err)
	require.Equal(t, c.CommitteeHash, collector)
}

func TestFeeTokenTransfer(t *testing.T) {
	c := newFeeTokenInvoker(t)

	collectorHash := c.NewAccount(t).ScriptHash()
	recipientHash := c.NewAccount(t).ScriptHash()

	c.Invoke(t, stackitem.Null{}, "setFeeCollector", collectorHash)

	// 2% of the gross amount goes to the collector, the rest to the target
	c.Invoke(t, stackitem.Null{}, "transfer", c.CommitteeHash, recipientHash, toUnits(1000))

	require.Equal(t, toUnits(980), balanceOf(t, c, recipientHash))
	require.Equal(t, toUnits(20), balanceOf(t, c, collectorHash))
	require.Equal(t, toUnits(initialSupply-1000), balanceOf(t, c, c.CommitteeHash))
	c.Invoke(t, toUnits(20), "totalFeesCollected")
	c.Invoke(t, toUnits(initialSupply), "totalSupply")

	t.Run("fee rounds down", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "transfer", c.CommitteeHash, recipientHash, 49)
		require.Equal(t, toUnits(20), balanceOf(t, c, collectorHash))

		c.Invoke(t, stackitem.Null{}, "transfer", c.CommitteeHash, recipientHash, 50)
		require.Equal(t, new(big.Int).Add(toUnits(20), big.NewInt(1)),
			balanceOf(t, c, collectorHash))
	})
	t.Run("balance requirement is gross", func(t *testing.T) {
		poor := c.NewAccount(t)
		poorHash := poor.ScriptHash()
		c.Invoke(t, stackitem.Null{}, "transfer", c.CommitteeHash, poorHash, toUnits(100))

		// 100 net would fit, 100 gross does not
		c.WithSigners(poor).InvokeFail(t, common.ErrInsufficientBalance,
			"transfer", poorHash, recipientHash, new(big.Int).Add(toUnits(100), big.NewInt(1)))
	})
}

func TestFeeTokenTransferFrom(t *testing.T) {
	c := newFeeTokenInvoker(t)

	spender := c.NewAccount(t)
	spenderHash := spender.ScriptHash()
	recipientHash := c.NewAccount(t).ScriptHash()

	c.Invoke(t, stackitem.Null{}, "approve", c.CommitteeHash, spenderHash, toUnits(1000))
	c.WithSigners(spender).Invoke(t, stackitem.Null{}, "transferFrom",
		spenderHash, c.CommitteeHash, recipientHash, toUnits(1000))

	// no fee is kept on the allowance path
	require.Equal(t, toUnits(1000), balanceOf(t, c, recipientHash))
	c.Invoke(t, big.NewInt(0), "totalFeesCollected")
}

func TestFeeTokenSetFeePercent(t *testing.T) {
	c := newFeeTokenInvoker(t)

	recipientHash := c.NewAccount(t).ScriptHash()

	c.Invoke(t, stackitem.Null{}, "setFeePercent", 10)
	c.Invoke(t, 10, "feePercent")

	c.InvokeFail(t, common.ErrFeeTooHigh, "setFeePercent", 11)
	c.InvokeFail(t, common.ErrFeeTooHigh, "setFeePercent", -1)

	t.Run("owner only", func(t *testing.T) {
		acc := c.NewAccount(t)
		c.WithSigners(acc).InvokeFail(t, common.ErrOwnerWitnessFailed, "setFeePercent", 5)
	})
	t.Run("zero disables the fee", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "setFeePercent", 0)
		c.Invoke(t, stackitem.Null{}, "transfer", c.CommitteeHash, recipientHash, toUnits(100))
		require.Equal(t, toUnits(100), balanceOf(t, c, recipientHash))
		c.Invoke(t, big.NewInt(0), "totalFeesCollected")
	})
}

func TestFeeTokenSetFeeCollector(t *testing.T) {
	c := newFeeTokenInvoker(t)

	acc := c.NewAccount(t)
	accHash := acc.ScriptHash()

	t.Run("owner only", func(t *testing.T) {
		c.WithSigners(acc).InvokeFail(t, common.ErrOwnerWitnessFailed, "setFeeCollector", accHash)
	})
	t.Run("missing target", func(t *testing.T) {
		c.InvokeFail(t, common.ErrZeroAddress, "setFeeCollector", nil)
	})

	c.Invoke(t, stackitem.Null{}, "setFeeCollector", accHash)
	c.Invoke(t, stackitem.Null{}, "transfer", c.CommitteeHash, c.NewAccount(t).ScriptHash(), toUnits(100))
	require.Equal(t, toUnits(2), balanceOf(t, c, accHash))
}

func TestFeeTokenPause(t *testing.T) {
	c := newFeeTokenInvoker(t)

	accHash := c.NewAccount(t).ScriptHash()

	c.Invoke(t, stackitem.Null{}, "pause")
	c.InvokeFail(t, common.ErrPaused, "transfer", c.CommitteeHash, accHash, toUnits(1))

	// fee settings stay adjustable while paused
	c.Invoke(t, stackitem.Null{}, "setFeePercent", 5)
	c.Invoke(t, stackitem.Null{}, "setFeeCollector", accHash)

	c.Invoke(t, stackitem.Null{}, "unpause")
	c.Invoke(t, stackitem.Null{}, "transfer", c.CommitteeHash, accHash, toUnits(1))
}
