package tests

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
	"github.com/vera-labs/vera-contract/common"
)

func TestTokenDeploy(t *testing.T) {
	c := newTokenInvoker(t)

	c.Invoke(t, "Vera", "name")
	c.Invoke(t, "VERA", "symbol")
	c.Invoke(t, common.Decimals, "decimals")
	c.Invoke(t, toUnits(initialSupply), "totalSupply")
	c.Invoke(t, toUnits(initialSupply), "balanceOf", c.CommitteeHash)
	c.Invoke(t, false, "isPaused")
	require.Equal(t, c.CommitteeHash, contractOwner(t, c))
}

func TestTokenTransfer(t *testing.T) {
	c := newTokenInvoker(t)

	acc := c.NewAccount(t)
	accHash := acc.ScriptHash()

	c.Invoke(t, stackitem.Null{}, "transfer", c.CommitteeHash, accHash, toUnits(100))
	require.Equal(t, toUnits(100), balanceOf(t, c, accHash))
	require.Equal(t, toUnits(initialSupply-100), balanceOf(t, c, c.CommitteeHash))
	c.Invoke(t, toUnits(initialSupply), "totalSupply")

	t.Run("zero amount", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "transfer", c.CommitteeHash, accHash, 0)
		require.Equal(t, toUnits(100), balanceOf(t, c, accHash))
	})
	t.Run("negative amount", func(t *testing.T) {
		c.InvokeFail(t, common.ErrInvalidAmount, "transfer", c.CommitteeHash, accHash, -1)
	})
	t.Run("missing target", func(t *testing.T) {
		c.InvokeFail(t, common.ErrZeroAddress, "transfer", c.CommitteeHash, nil, toUnits(1))
	})

	cAcc := c.WithSigners(acc)
	t.Run("insufficient balance", func(t *testing.T) {
		cAcc.InvokeFail(t, common.ErrInsufficientBalance, "transfer", accHash, c.CommitteeHash, toUnits(101))
	})
	t.Run("missing witness", func(t *testing.T) {
		cAcc.InvokeFail(t, common.ErrWitnessFailed, "transfer", c.CommitteeHash, accHash, toUnits(1))
	})
}

func TestTokenAllowance(t *testing.T) {
	c := newTokenInvoker(t)

	spender := c.NewAccount(t)
	spenderHash := spender.ScriptHash()
	recipientHash := c.NewAccount(t).ScriptHash()

	c.Invoke(t, big.NewInt(0), "allowance", c.CommitteeHash, spenderHash)
	c.Invoke(t, stackitem.Null{}, "approve", c.CommitteeHash, spenderHash, toUnits(100))
	c.Invoke(t, toUnits(100), "allowance", c.CommitteeHash, spenderHash)

	t.Run("approve overwrites", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "approve", c.CommitteeHash, spenderHash, toUnits(150))
		c.Invoke(t, toUnits(150), "allowance", c.CommitteeHash, spenderHash)
		c.Invoke(t, stackitem.Null{}, "approve", c.CommitteeHash, spenderHash, toUnits(100))
	})
	t.Run("owner witness required", func(t *testing.T) {
		c.WithSigners(spender).InvokeFail(t, common.ErrWitnessFailed,
			"approve", c.CommitteeHash, spenderHash, toUnits(1))
	})

	cSpender := c.WithSigners(spender)
	cSpender.Invoke(t, stackitem.Null{}, "transferFrom",
		spenderHash, c.CommitteeHash, recipientHash, toUnits(60))

	require.Equal(t, toUnits(60), balanceOf(t, c, recipientHash))
	require.Equal(t, toUnits(initialSupply-60), balanceOf(t, c, c.CommitteeHash))
	c.Invoke(t, toUnits(40), "allowance", c.CommitteeHash, spenderHash)

	t.Run("exceeding allowance", func(t *testing.T) {
		cSpender.InvokeFail(t, common.ErrAllowanceExceeded, "transferFrom",
			spenderHash, c.CommitteeHash, recipientHash, toUnits(41))
	})
	t.Run("spender witness required", func(t *testing.T) {
		c.InvokeFail(t, common.ErrWitnessFailed, "transferFrom",
			spenderHash, c.CommitteeHash, recipientHash, toUnits(1))
	})
	t.Run("missing target", func(t *testing.T) {
		cSpender.InvokeFail(t, common.ErrZeroAddress, "transferFrom",
			spenderHash, c.CommitteeHash, nil, toUnits(1))
	})
}

func TestTokenMintBurn(t *testing.T) {
	c := newTokenInvoker(t)

	acc := c.NewAccount(t)
	accHash := acc.ScriptHash()

	c.Invoke(t, stackitem.Null{}, "mint", accHash, toUnits(500))
	require.Equal(t, toUnits(500), balanceOf(t, c, accHash))
	c.Invoke(t, toUnits(initialSupply+500), "totalSupply")

	t.Run("zero amount", func(t *testing.T) {
		c.InvokeFail(t, common.ErrInvalidAmount, "mint", accHash, 0)
	})
	t.Run("missing target", func(t *testing.T) {
		c.InvokeFail(t, common.ErrZeroAddress, "mint", nil, toUnits(1))
	})
	t.Run("owner only", func(t *testing.T) {
		c.WithSigners(acc).InvokeFail(t, common.ErrOwnerWitnessFailed, "mint", accHash, toUnits(1))
	})

	c.Invoke(t, stackitem.Null{}, "burn", toUnits(500))
	require.Equal(t, toUnits(initialSupply-500), balanceOf(t, c, c.CommitteeHash))
	c.Invoke(t, toUnits(initialSupply), "totalSupply")

	t.Run("burning more than the balance", func(t *testing.T) {
		c.InvokeFail(t, common.ErrInsufficientBalance, "burn", toUnits(initialSupply))
	})
	t.Run("negative amount", func(t *testing.T) {
		c.InvokeFail(t, common.ErrInvalidAmount, "burn", toUnits(-100))
		c.Invoke(t, toUnits(initialSupply), "totalSupply")
	})
	t.Run("burn is owner only", func(t *testing.T) {
		c.WithSigners(acc).InvokeFail(t, common.ErrOwnerWitnessFailed, "burn", toUnits(1))
	})
}

func TestTokenPause(t *testing.T) {
	c := newTokenInvoker(t)

	acc := c.NewAccount(t)
	accHash := acc.ScriptHash()
	c.Invoke(t, stackitem.Null{}, "approve", c.CommitteeHash, accHash, toUnits(50))

	t.Run("owner only", func(t *testing.T) {
		c.WithSigners(acc).InvokeFail(t, common.ErrOwnerWitnessFailed, "pause")
	})

	c.Invoke(t, stackitem.Null{}, "pause")
	c.Invoke(t, true, "isPaused")

	c.InvokeFail(t, common.ErrAlreadyPaused, "pause")
	c.InvokeFail(t, common.ErrPaused, "transfer", c.CommitteeHash, accHash, toUnits(1))
	c.InvokeFail(t, common.ErrPaused, "mint", accHash, toUnits(1))

	// transferFrom and burn stay available while the contract is paused
	c.WithSigners(acc).Invoke(t, stackitem.Null{}, "transferFrom",
		accHash, c.CommitteeHash, accHash, toUnits(50))
	require.Equal(t, toUnits(50), balanceOf(t, c, accHash))
	c.Invoke(t, stackitem.Null{}, "burn", toUnits(10))
	c.Invoke(t, toUnits(initialSupply-10), "totalSupply")

	c.Invoke(t, stackitem.Null{}, "unpause")
	c.Invoke(t, false, "isPaused")
	c.InvokeFail(t, common.ErrNotPaused, "unpause")
	c.Invoke(t, stackitem.Null{}, "transfer", c.CommitteeHash, accHash, toUnits(1))
}

func TestTokenTransferOwnership(t *testing.T) {
	c := newTokenInvoker(t)

	acc := c.NewAccount(t)
	accHash := acc.ScriptHash()

	t.Run("owner only", func(t *testing.T) {
		c.WithSigners(acc).InvokeFail(t, common.ErrOwnerWitnessFailed, "transferOwnership", accHash)
	})
	t.Run("missing target", func(t *testing.T) {
		c.InvokeFail(t, common.ErrZeroAddress, "transferOwnership", nil)
	})

	c.Invoke(t, stackitem.Null{}, "transferOwnership", accHash)
	require.Equal(t, accHash, contractOwner(t, c))

	// admin rights follow the owner key
	c.InvokeFail(t, common.ErrOwnerWitnessFailed, "pause")
	c.WithSigners(acc).Invoke(t, stackitem.Null{}, "pause")
}
