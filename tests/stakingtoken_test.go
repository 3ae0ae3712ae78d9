package tests

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
	"github.com/vera-labs/vera-contract/common"
	stakingrpc "github.com/vera-labs/vera-contract/rpc/stakingtoken"
)

// rewardFor mirrors the linear accrual formula of the contract: elapsed
// seconds times the reward rate times the principal, scaled down by the
// balance unit.
func rewardFor(principal *big.Int, rate int64, seconds uint64) *big.Int {
	r := new(big.Int).SetUint64(seconds)
	r.Mul(r, big.NewInt(rate))
	r.Mul(r, principal)
	return r.Div(r, unitScale)
}

func stakeInfo(t *testing.T, c *neotest.ContractInvoker, acc util.Uint160) *stakingrpc.StakeInfo {
	s, err := c.TestInvoke(t, "getStakeInfo", acc)
	require.NoError(t, err)

	info := new(stakingrpc.StakeInfo)
	require.NoError(t, info.FromStackItem(s.Top().Item()))
	return info
}

func TestStakingDeploy(t *testing.T) {
	c := newStakingTokenInvoker(t)

	c.Invoke(t, "Vera Staking", "name")
	c.Invoke(t, "SVERA", "symbol")
	c.Invoke(t, toUnits(initialSupply), "totalSupply")
	c.Invoke(t, big.NewInt(0), "totalStaked")
	c.Invoke(t, 1, "rewardPerSecond")
}

func TestStakingStake(t *testing.T) {
	c := newStakingTokenInvoker(t)

	c.Invoke(t, stackitem.Null{}, "stake", c.CommitteeHash, toUnits(100))

	require.Equal(t, toUnits(initialSupply-100), balanceOf(t, c, c.CommitteeHash))
	c.Invoke(t, toUnits(100), "totalStaked")
	// staked principal leaves the balance but not the supply
	c.Invoke(t, toUnits(initialSupply), "totalSupply")

	info := stakeInfo(t, c, c.CommitteeHash)
	require.Equal(t, toUnits(100), info.Principal)
	require.Zero(t, info.Claimed.Sign())

	t.Run("zero amount", func(t *testing.T) {
		c.InvokeFail(t, common.ErrInvalidAmount, "stake", c.CommitteeHash, 0)
	})
	t.Run("negative amount", func(t *testing.T) {
		c.InvokeFail(t, common.ErrInvalidAmount, "stake", c.CommitteeHash, -1)
	})
	t.Run("more than the balance", func(t *testing.T) {
		c.InvokeFail(t, common.ErrInsufficientBalance, "stake", c.CommitteeHash, toUnits(initialSupply))
	})
	t.Run("missing witness", func(t *testing.T) {
		acc := c.NewAccount(t)
		c.WithSigners(acc).InvokeFail(t, common.ErrWitnessFailed, "stake", c.CommitteeHash, toUnits(1))
	})
}

func TestStakingStakeOnActiveStake(t *testing.T) {
	c := newStakingTokenInvoker(t)

	first := toUnits(100)
	c.Invoke(t, stackitem.Null{}, "stake", c.CommitteeHash, first)
	stakedAt := c.TopBlock(t).Timestamp

	addBlockAt(t, c, stakedAt+100_000)

	// the second stake settles the accrued reward before merging principals
	c.Invoke(t, stackitem.Null{}, "stake", c.CommitteeHash, toUnits(50))
	restakedAt := c.TopBlock(t).Timestamp

	reward := rewardFor(first, 1, (restakedAt-stakedAt)/1000)
	info := stakeInfo(t, c, c.CommitteeHash)
	require.Equal(t, toUnits(150), info.Principal)
	require.Equal(t, reward, info.Claimed)
	require.Zero(t, info.StakedSeconds.Sign())
	c.Invoke(t, toUnits(150), "totalStaked")

	// the settled reward is minted, the extra principal leaves the balance
	expected := new(big.Int).Add(toUnits(initialSupply-150), reward)
	require.Equal(t, expected, balanceOf(t, c, c.CommitteeHash))
	c.Invoke(t, new(big.Int).Add(toUnits(initialSupply), reward), "totalSupply")

	t.Run("zero-reward settlement is silent", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "stake", c.CommitteeHash, toUnits(10))

		info := stakeInfo(t, c, c.CommitteeHash)
		require.Equal(t, toUnits(160), info.Principal)
		require.Equal(t, reward, info.Claimed)
	})
}

func TestStakingRewardAccrual(t *testing.T) {
	c := newStakingTokenInvoker(t)

	principal := toUnits(100)
	c.Invoke(t, stackitem.Null{}, "stake", c.CommitteeHash, principal)
	stakedAt := c.TopBlock(t).Timestamp

	t.Run("nothing accrued yet", func(t *testing.T) {
		c.InvokeFail(t, common.ErrNoRewards, "claimReward", c.CommitteeHash)
	})
	t.Run("unstaked account accrues nothing", func(t *testing.T) {
		c.Invoke(t, big.NewInt(0), "calculateReward", c.NewAccount(t).ScriptHash())
	})

	addBlockAt(t, c, stakedAt+100_000)

	balanceBefore := balanceOf(t, c, c.CommitteeHash)
	c.Invoke(t, stackitem.Null{}, "claimReward", c.CommitteeHash)
	claimedAt := c.TopBlock(t).Timestamp

	reward := rewardFor(principal, 1, (claimedAt-stakedAt)/1000)
	require.Equal(t, new(big.Int).Add(balanceBefore, reward), balanceOf(t, c, c.CommitteeHash))
	c.Invoke(t, new(big.Int).Add(toUnits(initialSupply), reward), "totalSupply")

	info := stakeInfo(t, c, c.CommitteeHash)
	require.Equal(t, principal, info.Principal)
	require.Equal(t, reward, info.Claimed)

	t.Run("window restarts on claim", func(t *testing.T) {
		c.InvokeFail(t, common.ErrNoRewards, "claimReward", c.CommitteeHash)
	})

	// accrual is linear in duration: twice the elapsed time pays twice
	addBlockAt(t, c, claimedAt+200_000)
	c.Invoke(t, stackitem.Null{}, "claimReward", c.CommitteeHash)
	secondClaimedAt := c.TopBlock(t).Timestamp

	second := rewardFor(principal, 1, (secondClaimedAt-claimedAt)/1000)
	require.Equal(t, new(big.Int).Mul(reward, big.NewInt(2)), second)
	require.Equal(t, new(big.Int).Add(reward, second), stakeInfo(t, c, c.CommitteeHash).Claimed)
}

func TestStakingUnstake(t *testing.T) {
	c := newStakingTokenInvoker(t)

	c.Invoke(t, stackitem.Null{}, "stake", c.CommitteeHash, toUnits(1000))
	stakedAt := c.TopBlock(t).Timestamp

	t.Run("more than staked", func(t *testing.T) {
		c.InvokeFail(t, common.ErrInsufficientStake, "unstake", c.CommitteeHash, toUnits(1001))
	})
	t.Run("negative amount", func(t *testing.T) {
		acc := c.NewAccount(t)
		accHash := acc.ScriptHash()

		// must not fabricate principal out of a negative balance
		c.WithSigners(acc).InvokeFail(t, common.ErrInvalidAmount, "unstake", accHash, toUnits(-100))
		require.Zero(t, balanceOf(t, c, accHash).Sign())
		require.Zero(t, stakeInfo(t, c, accHash).Principal.Sign())
		c.Invoke(t, toUnits(1000), "totalStaked")
	})
	t.Run("missing witness", func(t *testing.T) {
		acc := c.NewAccount(t)
		c.WithSigners(acc).InvokeFail(t, common.ErrWitnessFailed, "unstake", c.CommitteeHash, toUnits(1))
	})

	addBlockAt(t, c, stakedAt+50_000)

	balanceBefore := balanceOf(t, c, c.CommitteeHash)
	c.Invoke(t, stackitem.Null{}, "unstake", c.CommitteeHash, toUnits(500))
	unstakedAt := c.TopBlock(t).Timestamp

	// partial unstake settles the pending reward over the full principal
	reward := rewardFor(toUnits(1000), 1, (unstakedAt-stakedAt)/1000)
	expected := new(big.Int).Add(balanceBefore, toUnits(500))
	expected.Add(expected, reward)
	require.Equal(t, expected, balanceOf(t, c, c.CommitteeHash))
	c.Invoke(t, toUnits(500), "totalStaked")

	info := stakeInfo(t, c, c.CommitteeHash)
	require.Equal(t, toUnits(500), info.Principal)
	require.Equal(t, reward, info.Claimed)
	require.Zero(t, info.StakedSeconds.Sign())

	// full unstake removes the record entirely
	c.Invoke(t, stackitem.Null{}, "unstake", c.CommitteeHash, toUnits(500))
	c.Invoke(t, big.NewInt(0), "totalStaked")

	info = stakeInfo(t, c, c.CommitteeHash)
	require.Zero(t, info.Principal.Sign())
	require.Zero(t, info.Claimed.Sign())

	require.Equal(t, new(big.Int).Add(toUnits(initialSupply), reward),
		balanceOf(t, c, c.CommitteeHash))
}

func TestStakingSetRewardPerSecond(t *testing.T) {
	c := newStakingTokenInvoker(t)

	c.Invoke(t, stackitem.Null{}, "setRewardPerSecond", 100)
	c.Invoke(t, 100, "rewardPerSecond")

	c.InvokeFail(t, common.ErrRateOutOfBounds, "setRewardPerSecond", 0)
	c.InvokeFail(t, common.ErrRateOutOfBounds, "setRewardPerSecond", 101)

	t.Run("owner only", func(t *testing.T) {
		acc := c.NewAccount(t)
		c.WithSigners(acc).InvokeFail(t, common.ErrOwnerWitnessFailed, "setRewardPerSecond", 10)
	})

	// accrual scales with the configured rate
	principal := toUnits(10)
	c.Invoke(t, stackitem.Null{}, "stake", c.CommitteeHash, principal)
	stakedAt := c.TopBlock(t).Timestamp

	addBlockAt(t, c, stakedAt+10_000)

	c.Invoke(t, stackitem.Null{}, "claimReward", c.CommitteeHash)
	claimedAt := c.TopBlock(t).Timestamp

	reward := rewardFor(principal, 100, (claimedAt-stakedAt)/1000)
	require.Equal(t, reward, stakeInfo(t, c, c.CommitteeHash).Claimed)
}

func TestStakingPause(t *testing.T) {
	c := newStakingTokenInvoker(t)

	accHash := c.NewAccount(t).ScriptHash()

	c.Invoke(t, stackitem.Null{}, "pause")
	c.InvokeFail(t, common.ErrPaused, "transfer", c.CommitteeHash, accHash, toUnits(1))

	// staking operations are not transfer-gated
	c.Invoke(t, stackitem.Null{}, "stake", c.CommitteeHash, toUnits(10))
	stakedAt := c.TopBlock(t).Timestamp

	addBlockAt(t, c, stakedAt+10_000)

	c.Invoke(t, stackitem.Null{}, "claimReward", c.CommitteeHash)
	c.Invoke(t, stackitem.Null{}, "unstake", c.CommitteeHash, toUnits(10))
	c.Invoke(t, big.NewInt(0), "totalStaked")
}
