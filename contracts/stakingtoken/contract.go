package stakingtoken

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/vera-labs/vera-contract/common"
)

// StakeRecord stores the staking state of a single account. A record exists
// only while the account has principal staked; full unstake removes it so
// that "no stake" and "stake with zero elapsed time" stay distinguishable.
type StakeRecord struct {
	// Staked amount, excluding accrued rewards.
	Principal int
	// Block timestamp (ms) of the last stake, unstake or claim.
	StartedAt int
	// Total reward claimed over the record's lifetime.
	Claimed int
}

// StakeInfo is the aggregate returned by GetStakeInfo.
type StakeInfo struct {
	Principal     int
	StakedSeconds int
	PendingReward int
	Claimed       int
}

// Staking storage schema, laid out next to the common ledger keys.
const (
	prefixStake    = 'k'
	keyTotalStaked = 'g'
	keyRewardRate  = 'r'
)

const (
	// defaultRewardPerSecond is the reward rate applied until the owner
	// changes it.
	defaultRewardPerSecond = 1
	// MinRewardPerSecond and MaxRewardPerSecond bound the reward rate.
	MinRewardPerSecond = 1
	MaxRewardPerSecond = 100
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.([]any)
	owner := args[0].(interop.Hash160)
	name := args[1].(string)
	symbol := args[2].(string)
	initialSupply := args[3].(int)

	ctx := storage.GetContext()
	common.InitLedger(ctx, owner, name, symbol, initialSupply)

	storage.Put(ctx, keyRewardRate, defaultRewardPerSecond)

	runtime.Log("staking token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	common.CheckOwnerWitness(storage.GetContext())

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("staking token contract updated")
}

// Name returns the token display name.
func Name() string {
	return common.TokenName(storage.GetReadOnlyContext())
}

// Symbol returns the token ticker symbol.
func Symbol() string {
	return common.TokenSymbol(storage.GetReadOnlyContext())
}

// Decimals returns precision of token balances.
func Decimals() int {
	return common.Decimals
}

// TotalSupply returns the amount of token units in circulation.
func TotalSupply() int {
	return common.TotalSupply(storage.GetReadOnlyContext())
}

// BalanceOf returns the liquid token balance of the specified account.
// Staked principal is not part of it.
func BalanceOf(account interop.Hash160) int {
	return common.BalanceOf(storage.GetReadOnlyContext(), account)
}

// Allowance returns how much spender may currently move out of owner's
// balance via TransferFrom.
func Allowance(owner, spender interop.Hash160) int {
	return common.Allowance(storage.GetReadOnlyContext(), owner, spender)
}

// Owner returns the account allowed to invoke privileged methods.
func Owner() interop.Hash160 {
	return common.Owner(storage.GetReadOnlyContext())
}

// IsPaused returns true if the operational pause switch is on.
func IsPaused() bool {
	return common.IsPaused(storage.GetReadOnlyContext())
}

// TotalStaked returns the sum of all stake record principals.
func TotalStaked() int {
	raw := storage.Get(storage.GetReadOnlyContext(), keyTotalStaked)
	if raw != nil {
		return raw.(int)
	}

	return 0
}

// RewardPerSecond returns the reward accrued per second per UnitScale of
// staked principal.
func RewardPerSecond() int {
	return storage.Get(storage.GetReadOnlyContext(), keyRewardRate).(int)
}

// Transfer moves amount of token units from one account to another. It can
// be invoked only with the witness of the source account and fails while the
// contract is paused.
//
// It produces the Transfer notification.
func Transfer(from, to interop.Hash160, amount int) {
	common.CheckAccountWitness(from)

	ctx := storage.GetContext()
	common.CheckNotPaused(ctx)
	common.TransferTokens(ctx, from, to, amount)
}

// Approve overwrites the allowance of spender over owner's tokens. It can be
// invoked only with the witness of the owner account.
//
// It produces the Approve notification.
func Approve(owner, spender interop.Hash160, amount int) {
	common.CheckAccountWitness(owner)

	common.SetAllowance(storage.GetContext(), owner, spender, amount)
}

// TransferFrom moves amount of token units from one account to another on
// behalf of the spender, decrementing the spender's allowance. The pause
// switch does not affect it.
//
// It produces the Transfer notification.
func TransferFrom(spender, from, to interop.Hash160, amount int) {
	common.CheckAccountWitness(spender)

	if len(to) != interop.Hash160Len {
		panic(common.ErrZeroAddress)
	}

	ctx := storage.GetContext()
	common.SpendAllowance(ctx, from, spender, amount)
	common.TransferTokens(ctx, from, to, amount)
}

// Mint credits amount of fresh token units to the account and increases
// total supply. It can be invoked only by the contract owner and fails while
// the contract is paused.
//
// It produces Mint and Transfer notifications.
func Mint(to interop.Hash160, amount int) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(ctx)
	common.CheckNotPaused(ctx)

	common.MintTokens(ctx, to, amount)
}

// Burn debits amount of token units from the owner account and decreases
// total supply. It can be invoked only by the contract owner. The pause
// switch does not affect it.
//
// It produces Burn and Transfer notifications.
func Burn(amount int) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(ctx)

	common.BurnTokens(ctx, common.Owner(ctx), amount)
}

// Stake moves amount of the account's liquid balance into the staked state.
// A previously active stake is settled first: its accrued reward (if any) is
// claimed exactly as ClaimReward does, then the principals are merged and
// the accrual window restarts. It can be invoked only with the witness of
// the account.
//
// It produces the Staked notification, preceded by RewardClaimed, Mint and
// Transfer notifications when settlement paid out a reward.
func Stake(account interop.Hash160, amount int) {
	common.CheckAccountWitness(account)

	ctx := storage.GetContext()

	if amount <= 0 {
		panic(common.ErrInvalidAmount)
	}
	if amount > common.BalanceOf(ctx, account) {
		panic(common.ErrInsufficientBalance)
	}

	rec := settleReward(ctx, account, getStakeRecord(ctx, account))

	common.Debit(ctx, account, amount)

	rec.Principal += amount
	rec.StartedAt = runtime.GetTime()
	putStakeRecord(ctx, account, rec)
	storage.Put(ctx, keyTotalStaked, TotalStaked()+amount)

	runtime.Notify("Staked", account, amount)
}

// Unstake returns amount of staked principal to the account's liquid
// balance. The stake is settled first, the same way Stake does it. When the
// remaining principal is zero the stake record is removed entirely,
// otherwise the accrual window restarts. It can be invoked only with the
// witness of the account.
//
// It produces the Unstaked notification, preceded by RewardClaimed, Mint and
// Transfer notifications when settlement paid out a reward.
func Unstake(account interop.Hash160, amount int) {
	common.CheckAccountWitness(account)

	ctx := storage.GetContext()

	if amount < 0 {
		panic(common.ErrInvalidAmount)
	}

	rec := getStakeRecord(ctx, account)
	if amount > rec.Principal {
		panic(common.ErrInsufficientStake)
	}

	rec = settleReward(ctx, account, rec)

	rec.Principal -= amount
	common.Credit(ctx, account, amount)
	storage.Put(ctx, keyTotalStaked, TotalStaked()-amount)

	if rec.Principal == 0 {
		storage.Delete(ctx, stakeKey(account))
	} else {
		rec.StartedAt = runtime.GetTime()
		putStakeRecord(ctx, account, rec)
	}

	runtime.Notify("Unstaked", account, amount)
}

// ClaimReward mints the reward accrued by the account's stake since the last
// settlement, adds it to the record's claimed counter and restarts the
// accrual window. It fails with ErrNoRewards when nothing has accrued. It
// can be invoked only with the witness of the account.
//
// It produces RewardClaimed, Mint and Transfer notifications.
func ClaimReward(account interop.Hash160) {
	common.CheckAccountWitness(account)

	ctx := storage.GetContext()

	rec := getStakeRecord(ctx, account)
	if pendingReward(ctx, rec) == 0 {
		panic(common.ErrNoRewards)
	}

	settleReward(ctx, account, rec)
}

// CalculateReward returns the reward accrued by the account's stake since
// the last settlement. It returns 0 for an unstaked account and never fails.
func CalculateReward(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return pendingReward(ctx, getStakeRecord(ctx, account))
}

// GetStakeInfo returns the account's staking state: principal, seconds since
// the accrual window started, pending reward and total claimed reward. All
// fields are zero for an unstaked account.
func GetStakeInfo(account interop.Hash160) StakeInfo {
	ctx := storage.GetReadOnlyContext()

	rec := getStakeRecord(ctx, account)
	if rec.Principal == 0 {
		return StakeInfo{}
	}

	return StakeInfo{
		Principal:     rec.Principal,
		StakedSeconds: (runtime.GetTime() - rec.StartedAt) / 1000,
		PendingReward: pendingReward(ctx, rec),
		Claimed:       rec.Claimed,
	}
}

// SetRewardPerSecond changes the staking reward rate. It can be invoked only
// by the contract owner and fails with ErrRateOutOfBounds outside
// [MinRewardPerSecond, MaxRewardPerSecond].
func SetRewardPerSecond(rate int) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(ctx)

	if rate < MinRewardPerSecond || rate > MaxRewardPerSecond {
		panic(common.ErrRateOutOfBounds)
	}

	storage.Put(ctx, keyRewardRate, rate)
}

// Pause turns the operational pause switch on, blocking Transfer and Mint.
// It can be invoked only by the contract owner.
func Pause() {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(ctx)
	common.Pause(ctx)
}

// Unpause turns the operational pause switch off. It can be invoked only by
// the contract owner.
func Unpause() {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(ctx)
	common.Unpause(ctx)
}

// TransferOwnership reassigns the privileged account. It can be invoked only
// by the current contract owner.
func TransferOwnership(newOwner interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(ctx)
	common.SetOwner(ctx, newOwner)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// pendingReward computes the linear reward accrued by the record: elapsed
// seconds times the reward rate times the principal, scaled down by
// UnitScale. Truncating integer division, zero for an absent record.
func pendingReward(ctx storage.Context, rec StakeRecord) int {
	if rec.Principal == 0 {
		return 0
	}

	elapsed := (runtime.GetTime() - rec.StartedAt) / 1000
	rate := storage.Get(ctx, keyRewardRate).(int)

	return elapsed * rate * rec.Principal / common.UnitScale
}

// settleReward is the internal entry point of the claim logic shared with
// ClaimReward. A zero pending reward is a no-op here, while a direct claim
// reports it as an error. On payout the reward is minted to the account, the
// claimed counter grows and the accrual window restarts. The updated record
// is both stored and returned for further mutation by the caller.
func settleReward(ctx storage.Context, account interop.Hash160, rec StakeRecord) StakeRecord {
	reward := pendingReward(ctx, rec)
	if reward == 0 {
		return rec
	}

	rec.Claimed += reward
	rec.StartedAt = runtime.GetTime()
	putStakeRecord(ctx, account, rec)

	runtime.Notify("RewardClaimed", account, reward)
	common.MintTokens(ctx, account, reward)

	return rec
}

func getStakeRecord(ctx storage.Context, account interop.Hash160) StakeRecord {
	data := storage.Get(ctx, stakeKey(account))
	if data != nil {
		return std.Deserialize(data.([]byte)).(StakeRecord)
	}

	return StakeRecord{}
}

func putStakeRecord(ctx storage.Context, account interop.Hash160, rec StakeRecord) {
	common.SetSerialized(ctx, stakeKey(account), rec)
}

func stakeKey(account interop.Hash160) []byte {
	return append([]byte{prefixStake}, account...)
}
