package feetoken

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/vera-labs/vera-contract/common"
)

// Fee storage schema, laid out next to the common ledger keys.
const (
	keyFeePercent   = 'f'
	keyFeeCollector = 'c'
	keyTotalFees    = 't'
)

const (
	// defaultFeePercent is the transfer fee applied until the owner
	// changes it.
	defaultFeePercent = 2
	// MaxFeePercent is the upper bound of the transfer fee.
	MaxFeePercent = 10
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

	// the deployer collects fees until reassigned
	storage.Put(ctx, keyFeePercent, defaultFeePercent)
	storage.Put(ctx, keyFeeCollector, owner)

	runtime.Log("fee token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	common.CheckOwnerWitness(storage.GetContext())

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("fee token contract updated")
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

// BalanceOf returns the token balance of the specified account.
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

// FeePercent returns the percentage of every Transfer amount diverted to the
// fee collector.
func FeePercent() int {
	return storage.Get(storage.GetReadOnlyContext(), keyFeePercent).(int)
}

// FeeCollector returns the account credited with the fee portion of every
// Transfer.
func FeeCollector() interop.Hash160 {
	return storage.Get(storage.GetReadOnlyContext(), keyFeeCollector).(interop.Hash160)
}

// TotalFeesCollected returns the cumulative amount of fees charged by
// Transfer since deployment.
func TotalFeesCollected() int {
	raw := storage.Get(storage.GetReadOnlyContext(), keyTotalFees)
	if raw != nil {
		return raw.(int)
	}

	return 0
}

// Transfer moves amount of token units from one account to another, keeping
// the current fee percentage of it for the fee collector. The source is
// debited the gross amount, the target is credited amount minus fee, the
// collector is credited the fee. The balance requirement is checked against
// the gross amount. It can be invoked only with the witness of the source
// account and fails while the contract is paused.
//
// It produces a Transfer notification for the net leg and, if the fee is
// non-zero, a second Transfer notification for the fee leg.
func Transfer(from, to interop.Hash160, amount int) {
	common.CheckAccountWitness(from)

	ctx := storage.GetContext()
	common.CheckNotPaused(ctx)

	if amount < 0 {
		panic(common.ErrInvalidAmount)
	}
	if len(to) != interop.Hash160Len {
		panic(common.ErrZeroAddress)
	}

	fee := amount * storage.Get(ctx, keyFeePercent).(int) / 100
	net := amount - fee

	common.Debit(ctx, from, amount)
	common.Credit(ctx, to, net)
	runtime.Notify("Transfer", from, to, net)

	if fee > 0 {
		collector := storage.Get(ctx, keyFeeCollector).(interop.Hash160)
		common.Credit(ctx, collector, fee)
		storage.Put(ctx, keyTotalFees, TotalFeesCollected()+fee)
		runtime.Notify("Transfer", from, collector, fee)
	}
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
// behalf of the spender, decrementing the spender's allowance. No fee is
// charged and the pause switch does not affect it.
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

// SetFeePercent changes the transfer fee percentage. It can be invoked only
// by the contract owner and fails with ErrFeeTooHigh outside
// [0, MaxFeePercent].
func SetFeePercent(percent int) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(ctx)

	if percent < 0 || percent > MaxFeePercent {
		panic(common.ErrFeeTooHigh)
	}

	storage.Put(ctx, keyFeePercent, percent)
}

// SetFeeCollector reassigns the account credited with transfer fees. It can
// be invoked only by the contract owner.
func SetFeeCollector(collector interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(ctx)

	if len(collector) != interop.Hash160Len {
		panic(common.ErrZeroAddress)
	}

	storage.Put(ctx, keyFeeCollector, collector)
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
