package token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/vera-labs/vera-contract/common"
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

	runtime.Log("token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	common.CheckOwnerWitness(storage.GetContext())

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("token contract updated")
}

// Name returns the token display name.
func Name() string {
	return common.TokenName(storage.GetReadOnlyContext())
}

// Symbol returns the token ticker symbol.
func Symbol() string {
	return common.TokenSymbol(storage.GetReadOnlyContext())
}

// Decimals returns precision of token balances. All amounts are integers
// scaled by 10 to this power relative to whole tokens.
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
// behalf of the spender, decrementing the spender's allowance. It can be
// invoked only with the witness of the spender account. Unlike Transfer it
// is not gated by the pause switch.
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
