package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Token precision shared by all Vera token contracts. Every amount in the
// ledger is an integer scaled by UnitScale relative to whole tokens.
const (
	Decimals  = 18
	UnitScale = 1_000_000_000_000_000_000
)

// Ledger storage schema. Single-byte keys hold scalar values, prefixed keys
// hold per-account and per-pair values.
const (
	keyName   = 'n'
	keySymbol = 'm'
	keySupply = 's'

	prefixBalance   = 'b'
	prefixAllowance = 'a'
)

// InitLedger writes token metadata, sets the contract owner and credits the
// whole initial supply (given in whole tokens) to it. Called once from
// _deploy of every token contract.
func InitLedger(ctx storage.Context, owner interop.Hash160, name, symbol string, initialSupply int) {
	if len(owner) != interop.Hash160Len {
		panic(ErrZeroAddress)
	}
	if initialSupply < 0 {
		panic(ErrInvalidAmount)
	}

	storage.Put(ctx, keyName, name)
	storage.Put(ctx, keySymbol, symbol)
	SetOwner(ctx, owner)

	supply := initialSupply * UnitScale
	storage.Put(ctx, keySupply, supply)
	if supply > 0 {
		setBalance(ctx, owner, supply)
		runtime.Notify("Transfer", interop.Hash160(nil), owner, supply)
	}
}

// TokenName returns the token display name set at deployment.
func TokenName(ctx storage.Context) string {
	return storage.Get(ctx, keyName).(string)
}

// TokenSymbol returns the token ticker symbol set at deployment.
func TokenSymbol(ctx storage.Context) string {
	return storage.Get(ctx, keySymbol).(string)
}

// TotalSupply returns the amount of token units in circulation.
func TotalSupply(ctx storage.Context) int {
	supply := storage.Get(ctx, keySupply)
	if supply != nil {
		return supply.(int)
	}

	return 0
}

// BalanceOf returns the token balance of the account.
func BalanceOf(ctx storage.Context, acc interop.Hash160) int {
	raw := storage.Get(ctx, append([]byte{prefixBalance}, acc...))
	if raw != nil {
		return raw.(int)
	}

	return 0
}

// Credit adds amount to the account's balance.
func Credit(ctx storage.Context, acc interop.Hash160, amount int) {
	setBalance(ctx, acc, BalanceOf(ctx, acc)+amount)
}

// Debit subtracts amount from the account's balance. It panics with
// ErrInsufficientBalance if the balance is smaller than amount. A drained
// account entry is removed from storage.
func Debit(ctx storage.Context, acc interop.Hash160, amount int) {
	balance := BalanceOf(ctx, acc)
	if balance < amount {
		panic(ErrInsufficientBalance)
	}

	setBalance(ctx, acc, balance-amount)
}

// TransferTokens moves amount from one account to another and emits the
// Transfer event. The target must be a valid account, the source must hold
// at least amount. Witness and pause checks are up to the caller.
func TransferTokens(ctx storage.Context, from, to interop.Hash160, amount int) {
	if amount < 0 {
		panic(ErrInvalidAmount)
	}
	if len(to) != interop.Hash160Len {
		panic(ErrZeroAddress)
	}

	Debit(ctx, from, amount)
	Credit(ctx, to, amount)

	runtime.Notify("Transfer", from, to, amount)
}

// MintTokens credits amount of fresh token units to the account and grows
// total supply accordingly. It emits Mint and Transfer (from the zero
// address) events.
func MintTokens(ctx storage.Context, to interop.Hash160, amount int) {
	if amount <= 0 {
		panic(ErrInvalidAmount)
	}
	if len(to) != interop.Hash160Len {
		panic(ErrZeroAddress)
	}

	Credit(ctx, to, amount)
	storage.Put(ctx, keySupply, TotalSupply(ctx)+amount)

	runtime.Notify("Mint", to, amount)
	runtime.Notify("Transfer", interop.Hash160(nil), to, amount)
}

// BurnTokens debits amount from the account and shrinks total supply
// accordingly. It panics with ErrInvalidAmount if amount is negative. It
// emits Burn and Transfer (to the zero address) events.
func BurnTokens(ctx storage.Context, from interop.Hash160, amount int) {
	if amount < 0 {
		panic(ErrInvalidAmount)
	}

	Debit(ctx, from, amount)
	storage.Put(ctx, keySupply, TotalSupply(ctx)-amount)

	runtime.Notify("Burn", from, amount)
	runtime.Notify("Transfer", from, interop.Hash160(nil), amount)
}

// Allowance returns how much spender may move out of owner's balance.
func Allowance(ctx storage.Context, owner, spender interop.Hash160) int {
	raw := storage.Get(ctx, allowanceKey(owner, spender))
	if raw != nil {
		return raw.(int)
	}

	return 0
}

// SetAllowance overwrites the (owner, spender) allowance and emits the
// Approve event.
func SetAllowance(ctx storage.Context, owner, spender interop.Hash160, amount int) {
	if amount < 0 {
		panic(ErrInvalidAmount)
	}
	if len(spender) != interop.Hash160Len {
		panic(ErrZeroAddress)
	}

	storage.Put(ctx, allowanceKey(owner, spender), amount)
	runtime.Notify("Approve", owner, spender, amount)
}

// SpendAllowance decrements the (owner, spender) allowance by amount. It
// panics with ErrAllowanceExceeded if the allowance is smaller than amount.
func SpendAllowance(ctx storage.Context, owner, spender interop.Hash160, amount int) {
	allowed := Allowance(ctx, owner, spender)
	if allowed < amount {
		panic(ErrAllowanceExceeded)
	}

	storage.Put(ctx, allowanceKey(owner, spender), allowed-amount)
}

func allowanceKey(owner, spender interop.Hash160) []byte {
	return append(append([]byte{prefixAllowance}, owner...), spender...)
}

func setBalance(ctx storage.Context, acc interop.Hash160, balance int) {
	key := append([]byte{prefixBalance}, acc...)
	if balance == 0 {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, balance)
	}
}
