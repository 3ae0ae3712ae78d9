package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// keyOwner is the storage key of the contract owner account.
const keyOwner = 'o'

// Owner returns the account allowed to invoke privileged methods.
func Owner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, keyOwner).(interop.Hash160)
}

// SetOwner overwrites the contract owner. It panics with ErrZeroAddress if
// the new owner is not a valid account.
func SetOwner(ctx storage.Context, owner interop.Hash160) {
	if len(owner) != interop.Hash160Len {
		panic(ErrZeroAddress)
	}

	storage.Put(ctx, keyOwner, owner)
}

// CheckOwnerWitness checks that the transaction is witnessed by the contract
// owner. It panics with ErrOwnerWitnessFailed message on fail.
func CheckOwnerWitness(ctx storage.Context) {
	checkWitnessWithPanic(Owner(ctx), ErrOwnerWitnessFailed)
}

// CheckAccountWitness checks witness of the passed account.
// It panics with ErrWitnessFailed message on fail.
func CheckAccountWitness(acc interop.Hash160) {
	checkWitnessWithPanic(acc, ErrWitnessFailed)
}

func checkWitnessWithPanic(acc []byte, panicMsg string) {
	if !runtime.CheckWitness(acc) {
		panic(panicMsg)
	}
}
