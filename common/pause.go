package common

import "github.com/nspcc-dev/neo-go/pkg/interop/storage"

// keyPaused is the storage key of the pause flag. The key is absent while the
// contract is running.
const keyPaused = 'x'

// IsPaused returns true if the operational pause switch is on.
func IsPaused(ctx storage.Context) bool {
	return storage.Get(ctx, keyPaused) != nil
}

// Pause turns the pause switch on. It panics with ErrAlreadyPaused if the
// contract is already paused.
func Pause(ctx storage.Context) {
	if IsPaused(ctx) {
		panic(ErrAlreadyPaused)
	}

	storage.Put(ctx, keyPaused, 1)
}

// Unpause turns the pause switch off. It panics with ErrNotPaused if the
// contract is not paused.
func Unpause(ctx storage.Context) {
	if !IsPaused(ctx) {
		panic(ErrNotPaused)
	}

	storage.Delete(ctx, keyPaused)
}

// CheckNotPaused panics with ErrPaused if the pause switch is on. Methods
// that move user balances call it before touching the ledger.
func CheckNotPaused(ctx storage.Context) {
	if IsPaused(ctx) {
		panic(ErrPaused)
	}
}
