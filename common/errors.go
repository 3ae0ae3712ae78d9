package common

// Error messages thrown by Vera token contracts. These strings are matched
// literally by clients and tests, so they must stay stable between releases.
var (
	// ErrOwnerWitnessFailed appears when a privileged method is invoked
	// without the contract owner's witness.
	ErrOwnerWitnessFailed = "owner witness check failed"
	// ErrWitnessFailed appears when a method acting on behalf of an
	// account is invoked without that account's witness.
	ErrWitnessFailed = "witness check failed"
	// ErrPaused appears when a transfer-affecting method is invoked while
	// the contract is paused.
	ErrPaused = "contract is paused"
	// ErrAlreadyPaused appears when Pause is invoked on a paused contract.
	ErrAlreadyPaused = "contract is already paused"
	// ErrNotPaused appears when Unpause is invoked on a running contract.
	ErrNotPaused = "contract is not paused"
	// ErrZeroAddress appears when a method receives an empty or malformed
	// account where a real one is required.
	ErrZeroAddress = "zero address target"
	// ErrInsufficientBalance appears when an account is debited beyond its
	// balance.
	ErrInsufficientBalance = "insufficient balance"
	// ErrInsufficientStake appears when more principal is unstaked than
	// the account has staked.
	ErrInsufficientStake = "insufficient staked amount"
	// ErrAllowanceExceeded appears when TransferFrom moves more than the
	// spender's allowance.
	ErrAllowanceExceeded = "allowance exceeded"
	// ErrInvalidAmount appears when an amount is zero or negative where a
	// positive value is required.
	ErrInvalidAmount = "amount must be positive"
	// ErrFeeTooHigh appears when the transfer fee percent is set outside
	// [0, MaxFeePercent].
	ErrFeeTooHigh = "fee percent out of range"
	// ErrRateOutOfBounds appears when the staking reward rate is set
	// outside [MinRewardPerSecond, MaxRewardPerSecond].
	ErrRateOutOfBounds = "reward rate out of range"
	// ErrNoRewards appears when ClaimReward is invoked with nothing
	// accrued.
	ErrNoRewards = "no rewards to claim"
)
