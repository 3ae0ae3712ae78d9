/*
Package stakingtoken implements the staking variant of the Vera token.

It carries the whole base token surface and adds a time-based staking reward
engine. An account moves liquid balance into a per-account stake record with
Stake and back with Unstake. While staked, a reward accrues linearly:

	reward = elapsedSeconds * rewardPerSecond * principal / 1e18

with truncating integer division. ClaimReward mints the accrued reward to
the account and restarts the accrual window; Stake and Unstake run the same
settlement internally before touching the principal, so accrual is always
computed over the pre-mutation principal and duration. A settlement with
nothing accrued is an error only for a direct ClaimReward call; inside Stake
and Unstake it is a silent no-op.

A fully unstaked account has its stake record removed, resetting the claimed
counter and duration tracking.

# Contract notifications

In addition to the base Transfer, Approve, Mint and Burn notifications:

Staked notification. Emitted by Stake after the principal mutation.

	Staked:
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer

Unstaked notification. Emitted by Unstake after the principal mutation.

	Unstaked:
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer

RewardClaimed notification. Emitted by ClaimReward and by the internal
settlement of Stake and Unstake, directly before the Mint and Transfer
notifications of the reward payout.

	RewardClaimed:
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package stakingtoken
