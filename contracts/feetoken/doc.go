/*
Package feetoken implements the fee-on-transfer variant of the Vera token.

It carries the whole base token surface and replaces Transfer with a
fee-splitting version: a configurable percentage (at most 10%, 2% by default)
of every transferred amount is diverted to the fee collector account, the
recipient receives the remainder. The fee is computed with truncating integer
division, so the two legs always sum to the gross amount. TransferFrom
charges no fee. The cumulative charged fee is tracked and never decreases.

The deploying owner is the initial fee collector.

# Contract notifications

The package emits the same Transfer, Approve, Mint and Burn notifications as
the base token contract. A fee-bearing Transfer emits two Transfer
notifications: the net leg to the recipient first, then the fee leg to the
collector. The fee leg is omitted when the fee amounts to zero.
*/
package feetoken
