/*
Package token implements the base Vera fungible token contract.

The contract maintains the account ledger: balances, allowances and total
supply, all expressed in the smallest token unit (18 decimals). The deploying
owner account receives the whole initial supply and is the only account
allowed to mint, burn, pause and hand over ownership. Transfer and Mint are
blocked while the operational pause switch is on; TransferFrom and Burn are
not.

# Contract notifications

Transfer notification. Emitted by Transfer, TransferFrom and (as the second
event) by Mint and Burn with the zero address on the corresponding side.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Approve notification. Emitted by Approve.

	Approve:
	  - name: owner
	    type: Hash160
	  - name: spender
	    type: Hash160
	  - name: amount
	    type: Integer

Mint notification. Emitted by Mint.

	Mint:
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Burn notification. Emitted by Burn.

	Burn:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package token
