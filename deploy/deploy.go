/*
Package deploy provides Vera token contract deployment routine.

Deploy requires a running Neo blockchain represented by an RPC connection and
an unlocked owner account. Contracts already present on the chain are left
untouched, so the routine may be re-run safely.
*/
package deploy

import (
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for Vera contract deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to
	// the blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract
	// by its address. GetContractStateByHash returns an error with
	// 'Unknown contract' substring if the requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// contractDeployer is the part of the native ContractManagement wrapper the
// routine needs.
type contractDeployer interface {
	Deploy(exe *nef.File, manif *manifest.Manifest, data any) (util.Uint256, uint32, error)
}

// ContractPrm groups deployment parameters of a single token contract.
type ContractPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest

	// Token display name and ticker symbol.
	Name   string
	Symbol string
	// Initial supply in whole tokens. The owner account receives all of it.
	InitialSupply int64
}

// Prm groups all parameters of the Vera contract deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy to.
	Blockchain Blockchain

	// Owner account used for transaction signing (must be unlocked). It
	// becomes the authority principal of every deployed contract and
	// receives the initial supply.
	OwnerAccount *wallet.Account

	// Contracts to deploy. Nil entries are skipped.
	Token        *ContractPrm
	FeeToken     *ContractPrm
	StakingToken *ContractPrm
}

// Deploy deploys the configured Vera token contracts to the given Neo
// blockchain. Deploy aborts on the first fatal error or by context.
func Deploy(ctx context.Context, prm Prm) error {
	if prm.Logger == nil {
		return errors.New("missing logger")
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.OwnerAccount)
	if err != nil {
		return fmt.Errorf("init transaction sender from owner account: %w", err)
	}

	mgmt := management.New(act)
	owner := prm.OwnerAccount.ScriptHash()

	for _, c := range []*ContractPrm{prm.Token, prm.FeeToken, prm.StakingToken} {
		if c == nil {
			continue
		}

		if err := ctx.Err(); err != nil {
			return fmt.Errorf("deployment interrupted: %w", err)
		}

		err = deployContract(prm.Logger, prm.Blockchain, mgmt, act, owner, c)
		if err != nil {
			return fmt.Errorf("deploy %s contract: %w", c.Manifest.Name, err)
		}
	}

	return nil
}

func deployContract(l *zap.Logger, b Blockchain, mgmt contractDeployer, act *actor.Actor, owner util.Uint160, c *ContractPrm) error {
	addr := state.CreateContractHash(owner, c.NEF.Checksum, c.Manifest.Name)

	l = l.With(zap.String("contract", c.Manifest.Name), zap.Stringer("address", addr))

	_, err := b.GetContractStateByHash(addr)
	if err == nil {
		l.Info("contract is already deployed, skipping")
		return nil
	}

	l.Info("deploying contract...")

	data := []any{owner, c.Name, c.Symbol, c.InitialSupply}

	res, err := act.Wait(mgmt.Deploy(&c.NEF, &c.Manifest, data))
	if err != nil {
		return fmt.Errorf("send deployment transaction: %w", err)
	}
	if res.VMState != vmstate.Halt {
		return fmt.Errorf("deployment transaction failed: %s", res.FaultException)
	}

	l.Info("contract successfully deployed")

	return nil
}
