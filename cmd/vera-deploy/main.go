package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/vera-labs/vera-contract/deploy"
	"github.com/vera-labs/vera-contract/internal/compile"
	"go.uber.org/zap"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	walletPath := flag.String("wallet", "", "Path to the owner wallet file")
	walletPassword := flag.String("password", "", "Password of the owner wallet account")
	tokenName := flag.String("name", "Vera", "Token display name")
	tokenSymbol := flag.String("symbol", "VERA", "Token ticker symbol")
	initialSupply := flag.Int64("supply", 1_000_000, "Initial supply in whole tokens")
	contractsDir := flag.String("contracts", "contracts", "Directory with contract sources")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *walletPath == "":
		log.Fatal("missing owner wallet")
	}

	err := run(*neoRPCEndpoint, *walletPath, *walletPassword, *tokenName, *tokenSymbol, *initialSupply, *contractsDir)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Vera contracts are successfully deployed")
}

func run(endpoint, walletPath, password, name, symbol string, supply int64, contractsDir string) error {
	ctx := context.Background()

	c, err := rpcclient.New(ctx, endpoint, rpcclient.Options{})
	if err != nil {
		return fmt.Errorf("init Neo RPC client: %w", err)
	}

	defer c.Close()

	if err := c.Init(); err != nil {
		return fmt.Errorf("initialize Neo RPC client: %w", err)
	}

	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return fmt.Errorf("open owner wallet: %w", err)
	}

	acc := w.GetAccount(w.GetChangeAddress())
	if acc == nil {
		return fmt.Errorf("owner wallet has no usable account")
	}

	if err := acc.Decrypt(password, w.Scrypt); err != nil {
		return fmt.Errorf("unlock owner account: %w", err)
	}

	l, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	prm := deploy.Prm{
		Logger:       l,
		Blockchain:   c,
		OwnerAccount: acc,
	}

	variants := []struct {
		dir    string
		symbol string
		target **deploy.ContractPrm
	}{
		{dir: "token", symbol: symbol, target: &prm.Token},
		{dir: "feetoken", symbol: "F" + symbol, target: &prm.FeeToken},
		{dir: "stakingtoken", symbol: "S" + symbol, target: &prm.StakingToken},
	}

	for _, v := range variants {
		compiled, err := compile.Source(contractsDir + "/" + v.dir)
		if err != nil {
			return fmt.Errorf("compile %s contract: %w", v.dir, err)
		}

		*v.target = &deploy.ContractPrm{
			NEF:           compiled.NEF,
			Manifest:      compiled.Manifest,
			Name:          name,
			Symbol:        v.symbol,
			InitialSupply: supply,
		}
	}

	return deploy.Deploy(ctx, prm)
}
