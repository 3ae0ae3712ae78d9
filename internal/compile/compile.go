/*
Package compile builds Vera contracts from their source directories.

It mirrors what neotest does for the test suite: the contract package is
compiled with the neo-go compiler and the manifest is assembled from the
config.yml lying next to the source. The deployment tooling uses it to avoid
shipping prebuilt NEF artifacts.
*/
package compile

import (
	"fmt"
	"path"

	"github.com/nspcc-dev/neo-go/cli/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/compiler"
	"github.com/nspcc-dev/neo-go/pkg/config"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

// Contract is a contract compiled from source, ready for deployment.
type Contract struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// Source compiles the contract from the given source directory using the
// config.yml manifest description located in it.
func Source(ctrPath string) (Contract, error) {
	// nef.NewFile() cares about version a lot.
	if config.Version == "" {
		config.Version = "0.90.0-local"
	}

	ne, di, err := compiler.CompileWithOptions(ctrPath, nil, nil)
	if err != nil {
		return Contract{}, fmt.Errorf("compile %s: %w", ctrPath, err)
	}

	conf, err := smartcontract.ParseContractConfig(path.Join(ctrPath, "config.yml"))
	if err != nil {
		return Contract{}, fmt.Errorf("parse contract config: %w", err)
	}

	o := &compiler.Options{}
	o.Name = conf.Name
	o.ContractEvents = conf.Events
	o.ContractSupportedStandards = conf.SupportedStandards
	o.Permissions = make([]manifest.Permission, len(conf.Permissions))
	for i := range conf.Permissions {
		o.Permissions[i] = manifest.Permission(conf.Permissions[i])
	}
	o.SafeMethods = conf.SafeMethods

	m, err := compiler.CreateManifest(di, o)
	if err != nil {
		return Contract{}, fmt.Errorf("create manifest: %w", err)
	}

	return Contract{NEF: *ne, Manifest: *m}, nil
}
