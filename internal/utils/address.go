package utils

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// ChainParamsForNetwork maps a network name to btcd chain params.
func ChainParamsForNetwork(network string) (*chaincfg.Params, error) {
	switch strings.ToLower(network) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}

// ValidateAddress checks that the tracked address is well formed for the
// given network before any network activity happens.
func ValidateAddress(address, network string) error {
	params, err := ChainParamsForNetwork(network)
	if err != nil {
		return err
	}
	if _, err := btcutil.DecodeAddress(address, params); err != nil {
		return fmt.Errorf("decode address %q: %w", address, err)
	}
	return nil
}
