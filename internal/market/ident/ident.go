// Package ident normalizes and derives the hex addresses that identify
// accounts, collections and the market escrow.
package ident

import (
	"crypto/rand"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"

	apperrors "github.com/openmint/marketplace/internal/errors"
)

// Normalize validates a 20-byte hex address and returns its checksummed form.
// Comparisons elsewhere rely on the normalized representation being canonical.
func Normalize(addr string) (string, error) {
	if !common.IsHexAddress(addr) {
		return "", apperrors.New(apperrors.CodeAccountInvalidAddress,
			fmt.Sprintf("invalid address %q", addr))
	}
	return common.HexToAddress(addr).Hex(), nil
}

// Equal reports whether two address strings name the same account,
// ignoring case and the 0x prefix.
func Equal(a, b string) bool {
	if !common.IsHexAddress(a) || !common.IsHexAddress(b) {
		return false
	}
	return common.HexToAddress(a) == common.HexToAddress(b)
}

// DeriveCollectionAddress derives a fresh collection contract address from the
// collection identity and a random nonce, keccak-style.
func DeriveCollectionAddress(name, symbol string) (string, error) {
	var nonce [16]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(name))
	hasher.Write([]byte{0})
	hasher.Write([]byte(symbol))
	hasher.Write([]byte{0})
	hasher.Write(nonce[:])
	sum := hasher.Sum(nil)
	return common.BytesToAddress(sum[12:]).Hex(), nil
}

// NewEscrowAddress generates the address that holds custody of listed tokens
// and retained overpayments. Generated once per store and pinned.
func NewEscrowAddress() (string, error) {
	var raw [20]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return "", fmt.Errorf("read escrow address: %w", err)
	}
	return common.BytesToAddress(raw[:]).Hex(), nil
}
