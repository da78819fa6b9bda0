package jwtx

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrNoKey          = errors.New("jwtx: key not found")
	ErrUnsupportedKey = errors.New("jwtx: unsupported key type")
)

// KeySet holds the issuer's public verification keys by kid. It is safe for
// concurrent use so keys can be swapped while requests are verified.
type KeySet struct {
	mu  sync.RWMutex
	pub map[string]any // kid: *rsa.PublicKey | ed25519.PublicKey | *ecdsa.PublicKey
}

// NewKeySet returns an empty KeySet.
func NewKeySet() *KeySet {
	return &KeySet{pub: make(map[string]any)}
}

// AddKey registers a public key under kid, replacing any previous key.
func (k *KeySet) AddKey(kid string, key any) error {
	if _, err := algFor(key); err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	k.pub[kid] = key
	return nil
}

// AddPEM parses a PKIX "PUBLIC KEY" block and registers it under kid.
func (k *KeySet) AddPEM(kid string, data []byte) error {
	block, _ := pem.Decode(data)
	if block == nil {
		return errors.New("jwtx: no PEM block found")
	}
	if block.Type != "PUBLIC KEY" {
		return fmt.Errorf("jwtx: unexpected PEM block %q", block.Type)
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return fmt.Errorf("jwtx: parse public key: %w", err)
	}
	return k.AddKey(kid, key)
}

// Get returns the public key for the given kid.
func (k *KeySet) Get(kid string) (any, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if pk, ok := k.pub[kid]; ok {
		return pk, nil
	}
	return nil, ErrNoKey
}

// IsReady returns true if the KeySet has at least one key loaded.
func (k *KeySet) IsReady() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.pub) > 0
}

// algFor maps a public key to the JWS algorithm it verifies.
func algFor(key any) (string, error) {
	switch pk := key.(type) {
	case ed25519.PublicKey:
		return "EdDSA", nil
	case *rsa.PublicKey:
		return "RS256", nil
	case *ecdsa.PublicKey:
		if pk.Curve != elliptic.P256() {
			return "", fmt.Errorf("%w: ecdsa curve %s", ErrUnsupportedKey, pk.Curve.Params().Name)
		}
		return "ES256", nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedKey, key)
	}
}
