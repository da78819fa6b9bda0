package jwtx_test

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/aussiebroadwan/barcommun/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	exampleIssuer = "https://id.barcommun.example"
	exampleKID    = "test-key"
)

func newClaims(ttl time.Duration) jwtx.Claims {
	now := time.Now().UTC()
	return jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    exampleIssuer,
			Subject:   "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV",
			Audience:  jwt.ClaimStrings{"membership"},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Roles: []string{"board", "member"},
		Email: "board@barcommun.example",
	}
}

func sign(t *testing.T, method jwt.SigningMethod, key any, kid string, c jwtx.Claims) string {
	t.Helper()
	tok := jwt.NewWithClaims(method, c)
	if kid != "" {
		tok.Header["kid"] = kid
	}
	s, err := tok.SignedString(key)
	require.NoError(t, err)
	return s
}

func TestVerifyEdDSA(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.False(t, keys.IsReady())
	require.NoError(t, keys.AddKey(exampleKID, pub))
	require.True(t, keys.IsReady())

	v := jwtx.NewVerifier(keys, jwtx.VerifyOptions{Issuer: exampleIssuer, Audience: []string{"membership"}})

	t.Run("valid token", func(t *testing.T) {
		want := newClaims(5 * time.Minute)
		got, err := v.Verify(sign(t, jwt.SigningMethodEdDSA, priv, exampleKID, want))
		require.NoError(t, err)
		require.Equal(t, want.Subject, got.Subject)
		require.Equal(t, want.Roles, got.Roles)
		require.Equal(t, want.Email, got.Email)
	})

	t.Run("expired token", func(t *testing.T) {
		_, err := v.Verify(sign(t, jwt.SigningMethodEdDSA, priv, exampleKID, newClaims(-time.Minute)))
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		c := newClaims(time.Minute)
		c.Issuer = "https://evil.example"
		_, err := v.Verify(sign(t, jwt.SigningMethodEdDSA, priv, exampleKID, c))
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("wrong audience", func(t *testing.T) {
		c := newClaims(time.Minute)
		c.Audience = jwt.ClaimStrings{"chat"}
		_, err := v.Verify(sign(t, jwt.SigningMethodEdDSA, priv, exampleKID, c))
		require.ErrorIs(t, err, jwtx.ErrAudience)
	})

	t.Run("unknown kid", func(t *testing.T) {
		_, err := v.Verify(sign(t, jwt.SigningMethodEdDSA, priv, "other", newClaims(time.Minute)))
		require.ErrorIs(t, err, jwtx.ErrUnknownKID)
	})

	t.Run("missing kid", func(t *testing.T) {
		_, err := v.Verify(sign(t, jwt.SigningMethodEdDSA, priv, "", newClaims(time.Minute)))
		require.Error(t, err)
	})

	t.Run("signed by another key", func(t *testing.T) {
		_, otherPriv, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)
		_, err = v.Verify(sign(t, jwt.SigningMethodEdDSA, otherPriv, exampleKID, newClaims(time.Minute)))
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify("not.a.jwt")
		require.Error(t, err)
	})
}

func TestVerifyRejectsAlgorithmMismatch(t *testing.T) {
	edPub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	ecPriv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddKey(exampleKID, edPub))
	v := jwtx.NewVerifier(keys, jwtx.VerifyOptions{})

	// ES256 token presented under the kid of an Ed25519 key.
	_, err = v.Verify(sign(t, jwt.SigningMethodES256, ecPriv, exampleKID, newClaims(time.Minute)))
	require.ErrorIs(t, err, jwtx.ErrAlgMismatch)
}

func TestKeySetAddPEM(t *testing.T) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	data := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddPEM(exampleKID, data))

	v := jwtx.NewVerifier(keys, jwtx.VerifyOptions{Issuer: exampleIssuer})
	got, err := v.Verify(sign(t, jwt.SigningMethodES256, priv, exampleKID, newClaims(time.Minute)))
	require.NoError(t, err)
	require.Equal(t, []string{"board", "member"}, got.Roles)

	t.Run("rejects non public key blocks", func(t *testing.T) {
		bad := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte("x")})
		require.Error(t, keys.AddPEM("bad", bad))
		require.Error(t, keys.AddPEM("bad", []byte("nothing here")))
	})

	t.Run("rejects unsupported curves", func(t *testing.T) {
		p384, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
		require.NoError(t, err)
		require.ErrorIs(t, keys.AddKey("p384", &p384.PublicKey), jwtx.ErrUnsupportedKey)
	})
}
