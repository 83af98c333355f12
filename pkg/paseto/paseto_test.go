package pasetotoken

import (
	"testing"

	paseto "aidanwoods.dev/go-paseto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Config{Mode: ModeLocal, Issuer: "crm", Audience: "crm-api"}, NewLocalKeys())
	require.NoError(t, err)
	return m
}

func TestIssueAndVerifyLocal(t *testing.T) {
	m := newLocal(t)
	uid := uuid.New()
	sid := uuid.New()

	tok, err := m.IssueAccess(uid, &sid)
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, uid, claims.GetUserID())
	require.NotNil(t, claims.GetSessionID())
	assert.Equal(t, sid, *claims.GetSessionID())
	assert.Equal(t, "access", claims.GetTokenType())
	assert.False(t, claims.IsExpired())
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	tok, err := newLocal(t).IssueAccess(uuid.New(), nil)
	require.NoError(t, err)

	_, err = newLocal(t).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongAudience(t *testing.T) {
	keys := NewLocalKeys()
	issuer, err := New(Config{Mode: ModeLocal, Issuer: "crm", Audience: "other"}, keys)
	require.NoError(t, err)
	verifier, err := New(Config{Mode: ModeLocal, Issuer: "crm", Audience: "crm-api"}, keys)
	require.NoError(t, err)

	tok, err := issuer.IssueAccess(uuid.New(), nil)
	require.NoError(t, err)
	_, err = verifier.Verify(tok)
	assert.Error(t, err)
}

func TestPublicModeVerifyOnly(t *testing.T) {
	sk := paseto.NewV4AsymmetricSecretKey()
	signer, err := LoadKeys(KeyStrings{Mode: ModePublic, SecretHex: sk.ExportHex()})
	require.NoError(t, err)
	verifyOnly, err := LoadKeys(KeyStrings{Mode: ModePublic, PublicHex: sk.Public().ExportHex()})
	require.NoError(t, err)

	cfg := Config{Mode: ModePublic, Issuer: "crm", Audience: "crm-api"}
	ms, err := New(cfg, signer)
	require.NoError(t, err)
	mv, err := New(cfg, verifyOnly)
	require.NoError(t, err)

	tok, err := ms.IssueAccess(uuid.New(), nil)
	require.NoError(t, err)
	_, err = mv.Verify(tok)
	require.NoError(t, err)

	_, err = mv.IssueAccess(uuid.New(), nil)
	assert.Error(t, err)
}

func TestLoadKeysErrors(t *testing.T) {
	_, err := LoadKeys(KeyStrings{Mode: ModeLocal})
	assert.Error(t, err)
	_, err = LoadKeys(KeyStrings{Mode: ModePublic})
	assert.Error(t, err)
	_, err = LoadKeys(KeyStrings{Mode: "jwt"})
	var cfgErr ConfigError
	assert.ErrorAs(t, err, &cfgErr)

	hex := NewLocalKeys().ExportHex()
	k, err := LoadKeys(hex)
	require.NoError(t, err)
	assert.Equal(t, hex.SymmetricHex, k.ExportHex().SymmetricHex)
}

func TestBearerToken(t *testing.T) {
	tok, ok := BearerToken("Bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	_, ok = BearerToken("Basic abc")
	assert.False(t, ok)
	_, ok = BearerToken("Bearer ")
	assert.False(t, ok)
	_, ok = BearerToken("")
	assert.False(t, ok)
}
