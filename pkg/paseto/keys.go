package pasetotoken

import (
	"strings"

	paseto "aidanwoods.dev/go-paseto"
)

type Mode string

const (
	ModeLocal  Mode = "local"  // v4.local, shared secret
	ModePublic Mode = "public" // v4.public, ed25519
)

// Keys holds parsed key material. In public mode Secret is only present
// on services that mint tokens; the CRM API normally carries Public alone.
type Keys struct {
	Mode      Mode
	Symmetric *paseto.V4SymmetricKey
	Secret    *paseto.V4AsymmetricSecretKey
	Public    *paseto.V4AsymmetricPublicKey
}

// KeyStrings is the hex form found in config.
type KeyStrings struct {
	Mode         Mode
	SymmetricHex string
	SecretHex    string
	PublicHex    string
}

func LoadKeys(in KeyStrings) (Keys, error) {
	switch in.Mode {
	case ModeLocal:
		return loadLocal(strings.TrimSpace(in.SymmetricHex))
	case ModePublic:
		return loadPublic(strings.TrimSpace(in.SecretHex), strings.TrimSpace(in.PublicHex))
	default:
		return Keys{}, configErr("unknown mode %q, want local or public", in.Mode)
	}
}

func loadLocal(symHex string) (Keys, error) {
	if symHex == "" {
		return Keys{}, configErr("local mode needs a symmetric key")
	}
	k, err := paseto.V4SymmetricKeyFromHex(symHex)
	if err != nil {
		return Keys{}, configErr("symmetric key: %v", err)
	}
	return Keys{Mode: ModeLocal, Symmetric: &k}, nil
}

func loadPublic(secHex, pubHex string) (Keys, error) {
	if secHex == "" && pubHex == "" {
		return Keys{}, configErr("public mode needs a secret or public key")
	}
	keys := Keys{Mode: ModePublic}
	if secHex != "" {
		sk, err := paseto.NewV4AsymmetricSecretKeyFromHex(secHex)
		if err != nil {
			return Keys{}, configErr("secret key: %v", err)
		}
		pk := sk.Public()
		keys.Secret, keys.Public = &sk, &pk
	}
	// An explicit public key wins over the derived one.
	if pubHex != "" {
		pk, err := paseto.NewV4AsymmetricPublicKeyFromHex(pubHex)
		if err != nil {
			return Keys{}, configErr("public key: %v", err)
		}
		keys.Public = &pk
	}
	return keys, nil
}

// NewLocalKeys generates a throwaway v4.local key, used by tests and the demo setup.
func NewLocalKeys() Keys {
	k := paseto.NewV4SymmetricKey()
	return Keys{Mode: ModeLocal, Symmetric: &k}
}

func (k Keys) ExportHex() KeyStrings {
	out := KeyStrings{Mode: k.Mode}
	if k.Symmetric != nil {
		out.SymmetricHex = k.Symmetric.ExportHex()
	}
	if k.Secret != nil {
		out.SecretHex = k.Secret.ExportHex()
	}
	if k.Public != nil {
		out.PublicHex = k.Public.ExportHex()
	}
	return out
}
