package signer

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

// GPGVerifier implements Verifier interface using an OpenPGP keyring
type GPGVerifier struct {
	keyring openpgp.EntityList
}

// NewGPGVerifier creates a new verifier from a public keyring file
func NewGPGVerifier(keyPath string) (*GPGVerifier, error) {
	if keyPath == "" {
		return nil, fmt.Errorf("key path is empty")
	}

	keyFile, err := os.Open(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open key file: %w", err)
	}
	defer keyFile.Close()

	// Try to parse as armored keyring first
	entityList, err := openpgp.ReadArmoredKeyRing(keyFile)
	if err != nil {
		// Try as binary keyring
		if _, seekErr := keyFile.Seek(0, 0); seekErr != nil {
			return nil, fmt.Errorf("failed to rewind key file: %w", seekErr)
		}
		entityList, err = openpgp.ReadKeyRing(keyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read key: %w", err)
		}
	}

	return NewGPGVerifierFromKeyRing(entityList)
}

// NewGPGVerifierFromKeyRing creates a verifier trusting the given keys
func NewGPGVerifierFromKeyRing(keyring openpgp.EntityList) (*GPGVerifier, error) {
	if len(keyring) == 0 {
		return nil, fmt.Errorf("no keys found in keyring")
	}

	return &GPGVerifier{keyring: keyring}, nil
}

// VerifyDetached checks an armored or binary detached signature over data
func (v *GPGVerifier) VerifyDetached(data, signature []byte) (string, error) {
	var (
		signer *openpgp.Entity
		err    error
	)

	if isArmored(signature) {
		signer, err = openpgp.CheckArmoredDetachedSignature(v.keyring, bytes.NewReader(data), bytes.NewReader(signature), nil)
	} else {
		signer, err = openpgp.CheckDetachedSignature(v.keyring, bytes.NewReader(data), bytes.NewReader(signature), nil)
	}
	if err != nil {
		return "", fmt.Errorf("signature verification failed: %w", err)
	}

	return identityName(signer), nil
}

func isArmored(data []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(data), []byte("-----BEGIN PGP"))
}

func identityName(entity *openpgp.Entity) string {
	if entity == nil {
		return ""
	}
	if id := entity.PrimaryIdentity(); id != nil {
		return id.Name
	}
	return fmt.Sprintf("%X", entity.PrimaryKey.Fingerprint)
}
