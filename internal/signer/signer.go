package signer

// Verifier interface for checking listing signatures
type Verifier interface {
	// VerifyDetached checks an armored detached signature over data and
	// returns the identity of the signing key
	VerifyDetached(data, signature []byte) (string, error)
}
