package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/domain"

	"github.com/rs/zerolog"
)

// HMACSignatureVerifier implements ports.SignatureVerifier using HMAC-SHA256
// over the notification's canonical payload.
type HMACSignatureVerifier struct {
	secretKey string
}

// NewHMACSignatureVerifier creates a verifier bound to the gateway's shared secret.
func NewHMACSignatureVerifier(secretKey string) *HMACSignatureVerifier {
	return &HMACSignatureVerifier{secretKey: secretKey}
}

// Verify checks the notification signature using constant-time comparison.
func (v *HMACSignatureVerifier) Verify(n domain.Notification) bool {
	mac := hmac.New(sha256.New, []byte(v.secretKey))
	mac.Write([]byte(n.SignaturePayload()))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(n.Signature))
}

// InsecureSkipVerifier accepts every notification. It must be selected by an
// explicit configuration flag; config.Validate rejects it in release mode.
type InsecureSkipVerifier struct {
	log zerolog.Logger
}

// NewInsecureSkipVerifier creates a verifier that bypasses signature checks.
func NewInsecureSkipVerifier(log zerolog.Logger) *InsecureSkipVerifier {
	log.Warn().Msg("webhook signature verification is DISABLED")
	return &InsecureSkipVerifier{log: log}
}

// Verify always returns true.
func (v *InsecureSkipVerifier) Verify(n domain.Notification) bool {
	v.log.Debug().Str("reference", n.Reference).Msg("skipping signature verification")
	return true
}
