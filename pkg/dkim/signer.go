package dkim

import (
	"bytes"
	"crypto"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"

	msgauthdkim "github.com/emersion/go-msgauth/dkim"
)

// signedHeaders are the contact email headers covered by the signature.
var signedHeaders = []string{"from", "to", "reply-to", "subject", "date", "message-id", "content-type"}

// Options configures a Signer. Domain is optional and defaults to the
// domain of the mailbox the message is sent from.
type Options struct {
	Selector   string
	Domain     string
	PrivateKey string // inline PEM
	KeyPath    string
}

// Signer adds a DKIM-Signature header to outgoing contact messages.
// A nil *Signer leaves messages untouched.
type Signer struct {
	opts msgauthdkim.SignOptions
}

// New builds a Signer from opts, or returns (nil, nil) when DKIM is not
// configured at all.
func New(opts Options) (*Signer, error) {
	if opts == (Options{}) {
		return nil, nil
	}
	if opts.Selector == "" {
		return nil, errors.New("dkim: selector is required when enabling DKIM")
	}

	pemData := []byte(opts.PrivateKey)
	if len(pemData) == 0 {
		if opts.KeyPath == "" {
			return nil, errors.New("dkim: provide a private key or key path")
		}
		data, err := os.ReadFile(opts.KeyPath)
		if err != nil {
			return nil, fmt.Errorf("dkim: read private key: %w", err)
		}
		pemData = data
	}

	key, err := parsePrivateKey(pemData)
	if err != nil {
		return nil, fmt.Errorf("dkim: parse private key: %w", err)
	}

	return &Signer{opts: msgauthdkim.SignOptions{
		Domain:                 strings.ToLower(opts.Domain),
		Selector:               opts.Selector,
		Signer:                 key,
		HeaderCanonicalization: msgauthdkim.CanonicalizationRelaxed,
		BodyCanonicalization:   msgauthdkim.CanonicalizationRelaxed,
		HeaderKeys:             signedHeaders,
	}}, nil
}

// Domain returns the configured signing domain, if any.
func (s *Signer) Domain() string {
	if s == nil {
		return ""
	}
	return s.opts.Domain
}

// Sign prepends a DKIM-Signature to a CRLF-terminated message sent by from.
func (s *Signer) Sign(message []byte, from string) ([]byte, error) {
	if s == nil {
		return message, nil
	}

	opts := s.opts
	if opts.Domain == "" {
		opts.Domain = domainOf(from)
	}
	if opts.Domain == "" {
		return nil, errors.New("dkim: unable to determine signing domain")
	}

	var signed bytes.Buffer
	if err := msgauthdkim.Sign(&signed, bytes.NewReader(message), &opts); err != nil {
		return nil, fmt.Errorf("dkim: signing failed: %w", err)
	}
	return signed.Bytes(), nil
}

// parsePrivateKey reads the first PEM block. go-msgauth signs with RSA and
// Ed25519 keys only.
func parsePrivateKey(pemData []byte) (crypto.Signer, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("no PEM block found")
	}

	var key any
	var err error
	switch block.Type {
	case "RSA PRIVATE KEY":
		key, err = x509.ParsePKCS1PrivateKey(block.Bytes)
	case "PRIVATE KEY":
		key, err = x509.ParsePKCS8PrivateKey(block.Bytes)
	default:
		return nil, fmt.Errorf("unsupported PEM block %q", block.Type)
	}
	if err != nil {
		return nil, err
	}

	switch k := key.(type) {
	case *rsa.PrivateKey:
		return k, nil
	case ed25519.PrivateKey:
		return k, nil
	}
	return nil, fmt.Errorf("unsupported private key type %T", key)
}

func domainOf(address string) string {
	address = strings.Trim(strings.TrimSpace(address), "<>")
	if i := strings.LastIndex(address, "@"); i >= 0 && i+1 < len(address) {
		return strings.ToLower(address[i+1:])
	}
	return ""
}
