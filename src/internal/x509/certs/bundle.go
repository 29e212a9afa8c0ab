// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bufio"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"strconv"
	"strings"
	"time"
)

// RootCert is one entry of a trust store bundle: the metadata header that
// precedes a certificate plus the reassembled PEM block.
type RootCert struct {
	Name        string    `json:"name"`
	Subject     string    `json:"subject"`
	KeyType     string    `json:"keyType"`
	KeyLength   int       `json:"keyLength"`
	NotBefore   time.Time `json:"notBefore"`
	NotAfter    time.Time `json:"notAfter"`
	Certificate string    `json:"certificate"`
}

// timeLayouts lists the timestamp formats accepted in bundle headers.
var timeLayouts = []string{
	time.RFC3339,
	time.RFC1123,
	time.RFC1123Z,
	"2006-01-02 15:04:05",
	"Jan _2 15:04:05 2006 MST",
	"2006-01-02",
}

// ParseRootBundle splits a raw trust store bundle into structured records.
//
// Each entry is a header block of "Key: Value" lines (optionally prefixed
// with '#') followed by one PEM block, either a CERTIFICATE or a PKCS7
// bundle of certificates. Recognized keys are name, subject, key type, key
// length, not before and not after, matched without regard to case, spaces,
// dashes or underscores. Header values win; anything missing is filled from
// the decoded certificate when the PEM body parses. A PKCS7 block expands to
// one record per contained certificate and its header applies to the first.
//
// Parameters:
//   - text: Raw bundle text as served by the assessment API
//
// Returns:
//   - []RootCert: One record per certificate, in bundle order
//   - error: [ErrTruncatedBlock] when the final block has no END marker
func (c *Certificate) ParseRootBundle(text string) ([]RootCert, error) {
	var (
		records   []RootCert
		header    = map[string]string{}
		body      []string
		blockType string
		inBlock   bool
	)

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case inBlock && strings.HasPrefix(line, "-----END"):
			records = append(records, c.buildRecords(header, blockType, body)...)
			header = map[string]string{}
			body = nil
			inBlock = false
		case inBlock:
			if line != "" {
				body = append(body, line)
			}
		case strings.HasPrefix(line, "-----BEGIN"):
			blockType = markerType(line)
			inBlock = true
		default:
			if key, value, ok := parseHeaderLine(line); ok {
				header[key] = value
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if inBlock {
		return nil, ErrTruncatedBlock
	}

	return records, nil
}

// markerType returns the label of a "-----BEGIN LABEL-----" line.
func markerType(line string) string {
	label := strings.TrimPrefix(line, "-----BEGIN")
	return strings.TrimSpace(strings.TrimRight(label, "-"))
}

// parseHeaderLine extracts a normalized key and its value from a metadata line.
func parseHeaderLine(line string) (string, string, bool) {
	line = strings.TrimSpace(strings.TrimLeft(line, "#"))
	key, value, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}

	key = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(key))

	switch key {
	case "name", "subject", "keytype", "keylength", "notbefore", "notafter":
		return key, strings.TrimSpace(value), true
	}
	return "", "", false
}

// buildRecords turns one PEM block into records. A CERTIFICATE block yields
// one record. A PKCS7 block yields one record per contained certificate,
// with the header applied to the first. Other labels are kept verbatim.
func (c *Certificate) buildRecords(header map[string]string, blockType string, body []string) []RootCert {
	pemText := "-----BEGIN " + blockType + "-----\n" + strings.Join(body, "\n") + "\n-----END " + blockType + "-----\n"
	rec := headerRecord(header, pemText)

	switch blockType {
	case c.certBlockType:
		if rec.complete() {
			return []RootCert{rec}
		}
		cert, err := c.Decode([]byte(pemText))
		if err != nil {
			return []RootCert{rec}
		}
		return []RootCert{fillFromCertificate(rec, cert)}
	case pkcs7BlockType:
		certs, err := c.DecodePKCS7([]byte(pemText))
		if err != nil {
			return []RootCert{rec}
		}
		records := make([]RootCert, 0, len(certs))
		for i, cert := range certs {
			entry := RootCert{}
			if i == 0 {
				entry = rec
			}
			entry.Certificate = string(pem.EncodeToMemory(&pem.Block{Type: c.certBlockType, Bytes: cert.Raw}))
			records = append(records, fillFromCertificate(entry, cert))
		}
		return records
	default:
		return []RootCert{rec}
	}
}

func headerRecord(header map[string]string, pemText string) RootCert {
	return RootCert{
		Name:        header["name"],
		Subject:     header["subject"],
		KeyType:     header["keytype"],
		KeyLength:   parseLeadingInt(header["keylength"]),
		NotBefore:   parseTimestamp(header["notbefore"]),
		NotAfter:    parseTimestamp(header["notafter"]),
		Certificate: pemText,
	}
}

// fillFromCertificate sets every field the header left empty.
func fillFromCertificate(rec RootCert, cert *x509.Certificate) RootCert {
	if rec.Name == "" {
		rec.Name = cert.Subject.CommonName
	}
	if rec.Subject == "" {
		rec.Subject = cert.Subject.String()
	}
	if rec.KeyType == "" {
		rec.KeyType = cert.PublicKeyAlgorithm.String()
	}
	if rec.KeyLength == 0 {
		rec.KeyLength = keyLength(cert)
	}
	if rec.NotBefore.IsZero() {
		rec.NotBefore = cert.NotBefore.UTC()
	}
	if rec.NotAfter.IsZero() {
		rec.NotAfter = cert.NotAfter.UTC()
	}
	return rec
}

func (r RootCert) complete() bool {
	return r.Name != "" && r.Subject != "" && r.KeyType != "" &&
		r.KeyLength > 0 && !r.NotBefore.IsZero() && !r.NotAfter.IsZero()
}

// parseLeadingInt reads the leading digits of s, so "2048 bits" yields 2048.
func parseLeadingInt(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// parseTimestamp accepts the layouts in timeLayouts or Unix milliseconds.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC()
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}

	return time.Time{}
}

func keyLength(cert *x509.Certificate) int {
	switch key := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		return key.N.BitLen()
	case *ecdsa.PublicKey:
		return key.Curve.Params().BitSize
	case ed25519.PublicKey:
		return 256
	}
	return 0
}
