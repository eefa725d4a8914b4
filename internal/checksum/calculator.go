package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Calculator is an interface for computing document checksums.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of normalized content.
	// Normalization makes checksums resilient to formatting changes.
	CalculateNormalized(content []byte) string
}

// SHA256 implements checksum calculation using SHA-256.
// Normalization for XML content:
//  1. Remove comments (<!-- -->); CDATA sections and quoted attribute values are kept verbatim
//  2. Drop whitespace between tags
//  3. Collapse remaining whitespace to single spaces
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	normalized := c.normalize(string(content))
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

type scanState int

const (
	ssText scanState = iota
	ssTag
	ssQuoted
)

// normalize applies the normalization rules to content.
func (c SHA256) normalize(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	state := ssText
	var quote byte
	pendingSpace := false
	var last byte

	emit := func(ch byte) {
		b.WriteByte(ch)
		last = ch
	}

	for i := 0; i < len(content); i++ {
		ch := content[i]

		switch state {
		case ssQuoted:
			emit(ch)
			if ch == quote {
				state = ssTag
			}
			continue

		case ssTag:
			if isSpace(ch) {
				pendingSpace = true
				continue
			}
			if pendingSpace && ch != '>' && ch != '/' && ch != '?' {
				emit(' ')
			}
			pendingSpace = false
			emit(ch)
			switch ch {
			case '"', '\'':
				quote = ch
				state = ssQuoted
			case '>':
				state = ssText
			}
			continue
		}

		// text
		if strings.HasPrefix(content[i:], "<!--") {
			end := strings.Index(content[i+4:], "-->")
			if end < 0 {
				break
			}
			i += 4 + end + 2
			continue
		}
		if strings.HasPrefix(content[i:], "<![CDATA[") {
			end := strings.Index(content[i:], "]]>")
			if end < 0 {
				end = len(content) - i - 3
			}
			if pendingSpace && last != '>' && last != 0 {
				emit(' ')
			}
			pendingSpace = false
			b.WriteString(content[i : i+end+3])
			last = '>'
			i += end + 2
			continue
		}
		if isSpace(ch) {
			pendingSpace = true
			continue
		}
		if ch == '<' {
			pendingSpace = false
			emit(ch)
			state = ssTag
			continue
		}
		if pendingSpace && last != '>' && last != 0 {
			emit(' ')
		}
		pendingSpace = false
		emit(ch)
	}

	return b.String()
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
