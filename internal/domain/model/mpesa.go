package model

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"academic-hub/internal/domain"
)

// MinConfirmationLen guards against empty or junk submissions.
const MinConfirmationLen = 20

var (
	// A transaction code is a run of exactly 10 alphanumerics bounded by word
	// boundaries. Matching is case-insensitive, but a candidate made purely of
	// lowercase letters is skipped: ordinary ten-letter prose words ("describing")
	// would otherwise be mistaken for codes. Real M-Pesa codes are uppercase
	// and usually carry digits.
	referenceRe = regexp.MustCompile(`(?i)\b[A-Z0-9]{10}\b`)
	lowerWordRe = regexp.MustCompile(`^[a-z]+$`)

	// Amount must be introduced by a currency marker (KES, Ksh, Ksh.);
	// thousands separators and a 2-digit decimal part are tolerated.
	amountRe = regexp.MustCompile(`(?i)(?:KES|Ksh\.?)\s*([\d,]+(?:\.\d{2})?)`)
)

// MpesaConfirmation is the outcome of parsing a pasted confirmation message.
// AmountCents is 0 when the message does not expose a parsable amount.
type MpesaConfirmation struct {
	Reference   string
	AmountCents int64
}

// ParseMpesaConfirmation extracts the transaction reference and amount from
// free-form pasted text. Pure and deterministic; no I/O.
//
// Trust boundary: the message is operator-pasted text, never a gateway
// callback. Nothing here proves the payment happened. Replay protection by
// reference (enforced at the ledger) is the only guard, and it cannot detect
// a fabricated fresh code.
//
// Known limitation, kept on purpose: when several 10-character tokens appear,
// the first one wins, left to right.
func ParseMpesaConfirmation(message string) (*MpesaConfirmation, error) {
	clean := strings.TrimSpace(message)
	if len(clean) < MinConfirmationLen {
		return nil, domain.ErrMessageTooShort
	}

	var reference string
	for _, tok := range referenceRe.FindAllString(clean, -1) {
		if lowerWordRe.MatchString(tok) {
			continue
		}
		reference = strings.ToUpper(tok)
		break
	}
	if reference == "" {
		return nil, domain.ErrReferenceNotFound
	}

	var amountCents int64
	if m := amountRe.FindStringSubmatch(clean); m != nil {
		raw := strings.ReplaceAll(m[1], ",", "")
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			amountCents = int64(math.Round(f * 100))
		}
	}

	return &MpesaConfirmation{Reference: reference, AmountCents: amountCents}, nil
}
