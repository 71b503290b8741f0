package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"weatherstay/internal/pkg/clock"
)

var (
	ErrInvalidSignature   = errors.New("payments: invalid webhook signature")
	ErrMalformedSignature = errors.New("payments: malformed signature header")
	ErrStaleTimestamp     = errors.New("payments: signature timestamp outside tolerance")
)

// DefaultTolerance bounds replay of captured webhook payloads.
const DefaultTolerance = 5 * time.Minute

// Verifier checks webhook signatures of the form
//
//	t=<unix seconds>,v1=<hex hmac-sha256>
//
// where the MAC covers "<t>.<raw body>". Verification operates on the exact
// bytes received; re-serialized JSON will not verify.
type Verifier struct {
	secret    []byte
	tolerance time.Duration
	clock     clock.Clock
}

func NewVerifier(secret string, tolerance time.Duration, clk clock.Clock) *Verifier {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Verifier{
		secret:    []byte(secret),
		tolerance: tolerance,
		clock:     clk,
	}
}

// Verify fails closed: any parse failure, stale timestamp, or MAC mismatch is
// an error and the payload must be discarded without side effects.
func (v *Verifier) Verify(payload []byte, header string) error {
	ts, sig, err := parseSignatureHeader(header)
	if err != nil {
		return err
	}

	age := v.clock.Now().Sub(time.Unix(ts, 0))
	if age > v.tolerance || age < -v.tolerance {
		return ErrStaleTimestamp
	}

	expected := computeSignature(v.secret, ts, payload)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return ErrInvalidSignature
	}
	return nil
}

// Sign produces a header for payload; used by tests and the local webhook
// simulator.
func (v *Verifier) Sign(payload []byte, at time.Time) string {
	ts := at.Unix()
	return fmt.Sprintf("t=%d,v1=%s", ts, computeSignature(v.secret, ts, payload))
}

func computeSignature(secret []byte, ts int64, payload []byte) string {
	mac := hmac.New(sha256.New, secret)
	fmt.Fprintf(mac, "%d.", ts)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func parseSignatureHeader(header string) (ts int64, sig string, err error) {
	for _, part := range strings.Split(header, ",") {
		k, val, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch k {
		case "t":
			ts, err = strconv.ParseInt(val, 10, 64)
			if err != nil {
				return 0, "", ErrMalformedSignature
			}
		case "v1":
			sig = val
		}
	}
	if ts == 0 || sig == "" {
		return 0, "", ErrMalformedSignature
	}
	return ts, sig, nil
}
