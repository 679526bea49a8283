package adapters

import (
	"crypto/sha1"
	"encoding/hex"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"
)

// SignedRequest carries the authentication triple for one outbound image
// synthesis call. Ephemeral: generated fresh per call, never reused.
type SignedRequest struct {
	Nonce     int32
	Timestamp int64
	Signature string
}

type RequestSigner interface {
	Sign(nonce int32, timestamp int64) string
	NewSignedRequest() SignedRequest
}

type sha1RequestSigner struct {
	secret string
}

func NewRequestSigner(secret string) RequestSigner {
	return &sha1RequestSigner{secret: secret}
}

// Sign sorts the three values lexicographically as strings, concatenates
// them with no separator and returns the lowercase hex SHA-1 digest. The
// signature therefore depends on the set of values, not their positions;
// the secret participates in the sort like any other string.
func (s *sha1RequestSigner) Sign(nonce int32, timestamp int64) string {
	keys := []string{
		strconv.FormatInt(int64(nonce), 10),
		s.secret,
		strconv.FormatInt(timestamp, 10),
	}
	sort.Strings(keys)

	digest := sha1.Sum([]byte(strings.Join(keys, "")))
	return hex.EncodeToString(digest[:])
}

func (s *sha1RequestSigner) NewSignedRequest() SignedRequest {
	nonce := rand.Int31()
	timestamp := time.Now().Unix()
	return SignedRequest{
		Nonce:     nonce,
		Timestamp: timestamp,
		Signature: s.Sign(nonce, timestamp),
	}
}
