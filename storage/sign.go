package storage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Retrieval links are signed and expire. Objects are never exposed on a
// permanent public path.
const (
	ViewTTL    = 15 * time.Minute
	ConfirmTTL = 7 * 24 * time.Hour // maximum the signer will issue
)

func sign(key string, exp int64) string {
	h := hmac.New(sha256.New, secret)
	fmt.Fprintf(h, "%s|%d", key, exp)
	return hex.EncodeToString(h.Sum(nil))
}

// SignedURL returns a time-limited retrieval link for key. TTLs above
// ConfirmTTL are clamped.
func SignedURL(key string, ttl time.Duration) string {
	if ttl > ConfirmTTL {
		ttl = ConfirmTTL
	}
	exp := time.Now().Add(ttl).Unix()
	return fmt.Sprintf("%s/media/%s?exp=%d&sig=%s", baseURL, url.PathEscape(key), exp, sign(key, exp))
}

// verifySignature checks the signature and the expiry embedded in a
// retrieval link's query parameters.
func verifySignature(key, expStr, sig string) bool {
	exp, err := strconv.ParseInt(expStr, 10, 64)
	if err != nil {
		return false
	}
	if time.Now().Unix() > exp {
		return false
	}
	want := sign(key, exp)
	return hmac.Equal([]byte(want), []byte(sig))
}
