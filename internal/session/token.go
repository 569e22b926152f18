package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// CookieName is the cookie the admin session token travels in.
const CookieName = "gtn_session"

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = 7 * 24 * time.Hour

// ============================
// 🔐 Signed Session Token Codec
//
// A token is `username|issued_at_unix|signature` where the signature is
// HMAC-SHA256 over `username|issued_at_unix` with the shared secret.
// There is no server-side session state and no revocation; expiry is the
// only way a token dies.
type Codec struct {
	secret    []byte
	adminUser string
	ttl       time.Duration
	now       func() time.Time
}

func NewCodec(secret, adminUser string, ttl time.Duration) *Codec {
	return &Codec{
		secret:    []byte(secret),
		adminUser: adminUser,
		ttl:       ttl,
		now:       time.Now,
	}
}

func (c *Codec) sign(base string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(base))
	return hex.EncodeToString(mac.Sum(nil))
}

// Issue builds a signed token for the given username.
func (c *Codec) Issue(username string) string {
	base := username + "|" + strconv.FormatInt(c.now().Unix(), 10)
	return base + "|" + c.sign(base)
}

// Verify reports whether token is a well-formed, correctly signed,
// unexpired session for the configured admin user. It never returns a
// reason; callers only need the boolean.
func (c *Codec) Verify(token string) bool {
	parts := strings.SplitN(token, "|", 3)
	if len(parts) != 3 {
		return false
	}
	username, ts, sig := parts[0], parts[1], parts[2]

	base := username + "|" + ts
	if !hmac.Equal([]byte(c.sign(base)), []byte(sig)) {
		return false
	}

	issued, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return false
	}
	if c.now().Unix()-issued > int64(c.ttl/time.Second) {
		return false
	}

	return username == c.adminUser
}

// TTLSeconds is the token lifetime in whole seconds, used as the cookie
// max-age so cookie and signature expire together.
func (c *Codec) TTLSeconds() int {
	return int(c.ttl / time.Second)
}
