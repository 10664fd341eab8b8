package reservation

import (
	"crypto/rand"
	"math/big"

	"github.com/kresge/ticketsrv/protocol"
)

// cookieLo and cookieHi are the inclusive ASCII bounds a cookie byte is
// drawn from.
const (
	cookieLo = 33
	cookieHi = 126
)

// newCookie draws CookieSize independent, uniform bytes from [cookieLo,
// cookieHi] using a cryptographically-seeded source.
func newCookie() (protocol.Cookie, error) {
	var c protocol.Cookie
	span := big.NewInt(int64(cookieHi - cookieLo + 1))
	for i := range c {
		n, err := rand.Int(rand.Reader, span)
		if err != nil {
			return protocol.Cookie{}, err
		}
		c[i] = byte(cookieLo + n.Int64())
	}
	return c, nil
}
