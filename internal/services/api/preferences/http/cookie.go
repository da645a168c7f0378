package http

import (
	"context"
	stdhttp "net/http"
	"time"

	pnet "layoffs/internal/platform/net"

	"github.com/google/uuid"
)

// CookieName holds the anonymous client id
const CookieName = "layoffs_client"

const cookieMaxAge = 365 * 24 * time.Hour

type issuedKey struct{}

// ClientCookie puts the client id from the cookie on the request context,
// minting a new uuid when the cookie is missing or malformed
func ClientCookie(secure bool) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			ctx := r.Context()
			id := ""
			if c, err := r.Cookie(CookieName); err == nil {
				if u, err := uuid.Parse(c.Value); err == nil {
					id = u.String()
				}
			}
			if id == "" {
				id = uuid.NewString()
				ctx = context.WithValue(ctx, issuedKey{}, newCookie(id, secure))
			}
			next.ServeHTTP(w, r.WithContext(pnet.WithClientID(ctx, id)))
		})
	}
}

// issued returns the cookie to set when this request minted the id
func issued(ctx context.Context) *stdhttp.Cookie {
	c, _ := ctx.Value(issuedKey{}).(*stdhttp.Cookie)
	return c
}

func newCookie(id string, secure bool) *stdhttp.Cookie {
	return &stdhttp.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(cookieMaxAge / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: stdhttp.SameSiteLaxMode,
	}
}
