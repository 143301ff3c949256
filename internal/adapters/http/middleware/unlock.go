package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const unlockContextKey contextKey = "adminUnlock"

// UnlockTTL is how long an admin unlock session lasts. The employee editor
// re-prompts for the password after this window.
const UnlockTTL = 30 * time.Minute

// SecureCookies controls the Secure flag on issued cookies. Set true in
// production behind TLS.
var SecureCookies = false

// UnlockSession marks one browser as having passed the admin password gate
// for roster management.
type UnlockSession struct {
	CreatedAt time.Time
}

// UnlockStore is an in-memory store of admin unlock sessions.
type UnlockStore struct {
	mu       sync.RWMutex
	sessions map[string]UnlockSession
}

// NewUnlockStore creates a new in-memory unlock store.
func NewUnlockStore() *UnlockStore {
	return &UnlockStore{sessions: make(map[string]UnlockSession)}
}

// Create stores a new unlock session and returns the token.
// POST: Session is stored, token is returned
func (us *UnlockStore) Create() (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	us.mu.Lock()
	defer us.mu.Unlock()
	us.sessions[token] = UnlockSession{CreatedAt: time.Now()}
	return token, nil
}

// Get retrieves an unlock session by token.
// POST: Returns the session only if it has not expired
func (us *UnlockStore) Get(token string) (UnlockSession, bool) {
	us.mu.RLock()
	session, ok := us.sessions[token]
	us.mu.RUnlock()
	if !ok {
		return UnlockSession{}, false
	}
	if time.Since(session.CreatedAt) > UnlockTTL {
		us.mu.Lock()
		delete(us.sessions, token)
		us.mu.Unlock()
		return UnlockSession{}, false
	}
	return session, true
}

// Delete removes an unlock session by token.
func (us *UnlockStore) Delete(token string) {
	us.mu.Lock()
	defer us.mu.Unlock()
	delete(us.sessions, token)
}

const unlockCookieName = "shiftreg_unlock"

// Unlock returns middleware that extracts the unlock session from the cookie
// and marks the request context. It does NOT block locked requests — use
// RequireUnlock for that.
func Unlock(store *UnlockStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(unlockCookieName)
			if err == nil && cookie.Value != "" {
				if session, ok := store.Get(cookie.Value); ok {
					ctx := context.WithValue(r.Context(), unlockContextKey, session)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUnlock blocks requests that have not passed the admin password gate.
func RequireUnlock(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsUnlocked(r.Context()) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IsUnlocked reports whether the request passed the admin password gate.
func IsUnlocked(ctx context.Context) bool {
	_, ok := ctx.Value(unlockContextKey).(UnlockSession)
	return ok
}

// ContextWithUnlock returns a context carrying an unlock session.
// Intended for use in tests.
func ContextWithUnlock(ctx context.Context) context.Context {
	return context.WithValue(ctx, unlockContextKey, UnlockSession{CreatedAt: time.Now()})
}

// SetUnlockCookie sets the unlock cookie on the response.
func SetUnlockCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     unlockCookieName,
		Value:    token,
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   int(UnlockTTL / time.Second),
	})
}

// ClearUnlockCookie removes the unlock cookie.
func ClearUnlockCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     unlockCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
