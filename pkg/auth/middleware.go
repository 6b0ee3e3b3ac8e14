package auth

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fixora/adminapi/internal/domain"
	"github.com/fixora/adminapi/pkg/utils"
)

type ContextKey string

const AdminEmailKey ContextKey = "adminEmail"

// SessionCookie is the fallback token carrier for browser navigation, where
// an Authorization header cannot be set.
const SessionCookie = "admin_session"

// Reason codes carried to the login route on redirect.
const (
	ReasonAuth         = "auth"
	ReasonUnauthorized = "unauthorized"
	ReasonTimeout      = "timeout"
)

type SessionChecker interface {
	CheckSession(ctx context.Context, token string) (*domain.Session, error)
	SignOut(ctx context.Context, token string) error
}

type GuardConfig struct {
	AllowedEmail string
	LoginPath    string
	// RetryDelay is waited once before the second session check, so a
	// sign-in committed a moment before the request is not a false negative.
	RetryDelay time.Duration
	// CheckTimeout is the hard ceiling on the whole check; past it the
	// request fails closed with ReasonTimeout even if the check is hung.
	CheckTimeout time.Duration
}

// Guard gates a protected subtree on a single allow-listed email. Per
// request it resolves to exactly one of: authorized (the wrapped handler
// runs with the admin email in context) or a single redirect to the login
// route with a reason code and a return path.
type Guard struct {
	checker SessionChecker
	cfg     GuardConfig
}

func NewGuard(checker SessionChecker, cfg GuardConfig) *Guard {
	return &Guard{checker: checker, cfg: cfg}
}

type RedirectResponse struct {
	Error    string `json:"error"`
	Next     string `json:"next"`
	Location string `json:"location"`
}

func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, reason := g.check(r.Context(), TokenFromRequest(r))
		if reason != "" {
			g.redirect(w, r, reason)
			return
		}
		ctx := context.WithValue(r.Context(), AdminEmailKey, session.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}

type checkResult struct {
	session *domain.Session
	reason  string
}

func (g *Guard) check(ctx context.Context, token string) (*domain.Session, string) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.CheckTimeout)
	defer cancel()

	done := make(chan checkResult, 1)
	go func() {
		done <- g.resolve(ctx, token)
	}()

	select {
	case <-ctx.Done():
		return nil, ReasonTimeout
	case res := <-done:
		return res.session, res.reason
	}
}

func (g *Guard) resolve(ctx context.Context, token string) checkResult {
	session, err := g.checkOnce(ctx, token)
	if err != nil {
		select {
		case <-ctx.Done():
			return checkResult{reason: ReasonAuth}
		case <-time.After(g.cfg.RetryDelay):
		}
		session, err = g.checkOnce(ctx, token)
		if err != nil {
			return checkResult{reason: ReasonAuth}
		}
	}

	if !strings.EqualFold(session.Email, g.cfg.AllowedEmail) {
		// a partially-valid session must not linger
		if err := g.checker.SignOut(ctx, token); err != nil {
			// the redirect still happens; the sweeper will collect the row
			_ = err
		}
		return checkResult{reason: ReasonUnauthorized}
	}

	return checkResult{session: session}
}

// checkOnce never panics and never propagates: any failure reads as "no
// session" to the caller.
func (g *Guard) checkOnce(ctx context.Context, token string) (session *domain.Session, err error) {
	defer func() {
		if r := recover(); r != nil {
			session, err = nil, errSessionCheck
		}
	}()
	if token == "" {
		return nil, errSessionCheck
	}
	session, err = g.checker.CheckSession(ctx, token)
	if err != nil || session == nil {
		return nil, errSessionCheck
	}
	return session, nil
}

var errSessionCheck = &sessionCheckError{}

type sessionCheckError struct{}

func (*sessionCheckError) Error() string { return "session check failed" }

func (g *Guard) redirect(w http.ResponseWriter, r *http.Request, reason string) {
	next := r.URL.Path
	if r.URL.RawQuery != "" {
		next += "?" + r.URL.RawQuery
	}
	q := url.Values{}
	q.Set("error", reason)
	q.Set("next", next)
	target := g.cfg.LoginPath + "?" + q.Encode()

	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		http.Redirect(w, r, target, http.StatusFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusUnauthorized, RedirectResponse{
		Error:    reason,
		Next:     next,
		Location: target,
	})
}
