package http

import (
	"net/http"
	"strings"

	"classdesk/server/internal/auth"
)

// Route gate for the page surface. Every inbound request is classified and
// either passed through, redirected, or redirected with the session cookie
// cleared, before any protected handler runs.

type routeClass int

const (
	routePublic routeClass = iota
	routeStudent
	routeAdmin
)

type gateAction int

const (
	gatePass gateAction = iota
	gateRedirect
	gateRedirectClearCookie
)

type gateDecision struct {
	action gateAction
	target string
	claims *auth.Claims
}

// classifyRoute buckets a request path. API routes carry their own cookie
// check returning 401s instead of redirects, so they classify as public here.
func classifyRoute(path string) routeClass {
	switch {
	case path == "/admin" || strings.HasPrefix(path, "/admin/"):
		return routeAdmin
	case path == "/dashboard" || strings.HasPrefix(path, "/dashboard/"):
		return routeStudent
	default:
		return routePublic
	}
}

// decideGate is a pure function of (path, cookie value): no I/O, deterministic,
// safe to evaluate concurrently.
func (s *Server) decideGate(path, cookieValue string) gateDecision {
	class := classifyRoute(path)
	if class == routePublic {
		return gateDecision{action: gatePass}
	}

	if cookieValue == "" {
		return gateDecision{action: gateRedirect, target: landingPath}
	}

	claims, err := auth.ParseToken(s.cfg.JWTSecret, s.cfg.JWTIssuer, cookieValue)
	if err != nil {
		// Invalid or expired tokens mean "logged out", not an error.
		return gateDecision{action: gateRedirectClearCookie, target: landingPath}
	}

	switch class {
	case routeAdmin:
		if claims.Role != auth.RoleAdmin {
			return gateDecision{action: gateRedirect, target: studentDashboardPath}
		}
	case routeStudent:
		if claims.Role != auth.RoleStudent {
			return gateDecision{action: gateRedirect, target: adminDashboardPath}
		}
	}
	return gateDecision{action: gatePass, claims: claims}
}

func (s *Server) routeGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookieValue := ""
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			cookieValue = cookie.Value
		}

		decision := s.decideGate(r.URL.Path, cookieValue)
		switch decision.action {
		case gateRedirectClearCookie:
			s.clearSessionCookie(w)
			http.Redirect(w, r, decision.target, http.StatusSeeOther)
		case gateRedirect:
			http.Redirect(w, r, decision.target, http.StatusSeeOther)
		default:
			if decision.claims != nil {
				r = r.WithContext(withClaims(r.Context(), decision.claims))
			}
			next.ServeHTTP(w, r)
		}
	})
}
