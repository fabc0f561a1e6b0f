// Package flash carries a one-time notice from a form post to the page the
// visitor is redirected to.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"github.com/risemars/site/internal/services/web/platform/requestmeta"
)

// CookieName is the notice cookie.
const CookieName = "rm_flash"

// maxAgeSeconds bounds how long an unread notice survives.
const maxAgeSeconds = 60

// refPattern limits references to receipt-style ids; anything else is
// dropped from the notice.
var refPattern = regexp.MustCompile(`^[A-Za-z0-9-]{1,64}$`)

// Kind selects the banner style.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

// Notice is one pending message. Key names a catalog prefix; Ref is an
// optional receipt id shown with it.
type Notice struct {
	Kind Kind   `json:"kind"`
	Key  string `json:"key"`
	Ref  string `json:"ref,omitempty"`
}

// NoticeSuccess creates a success notice for key.
func NoticeSuccess(key string) Notice {
	return Notice{Kind: KindSuccess, Key: key}
}

// Write stores notice for the next GET of the same path. The post-redirect-get
// flow posts and renders on one path, so the cookie never rides along to
// other pages.
func Write(w http.ResponseWriter, r *http.Request, notice Notice, policy requestmeta.ProxyPolicy) {
	if w == nil {
		return
	}
	normalized, ok := normalizeNotice(notice)
	if !ok {
		return
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return
	}
	http.SetCookie(w, newCookie(r, policy, base64.RawURLEncoding.EncodeToString(payload), maxAgeSeconds))
}

// ReadAndClear returns the pending notice, if any, and expires the cookie.
func ReadAndClear(w http.ResponseWriter, r *http.Request, policy requestmeta.ProxyPolicy) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	if w != nil {
		Clear(w, r, policy)
	}
	return decodeNotice(cookie.Value)
}

// Clear expires the notice cookie.
func Clear(w http.ResponseWriter, r *http.Request, policy requestmeta.ProxyPolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, newCookie(r, policy, "", -1))
}

func newCookie(r *http.Request, policy requestmeta.ProxyPolicy, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     cookiePath(r),
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
	}
}

func cookiePath(r *http.Request) string {
	if r == nil || r.URL == nil || !strings.HasPrefix(r.URL.Path, "/") {
		return "/"
	}
	return r.URL.Path
}

func decodeNotice(raw string) (Notice, bool) {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(raw))
	if err != nil || len(decoded) == 0 {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(decoded, &notice); err != nil {
		return Notice{}, false
	}
	return normalizeNotice(notice)
}

func normalizeNotice(notice Notice) (Notice, bool) {
	notice.Key = strings.TrimSpace(notice.Key)
	if notice.Key == "" {
		return Notice{}, false
	}
	notice.Ref = strings.TrimSpace(notice.Ref)
	if notice.Ref != "" && !refPattern.MatchString(notice.Ref) {
		notice.Ref = ""
	}
	notice.Kind = Kind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	switch notice.Kind {
	case KindSuccess, KindInfo, KindError:
		return notice, true
	default:
		return Notice{}, false
	}
}
