package useragent

import (
	"net/http"
	"strings"
)

var browsers = []struct {
	token   string
	exclude string
	name    string
}{
	{"Edg/", "", "Edge"},
	{"Chrome/", "Edg", "Chrome"},
	{"Firefox/", "", "Firefox"},
	{"Safari/", "Chrome", "Safari"},
}

var systems = []struct {
	token string
	name  string
}{
	{"Windows", "Windows"},
	{"Android", "Android"},
	{"iPhone", "iOS"},
	{"iPad", "iOS"},
	{"Mac OS X", "macOS"},
	{"Linux", "Linux"},
}

// Describe turns the User-Agent header into a short "Browser on OS" label
// used when logging new match connections
func Describe(r *http.Request) string {
	ua := r.Header.Get("User-Agent")
	if ua == "" {
		return "unknown client"
	}

	browser := "client"
	for _, b := range browsers {
		if strings.Contains(ua, b.token) && (b.exclude == "" || !strings.Contains(ua, b.exclude)) {
			browser = b.name
			break
		}
	}

	for _, s := range systems {
		if strings.Contains(ua, s.token) {
			return browser + " on " + s.name
		}
	}
	return browser
}

// RemoteIP gets the caller's address, honouring X-Forwarded-For and X-Real-IP
func RemoteIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
