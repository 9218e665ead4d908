package platform

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const (
	desktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
	mobileUserAgent  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148"
	wechatUserAgent  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148 MicroMessenger/8.0.50(0x1800323c) NetType/WIFI Language/zh_CN miniProgram/wx"
)

// HeaderProfile is the header set one client family sends. Profiles are plain
// values so a known contract can replace a guessed one.
type HeaderProfile struct {
	Name    string
	Headers map[string]string
}

func (p HeaderProfile) Apply(h http.Header) {
	for k, v := range p.Headers {
		h.Set(k, v)
	}
}

func (p HeaderProfile) With(extra map[string]string) HeaderProfile {
	merged := make(map[string]string, len(p.Headers)+len(extra))
	for k, v := range p.Headers {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return HeaderProfile{Name: p.Name, Headers: merged}
}

func DesktopProfile(baseURL, acceptLanguage string) HeaderProfile {
	origin := originOf(baseURL)
	return HeaderProfile{
		Name: "desktop",
		Headers: map[string]string{
			"User-Agent":      desktopUserAgent,
			"Accept":          "application/json, text/plain, */*",
			"Accept-Language": acceptLanguage,
			"Origin":          origin,
			"Referer":         origin + "/",
		},
	}
}

// EnhancedProfile adds the client hints and fetch metadata a real Chrome tab sends.
func EnhancedProfile(baseURL, acceptLanguage string) HeaderProfile {
	return DesktopProfile(baseURL, acceptLanguage).With(map[string]string{
		"Sec-Ch-Ua":          `"Chromium";v="131", "Not=A?Brand";v="24", "Google Chrome";v="131"`,
		"Sec-Ch-Ua-Mobile":   "?0",
		"Sec-Ch-Ua-Platform": `"Windows"`,
		"Sec-Fetch-Dest":     "empty",
		"Sec-Fetch-Mode":     "cors",
		"Sec-Fetch-Site":     "same-origin",
		"X-Requested-With":   "XMLHttpRequest",
		"Cache-Control":      "no-cache",
		"Pragma":             "no-cache",
	})
}

func MobileProfile(baseURL, acceptLanguage string, id *Identity) HeaderProfile {
	origin := originOf(baseURL)
	headers := map[string]string{
		"User-Agent":      mobileUserAgent,
		"Accept":          "application/json",
		"Accept-Language": acceptLanguage,
		"Origin":          origin,
		"Referer":         origin + "/",
		"X-Client-Type":   "ios",
		"X-App-Version":   "3.2.1",
	}
	if id != nil {
		headers["X-Device-Id"] = id.DeviceID
		headers["Authorization"] = "Bearer " + id.SessionToken
	}
	return HeaderProfile{Name: "mobile", Headers: headers}
}

func WeChatProfile(baseURL, acceptLanguage string, id *Identity) HeaderProfile {
	headers := map[string]string{
		"User-Agent":      wechatUserAgent,
		"Accept":          "application/json",
		"Accept-Language": acceptLanguage,
		"Referer":         "https://servicewechat.com/wx0000000000000000/1/page-frame.html",
		"X-Client-Type":   "wechat-miniprogram",
	}
	if id != nil {
		headers["X-WX-OpenID"] = id.DeviceID
		headers["X-WX-Session"] = id.SessionToken
		headers["Authorization"] = "Bearer " + id.SessionToken
	}
	return HeaderProfile{Name: "wechat", Headers: headers}
}

// Identity is a synthesized client identity. It is not a credential and is
// only produced when impersonation is enabled in configuration.
type Identity struct {
	DeviceID     string
	SessionToken string
}

func NewIdentity() *Identity {
	token := make([]byte, 24)
	if _, err := rand.Read(token); err != nil {
		return &Identity{DeviceID: uuid.NewString(), SessionToken: strings.ReplaceAll(uuid.NewString(), "-", "")}
	}
	return &Identity{
		DeviceID:     strings.ToUpper(uuid.NewString()),
		SessionToken: hex.EncodeToString(token),
	}
}

func originOf(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return strings.TrimRight(baseURL, "/")
	}
	return u.Scheme + "://" + u.Host
}
