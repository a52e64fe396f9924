package webhost

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/OpenNHP/opennhp/nhp/log"
)

//go:embed page.js
var pageScript string

// Proxy serves the hosted site through the webview's asset server so the
// page shares an origin with the desktop runtime and can raise events.
type Proxy struct {
	target    *url.URL
	userAgent atomic.Value
	rp        *httputil.ReverseProxy
}

func New(target, userAgent string) (*Proxy, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("parse target url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported target scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("target url %q has no host", target)
	}

	p := &Proxy{target: u}
	p.SetUserAgent(userAgent)
	p.rp = &httputil.ReverseProxy{
		Rewrite:        p.rewrite,
		ModifyResponse: p.modifyResponse,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.Error("proxy %s %s failed: %v", r.Method, r.URL.Path, err)
			w.WriteHeader(http.StatusBadGateway)
		},
	}
	return p, nil
}

// SetUserAgent changes the user agent for later requests. Empty selects the
// platform default.
func (p *Proxy) SetUserAgent(ua string) {
	if ua == "" {
		ua = DefaultUserAgent()
	}
	p.userAgent.Store(ua)
}

func (p *Proxy) UserAgent() string {
	return p.userAgent.Load().(string)
}

func (p *Proxy) Target() *url.URL {
	return p.target
}

func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.rp.ServeHTTP(w, r)
}

func (p *Proxy) rewrite(pr *httputil.ProxyRequest) {
	pr.SetURL(p.target)
	pr.Out.Header.Set("User-Agent", p.UserAgent())
	// bodies must arrive uncompressed so HTML can be rewritten
	pr.Out.Header.Set("Accept-Encoding", "identity")
	if pr.In.Header.Get("Origin") != "" {
		pr.Out.Header.Set("Origin", p.origin())
	}
	if pr.In.Header.Get("Referer") != "" {
		pr.Out.Header.Set("Referer", p.origin()+pr.In.URL.RequestURI())
	}
}

func (p *Proxy) modifyResponse(resp *http.Response) error {
	resp.Header.Del("Content-Security-Policy")
	resp.Header.Del("Content-Security-Policy-Report-Only")
	resp.Header.Del("X-Frame-Options")

	if loc := resp.Header.Get("Location"); loc != "" {
		resp.Header.Set("Location", p.localLocation(loc))
	}
	localCookies(resp.Header)

	if !isHTML(resp) || resp.Header.Get("Content-Encoding") != "" {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("read html body: %w", err)
	}
	body = InjectScript(body, !servedAsIndex(resp.Request))
	resp.Body = io.NopCloser(bytes.NewReader(body))
	resp.ContentLength = int64(len(body))
	resp.Header.Set("Content-Length", strconv.Itoa(len(body)))
	return nil
}

func (p *Proxy) origin() string {
	return p.target.Scheme + "://" + p.target.Host
}

// localLocation turns redirects back to the target into local paths so the
// webview stays on the proxied origin.
func (p *Proxy) localLocation(loc string) string {
	u, err := url.Parse(loc)
	if err != nil || !u.IsAbs() || u.Host != p.target.Host {
		return loc
	}
	return u.RequestURI()
}

// localCookies rewrites upstream cookies for the local page origin. The
// upstream domain would never match it, and the asset server origin is not
// always a secure context.
func localCookies(h http.Header) {
	lines := h.Values("Set-Cookie")
	if len(lines) == 0 {
		return
	}
	h.Del("Set-Cookie")
	for _, line := range lines {
		c, err := http.ParseSetCookie(line)
		if err != nil {
			log.Warning("keeping unparsable cookie: %v", err)
			h.Add("Set-Cookie", line)
			continue
		}
		c.Domain = ""
		c.Secure = false
		c.Partitioned = false
		if c.SameSite == http.SameSiteNoneMode {
			c.SameSite = http.SameSiteLaxMode
		}
		h.Add("Set-Cookie", c.String())
	}
}

// servedAsIndex reports whether the asset server treats the request as an
// index page, in which case it adds the desktop runtime itself.
func servedAsIndex(r *http.Request) bool {
	return r != nil && strings.HasSuffix(r.URL.Path, "/")
}

func isHTML(resp *http.Response) bool {
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	return err == nil && mt == "text/html"
}

// InjectScript inserts the page hook, preceded by the desktop runtime when
// withRuntime is set, right after the opening head tag or at the very start
// when the document has none.
func InjectScript(html []byte, withRuntime bool) []byte {
	tags := []byte(`<script>` + pageScript + `</script>`)
	if withRuntime {
		tags = append([]byte(`<script src="/wails/ipc.js"></script><script src="/wails/runtime.js"></script>`), tags...)
	}

	at := 0
	if i := headTag(asciiLower(html)); i >= 0 {
		if j := bytes.IndexByte(html[i:], '>'); j >= 0 {
			at = i + j + 1
		}
	}

	out := make([]byte, 0, len(html)+len(tags))
	out = append(out, html[:at]...)
	out = append(out, tags...)
	return append(out, html[at:]...)
}

func headTag(lower []byte) int {
	off := 0
	for {
		i := bytes.Index(lower[off:], []byte("<head"))
		if i < 0 {
			return -1
		}
		end := off + i + len("<head")
		if end < len(lower) {
			switch lower[end] {
			case '>', ' ', '\t', '\n', '\r':
				return off + i
			}
		}
		off = end
	}
}

func asciiLower(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return out
}
