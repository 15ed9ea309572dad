package netease

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/jdxj/ncmdump/internal/config"
	"github.com/jdxj/ncmdump/internal/logging"
	"github.com/jdxj/ncmdump/internal/session"
	"github.com/jdxj/ncmdump/internal/weapi"
)

const (
	baseURL   = "https://music.163.com"
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
)

// Client is a WEAPI client, safe for concurrent use: resty.Client is
// concurrency-safe and the held Session is an immutable snapshot loaded at
// construction time.
type Client struct {
	http    *resty.Client
	session session.Session
}

// New constructs a Client, loading the persisted session from the
// resolved config directory (see internal/config).
func New() (*Client, error) {
	path, err := config.SessionPath()
	if err != nil {
		return nil, fmt.Errorf("netease: resolving session path: %w", err)
	}
	sess, err := session.Load(path)
	if err != nil {
		return nil, fmt.Errorf("netease: loading session: %w", err)
	}
	return WithSession(sess), nil
}

// WithSession constructs a Client from an explicit Session, bypassing disk
// I/O — useful for tests and for callers that manage sessions themselves.
func WithSession(sess session.Session) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetHeader("Referer", baseURL).
		SetTimeout(30 * time.Second)
	return &Client{http: http, session: sess}
}

// Session returns the session snapshot this client was constructed with.
func (c *Client) Session() session.Session {
	return c.session
}

// request performs a WEAPI-encrypted POST against endpoint (the path
// after "/weapi") and returns the parsed JSON envelope. A non-200 "code"
// becomes an *APIError.
func (c *Client) request(endpoint string, data any) (gjson.Result, error) {
	payload, err := weapi.Encrypt(marshalJSON(data))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("netease: encrypting request: %w", err)
	}

	req := c.http.R().
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(map[string]string{
			"params":    payload.Params,
			"encSecKey": payload.EncSecKey,
		})
	if cookie := c.session.CookieHeader(); cookie != "" {
		req.SetHeader("Cookie", cookie)
	}

	logging.Log.WithField("endpoint", endpoint).Debug("netease: request")

	resp, err := req.Post("/weapi" + endpoint)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("netease: http request: %w", err)
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("netease: invalid JSON response")
	}
	result := gjson.ParseBytes(body)

	if code := result.Get("code"); code.Exists() && code.Int() != 200 {
		return gjson.Result{}, newAPIError(code.Int(), result.Get("message").String())
	}
	return result, nil
}

// download streams url to dest, following redirects (resty's default
// behavior) via a plain GET, not the WEAPI envelope: CDN links are
// unauthenticated by design.
func (c *Client) download(url, dest string) (int64, error) {
	resp, err := c.http.R().
		SetHeader("Referer", baseURL+"/").
		SetOutput(dest).
		Get(url)
	if err != nil {
		return 0, fmt.Errorf("netease: downloading: %w", err)
	}
	return resp.Size(), nil
}
