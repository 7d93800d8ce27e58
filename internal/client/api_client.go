package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/opeller/authgate/internal/logger"
	"github.com/opeller/authgate/models"
)

const (
	tokenCookieName = "token"
	csrfCookieName  = "XSRF-TOKEN"
	csrfHeaderName  = "XSRF-Token"
)

type apiClient struct {
	client  *resty.Client
	jar     http.CookieJar
	jarPath string
	baseURL *url.URL

	logger *logger.Logger
}

// NewSessionAPI constructs the HTTP implementation of [SessionAPI].
// It normalises and validates the base URL from cfg.BaseURL, configures
// the underlying client with a cookie jar, and reloads any cookies
// persisted by a previous invocation.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewSessionAPI(cfg Config, logger *logger.Logger) (SessionAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid client base url: %w", err)
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid client base url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetCookieJar(jar)

	c := &apiClient{
		client:  client,
		jar:     jar,
		jarPath: cfg.CookieJarPath,
		baseURL: parsedURL,
		logger:  logger,
	}
	c.loadCookies()

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// RestoreSession implements [SessionAPI]. It GETs /api/session and
// reports the current user, or nil when the session is anonymous. The
// call also refreshes the anti-forgery cookie server-side.
func (c *apiClient) RestoreSession(ctx context.Context) (*models.SafeUser, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/session")
	if err != nil {
		return nil, fmt.Errorf("restore session request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var session models.SessionResponse
	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return nil, fmt.Errorf("decode session response: %w", err)
	}

	c.persistCookies()
	return session.User, nil
}

// Signup implements [SessionAPI]. It POSTs the new account to
// /api/users with the anti-forgery header and returns the created user.
// The session cookie from the response stays in the jar.
func (c *apiClient) Signup(ctx context.Context, req models.SignupRequest) (models.SafeUser, error) {
	resp, err := c.mutatingRequest(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(req).Post("/api/users")
	})
	if err != nil {
		return models.SafeUser{}, err
	}

	return c.decodeSessionUser(resp)
}

// Login implements [SessionAPI]. It POSTs the credentials to
// /api/session with the anti-forgery header and returns the logged-in
// user.
func (c *apiClient) Login(ctx context.Context, credential, password string) (models.SafeUser, error) {
	body := models.LoginRequest{Credential: credential, Password: password}

	resp, err := c.mutatingRequest(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(body).Post("/api/session")
	})
	if err != nil {
		return models.SafeUser{}, err
	}

	return c.decodeSessionUser(resp)
}

// Logout implements [SessionAPI]. It DELETEs /api/session; the server
// expires the session cookie and the jar picks the removal up.
func (c *apiClient) Logout(ctx context.Context) error {
	_, err := c.mutatingRequest(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.Delete("/api/session")
	})
	return err
}

// mutatingRequest runs a state-changing call with the anti-forgery
// header attached, bootstrapping the token from the server first when
// the jar has none.
func (c *apiClient) mutatingRequest(ctx context.Context, send func(*resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	csrfToken, err := c.ensureCSRFToken(ctx)
	if err != nil {
		return nil, err
	}

	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(csrfHeaderName, csrfToken)

	resp, err := send(req)
	if err != nil {
		return nil, fmt.Errorf("api request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	c.persistCookies()
	return resp, nil
}

// ensureCSRFToken returns the anti-forgery token from the cookie jar,
// fetching a fresh one from /api/csrf/restore when absent.
func (c *apiClient) ensureCSRFToken(ctx context.Context) (string, error) {
	if token := c.cookieValue(csrfCookieName); token != "" {
		return token, nil
	}

	c.logger.Debug().Msg("no CSRF cookie cached, bootstrapping from server")

	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/csrf/restore")
	if err != nil {
		return "", fmt.Errorf("csrf restore request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return "", err
	}

	token := c.cookieValue(csrfCookieName)
	if token == "" {
		return "", fmt.Errorf("server did not set the %s cookie", csrfCookieName)
	}
	return token, nil
}

func (c *apiClient) decodeSessionUser(resp *resty.Response) (models.SafeUser, error) {
	var session models.SessionResponse
	if err := json.Unmarshal(resp.Body(), &session); err != nil {
		return models.SafeUser{}, fmt.Errorf("decode session response: %w", err)
	}
	if session.User == nil {
		return models.SafeUser{}, fmt.Errorf("session response carried no user")
	}
	return *session.User, nil
}

func (c *apiClient) cookieValue(name string) string {
	for _, cookie := range c.jar.Cookies(c.baseURL) {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

// storedCookie is the on-disk representation of one jar entry.
type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// loadCookies restores persisted cookies into the jar. A missing or
// unreadable jar file just means a fresh session.
func (c *apiClient) loadCookies() {
	data, err := os.ReadFile(c.jarPath)
	if err != nil {
		return
	}

	var stored []storedCookie
	if err = json.Unmarshal(data, &stored); err != nil {
		c.logger.Debug().Err(err).Msg("discarding unreadable cookie jar file")
		return
	}

	cookies := make([]*http.Cookie, 0, len(stored))
	for _, sc := range stored {
		cookies = append(cookies, &http.Cookie{Name: sc.Name, Value: sc.Value, Path: "/"})
	}
	c.jar.SetCookies(c.baseURL, cookies)
}

// persistCookies writes the current jar contents for the base URL to
// disk so the session survives across invocations.
func (c *apiClient) persistCookies() {
	cookies := c.jar.Cookies(c.baseURL)
	stored := make([]storedCookie, 0, len(cookies))
	for _, cookie := range cookies {
		stored = append(stored, storedCookie{Name: cookie.Name, Value: cookie.Value})
	}

	data, err := json.Marshal(stored)
	if err != nil {
		c.logger.Debug().Err(err).Msg("serializing cookie jar failed")
		return
	}

	if err = os.MkdirAll(filepath.Dir(c.jarPath), 0o700); err != nil {
		c.logger.Debug().Err(err).Msg("creating cookie jar directory failed")
		return
	}
	if err = os.WriteFile(c.jarPath, data, 0o600); err != nil {
		c.logger.Debug().Err(err).Msg("writing cookie jar file failed")
	}
}
