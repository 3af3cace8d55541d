package ccw

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"ccw_query/internal/config"
)

// Session holds the bearer token of one login and the authenticated client
// built on it. Create one per process and share it between requests.
type Session struct {
	client *http.Client
}

// NewBaseHTTPClient is the transport both the token request and the API calls
// go through.
func NewBaseHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
		},
	}
}

// NewSession logs in with the resource-owner password grant against the SSO
// token endpoint. A nil base uses NewBaseHTTPClient(cfg.Timeout()).
func NewSession(ctx context.Context, cfg config.CCWConfig, base *http.Client) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if base == nil {
		base = NewBaseHTTPClient(cfg.Timeout())
	}

	oc := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  cfg.SSOURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	tok, err := oc.PasswordCredentialsToken(ctx, cfg.Username, cfg.Password)
	if err != nil {
		return nil, fmt.Errorf("cannot authenticate to CCW, incorrect credentials?: %w", err)
	}
	if tok.AccessToken == "" {
		return nil, fmt.Errorf("cannot authenticate to CCW: empty access token")
	}

	return newSession(ctx, oauth2.ReuseTokenSource(tok, oc.TokenSource(ctx, tok)), base), nil
}

// NewStaticSession uses an already issued access token.
func NewStaticSession(accessToken string, base *http.Client) *Session {
	if base == nil {
		base = NewBaseHTTPClient(0)
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	return newSession(ctx, src, base)
}

func newSession(ctx context.Context, src oauth2.TokenSource, base *http.Client) *Session {
	client := oauth2.NewClient(ctx, src)
	client.Timeout = base.Timeout
	return &Session{client: client}
}

// HTTPClient adds the Authorization header to every request.
func (s *Session) HTTPClient() *http.Client {
	return s.client
}
