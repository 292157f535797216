package scaffold

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"

	"github.com/authsmith/authsmith/pkg/types"
)

const secretBytes = 10

// Placeholder Google OAuth scopes written into both environments.
var googleScopes = []string{
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/userinfo.email",
}

// stepDevSettings writes config/development.json.
func stepDevSettings(_ context.Context, sc *Context) error {
	doc, err := devSettings(sc.Config)
	if err != nil {
		return err
	}
	return WriteJSONOnce(sc, filepath.Join("config", "development.json"), doc)
}

// stepProdSettings writes config/production.json.
func stepProdSettings(_ context.Context, sc *Context) error {
	doc, err := prodSettings(sc.Config)
	if err != nil {
		return err
	}
	return WriteJSONOnce(sc, filepath.Join("config", "production.json"), doc)
}

func devSettings(cfg *types.Config) (*types.Settings, error) {
	doc, err := baseSettings(cfg)
	if err != nil {
		return nil, err
	}
	doc.Port = cfg.DevPort
	doc.Issuer = cfg.DevIssuer
	return doc, nil
}

func prodSettings(cfg *types.Config) (*types.Settings, error) {
	doc, err := baseSettings(cfg)
	if err != nil {
		return nil, err
	}
	doc.Port = cfg.ProdPort
	doc.Issuer = cfg.ProdIssuer
	doc.Redis = &types.Redis{
		URL:  "redis://HOST:PORT",
		Auth: "PASSWORD",
	}
	return doc, nil
}

// baseSettings builds the environment-independent document shape with
// two freshly generated secrets. Secrets are drawn independently per
// document so development and production never share one.
func baseSettings(cfg *types.Config) (*types.Settings, error) {
	session, err := newSecret()
	if err != nil {
		return nil, err
	}
	cookie, err := newSecret()
	if err != nil {
		return nil, err
	}

	return &types.Settings{
		ClientRegistration: cfg.Registration,
		SessionSecret:      session,
		CookieSecret:       cookie,
		Providers: types.Providers{
			Password: true,
			Google: &types.OAuthClient{
				ClientID:     "ID",
				ClientSecret: "SECRET",
				Scope:        googleScopes,
			},
		},
	}, nil
}

func newSecret() (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
