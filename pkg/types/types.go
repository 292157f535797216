// Package types defines core types and interfaces for the Authsmith application.
package types

// Config holds the tool-level settings that feed the generated project.
// Every field has a default matching a stock OpenID Connect deployment;
// all of them can be overridden via authsmith.yaml or AUTHSMITH_* env vars.
type Config struct {
	// External tools
	GitBin     string `yaml:"git_bin" mapstructure:"git_bin"`
	OpensslBin string `yaml:"openssl_bin" mapstructure:"openssl_bin"`

	// Key generation
	KeyBits int `yaml:"key_bits" mapstructure:"key_bits"`

	// Generated server settings
	DevPort      int    `yaml:"dev_port" mapstructure:"dev_port"`
	ProdPort     int    `yaml:"prod_port" mapstructure:"prod_port"`
	DevIssuer    string `yaml:"dev_issuer" mapstructure:"dev_issuer"`
	ProdIssuer   string `yaml:"prod_issuer" mapstructure:"prod_issuer"`
	Registration string `yaml:"registration" mapstructure:"registration"`

	// Manifest pins
	NodeEngine string `yaml:"node_engine" mapstructure:"node_engine"`
	ServerPin  string `yaml:"server_pin" mapstructure:"server_pin"`
}

// Manifest is the project package manifest written once at init time.
type Manifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Description  string            `json:"description"`
	Private      bool              `json:"private"`
	Main         string            `json:"main"`
	Scripts      map[string]string `json:"scripts"`
	Engines      map[string]string `json:"engines"`
	Dependencies map[string]string `json:"dependencies"`
}

// Settings is one environment's server configuration document
// (config/development.json or config/production.json).
type Settings struct {
	Port               int       `json:"port"`
	Issuer             string    `json:"issuer"`
	ClientRegistration string    `json:"client_registration"`
	SessionSecret      string    `json:"session_secret"`
	CookieSecret       string    `json:"cookie_secret"`
	Providers          Providers `json:"providers"`
	Redis              *Redis    `json:"redis,omitempty"`
}

// Providers holds the authentication provider blocks for one environment.
type Providers struct {
	Password bool         `json:"password"`
	Google   *OAuthClient `json:"google,omitempty"`
}

// OAuthClient is a placeholder OAuth 2.0 client credential block.
type OAuthClient struct {
	ClientID     string   `json:"client_id"`
	ClientSecret string   `json:"client_secret"`
	Scope        []string `json:"scope"`
}

// Redis is the cache/session store connection block used in production.
type Redis struct {
	URL  string `json:"url"`
	Auth string `json:"auth"`
}
