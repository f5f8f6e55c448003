package config

import "time"

type HTTP struct {
	BaseURL         string        `env:"BASE_URL,expand" envDefault:"/"`
	Address         string        `env:"ADDRESS,expand" envDefault:":3002"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,expand" envDefault:"10s"`
	Session         Session       `envPrefix:"SESSION_"`
	Authn           Authn         `envPrefix:"AUTHN_"`
	RateLimit       RateLimit     `envPrefix:"RATE_LIMIT_"`
	Metrics         Metrics       `envPrefix:"METRICS_"`
}

type Session struct {
	Name   string   `env:"NAME,expand" envDefault:"bbs_session"`
	Keys   []string `env:"KEYS,expand" envSeparator:","`
	Cookie Cookie   `envPrefix:"COOKIE_"`
}

type Cookie struct {
	Path     string        `env:"PATH,expand" envDefault:"/"`
	HTTPOnly bool          `env:"HTTP_ONLY,expand" envDefault:"true"`
	Secure   bool          `env:"SECURE,expand" envDefault:"false"`
	MaxAge   time.Duration `env:"MAX_AGE,expand" envDefault:"24h"`
}

type Authn struct {
	Local     LocalAuthn     `envPrefix:"LOCAL_"`
	Providers AuthnProviders `envPrefix:"PROVIDERS_"`
}

type LocalAuthn struct {
	Enabled    bool `env:"ENABLED,expand" envDefault:"true"`
	BcryptCost int  `env:"BCRYPT_COST,expand" envDefault:"10"`
}

type AuthnProviders struct {
	Google OAuth2Provider `envPrefix:"GOOGLE_"`
	Github OAuth2Provider `envPrefix:"GITHUB_"`
	Gitea  GiteaProvider  `envPrefix:"GITEA_"`
	OIDC   OIDCProvider   `envPrefix:"OIDC_"`
}

type OAuth2Provider struct {
	Key    string   `env:"KEY,expand"`
	Secret string   `env:"SECRET,expand"`
	Scopes []string `env:"SCOPES,expand" envSeparator:","`
}

type GiteaProvider struct {
	OAuth2Provider
	Label      string `env:"LABEL,expand" envDefault:"Gitea"`
	AuthURL    string `env:"AUTH_URL,expand"`
	TokenURL   string `env:"TOKEN_URL,expand"`
	ProfileURL string `env:"PROFILE_URL,expand"`
}

type OIDCProvider struct {
	OAuth2Provider
	Label        string `env:"LABEL,expand" envDefault:"OpenID Connect"`
	Icon         string `env:"ICON,expand" envDefault:"fa-openid"`
	DiscoveryURL string `env:"DISCOVERY_URL,expand"`
}

type RateLimit struct {
	Enabled      bool          `env:"ENABLED,expand" envDefault:"true"`
	TrustHeaders bool          `env:"TRUST_HEADERS,expand" envDefault:"false"`
	Interval     time.Duration `env:"INTERVAL,expand" envDefault:"10s"`
	MaxBurst     int           `env:"MAX_BURST,expand" envDefault:"5"`
	CacheSize    int           `env:"CACHE_SIZE,expand" envDefault:"1024"`
	CacheTTL     time.Duration `env:"CACHE_TTL,expand" envDefault:"1h"`
}

type Metrics struct {
	Enabled  bool   `env:"ENABLED,expand" envDefault:"true"`
	Username string `env:"USERNAME,expand"`
	Password string `env:"PASSWORD,expand"`
}
