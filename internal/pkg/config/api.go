package config

// API represents API server configuration
type API struct {
	CORS CORSConfig `yaml:"cors"`
	Auth AuthConfig `yaml:"auth"`
}

// CORSConfig holds cross-origin settings for the renderer
type CORSConfig struct {
	Enabled        bool     `yaml:"enabled"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
}

// AuthConfig holds the optional JWT login for the API
type AuthConfig struct {
	Enabled       bool   `yaml:"enabled"`
	User          string `yaml:"user"`
	Pass          string `yaml:"pass"`
	JWTSecret     string `yaml:"jwt_secret"`
	JWTExpiration int    `yaml:"jwt_expiration"` // seconds
}
