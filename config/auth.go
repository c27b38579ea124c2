package config

// Auth 驗證外部 identity provider 簽發的 bearer token
type Auth struct {
	Enabled  bool   `mapstructure:"ENABLED" json:"enabled" yaml:"enabled"`
	Secret   string `mapstructure:"SECRET" json:"secret" yaml:"secret"`
	Issuer   string `mapstructure:"ISSUER" json:"issuer" yaml:"issuer"`
	Audience string `mapstructure:"AUDIENCE" json:"audience" yaml:"audience"`
}
