package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port                  int               `envconfig:"PORT" default:"8080"`
	LogLevel              string            `envconfig:"LOG_LEVEL" default:"info"`
	Version               string            `envconfig:"VERSION" default:"dev"`
	CMSURL                string            `envconfig:"CMS_URL" required:"true"`
	CMSToken              string            `envconfig:"CMS_TOKEN" required:"true"`
	CMSAssetToken         string            `envconfig:"CMS_ASSET_TOKEN" default:""`
	CMSTimeout            time.Duration     `envconfig:"CMS_TIMEOUT" default:"15s"`
	SiteURL               string            `envconfig:"SITE_URL" default:"https://whitemassif.com"`
	DatabaseURL           string            `envconfig:"DATABASE_URL" default:""`
	RevalidateInterval    int               `envconfig:"REVALIDATE_INTERVAL" default:"3600"`
	NewsletterDedupStrict bool              `envconfig:"NEWSLETTER_DEDUP_STRICT" default:"false"`
	OperatorKeys          map[string]string `envconfig:"OPERATOR_KEYS" default:""`
	BcryptCost            int               `envconfig:"BCRYPT_COST" default:"12"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// CMS holds the subset of configuration the cmsctl tool needs.
type CMS struct {
	URL     string        `envconfig:"CMS_URL" required:"true"`
	Token   string        `envconfig:"CMS_TOKEN" required:"true"`
	Timeout time.Duration `envconfig:"CMS_TIMEOUT" default:"30s"`
}

// LoadCMS reads the CMS connection settings from environment variables.
func LoadCMS() (*CMS, error) {
	var cfg CMS
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
