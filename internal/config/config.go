package config

import (
	"os"
	"time"

	pkgcfg "github.com/Skotchmaster/vape_shop/pkg/config"
)

const (
	DefaultAdminUsername = "Karas"
	DefaultAdminPassword = "Karas"
	DefaultOrderEmail    = "Brothersteam480@gmail.com"
)

type Config struct {
	pkgcfg.Config

	StorageDriver string
	BoltPath      string

	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	OrderEmail   string

	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	AdminTokenTTL     time.Duration

	OrderSubmitDelay time.Duration
}

func Load() Config {
	base := pkgcfg.Load()
	if base.DatabaseURL == "" {
		base.DatabaseURL = "storefront.db"
	}

	return Config{
		Config: base,

		StorageDriver: pkgcfg.EnvDefault("STORAGE_DRIVER", "sqlite"),
		BoltPath:      pkgcfg.EnvDefault("BOLT_PATH", "storefront.bolt"),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),
		ESIndex:    pkgcfg.EnvDefault("ES_INDEX", "products"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     pkgcfg.EnvIntDefault("SMTP_PORT", 587),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     pkgcfg.EnvDefault("MAIL_FROM", os.Getenv("SMTP_USER")),
		OrderEmail:   pkgcfg.EnvDefault("ORDER_EMAIL", DefaultOrderEmail),

		AdminUsername:     pkgcfg.EnvDefault("ADMIN_USERNAME", DefaultAdminUsername),
		AdminPassword:     pkgcfg.EnvDefault("ADMIN_PASSWORD", DefaultAdminPassword),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminTokenTTL:     pkgcfg.EnvDurationDefault("ADMIN_TOKEN_TTL", 12*time.Hour),

		OrderSubmitDelay: pkgcfg.EnvDurationDefault("ORDER_SUBMIT_DELAY", time.Second),
	}
}

// StorageDSN is the path or connection string handed to the snapshot backend.
func (c Config) StorageDSN() string {
	if c.StorageDriver == "bolt" {
		return c.BoltPath
	}
	return c.DatabaseURL
}
