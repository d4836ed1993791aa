package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"DATABASE_URL", "STORAGE_DRIVER", "ADMIN_USERNAME", "ADMIN_PASSWORD",
		"ORDER_EMAIL", "ORDER_SUBMIT_DELAY", "ES_URL", "SMTP_HOST",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.StorageDriver)
	assert.Equal(t, "storefront.db", cfg.DatabaseURL)
	assert.Equal(t, "storefront.db", cfg.StorageDSN())
	assert.Equal(t, DefaultAdminUsername, cfg.AdminUsername)
	assert.Equal(t, DefaultAdminPassword, cfg.AdminPassword)
	assert.Equal(t, DefaultOrderEmail, cfg.OrderEmail)
	assert.Equal(t, time.Second, cfg.OrderSubmitDelay)
	assert.Equal(t, 12*time.Hour, cfg.AdminTokenTTL)
	assert.Empty(t, cfg.ESURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "bolt")
	t.Setenv("BOLT_PATH", "/tmp/shop.bolt")
	t.Setenv("ORDER_SUBMIT_DELAY", "250ms")
	t.Setenv("SMTP_PORT", "2525")

	cfg := Load()

	assert.Equal(t, "bolt", cfg.StorageDriver)
	assert.Equal(t, "/tmp/shop.bolt", cfg.StorageDSN())
	assert.Equal(t, 250*time.Millisecond, cfg.OrderSubmitDelay)
	assert.Equal(t, 2525, cfg.SMTPPort)
}
