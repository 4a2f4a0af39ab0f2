package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "GRPC_ADDR", "STORE_DRIVER", "SQLITE_PATH", "BCRYPT_COST", "ADMIN_EMAILS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, ":50051", cfg.GRPCAddr)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "foodcart.db", cfg.StoreDSN())
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, []string{"admin@gmail.com", "admin@yourdomain.com"}, cfg.AdminEmails)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("POSTGRES_DSN", "postgres://x@db/shop")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("ADMIN_EMAILS", " boss@shop.vn , ,ops@shop.vn")

	cfg := Load()
	assert.Equal(t, "postgres://x@db/shop", cfg.StoreDSN())
	assert.Equal(t, 4, cfg.BcryptCost)
	assert.Equal(t, []string{"boss@shop.vn", "ops@shop.vn"}, cfg.AdminEmails)
}

func TestLoad_BadNumberFallsBack(t *testing.T) {
	t.Setenv("BCRYPT_COST", "ten")
	assert.Equal(t, 10, Load().BcryptCost)
}
