package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	c := Load()
	if c.AppPort != "8080" {
		t.Errorf("AppPort = %q, want 8080", c.AppPort)
	}
	if c.IdempTTLSecs != 300 {
		t.Errorf("IdempTTLSecs = %d, want 300", c.IdempTTLSecs)
	}
	if c.CustomerDataPath != "data/customer_data.xlsx" {
		t.Errorf("CustomerDataPath = %q", c.CustomerDataPath)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("MYSQL_DB", "credit_test")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "60")

	c := Load()
	if c.AppPort != "9090" {
		t.Errorf("AppPort = %q, want 9090", c.AppPort)
	}
	if c.MySQLDB != "credit_test" {
		t.Errorf("MySQLDB = %q", c.MySQLDB)
	}
	if c.RedisDB != 3 {
		t.Errorf("RedisDB = %d, want 3", c.RedisDB)
	}
	if c.IdempTTLSecs != 60 {
		t.Errorf("IdempTTLSecs = %d, want 60", c.IdempTTLSecs)
	}
}

func TestValidate(t *testing.T) {
	c := Load()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	c.MySQLPort = "not-a-port"
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for bad port")
	}

	c = Load()
	c.MySQLHost = ""
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for missing host")
	}
}

func TestMySQLDSN(t *testing.T) {
	t.Setenv("MYSQL_HOST", "localhost")
	t.Setenv("MYSQL_PORT", "3307")
	t.Setenv("MYSQL_DB", "credit")
	t.Setenv("MYSQL_USER", "app")
	t.Setenv("MYSQL_PASS", "secret")

	dsn := Load().MySQLDSN()
	if !strings.HasPrefix(dsn, "app:secret@tcp(localhost:3307)/credit?") {
		t.Errorf("unexpected DSN: %s", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Errorf("DSN missing parseTime: %s", dsn)
	}
}
