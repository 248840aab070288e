package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	yaml := `
instance:
  id: test-backend
gateway:
  port: 9001
  path: /realtime
database:
  host: localhost
  port: 5432
  name: test_db
  user: testuser
  password: testpass
redis:
  addr: localhost:6380
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Instance.ID != "test-backend" {
		t.Errorf("Instance.ID = %q, want %q", cfg.Instance.ID, "test-backend")
	}
	if cfg.Gateway.Port != 9001 {
		t.Errorf("Gateway.Port = %d, want 9001", cfg.Gateway.Port)
	}
	if cfg.Gateway.Path != "/realtime" {
		t.Errorf("Gateway.Path = %q, want %q", cfg.Gateway.Path, "/realtime")
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "localhost")
	}
	if cfg.Redis.Addr != "localhost:6380" {
		t.Errorf("Redis.Addr = %q, want %q", cfg.Redis.Addr, "localhost:6380")
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "secret123")

	yaml := `
instance:
  id: test-backend
database:
  host: localhost
  name: test_db
  user: testuser
  password: ${TEST_DB_PASSWORD}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Password != "secret123" {
		t.Errorf("Database.Password = %q, want %q", cfg.Database.Password, "secret123")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
instance:
  id: test-backend
database:
  host: localhost
  name: test_db
  user: testuser
  password: testpass
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	// Check defaults were applied
	if cfg.Account.Port != DefaultAccountPort {
		t.Errorf("Account.Port = %d, want default %d", cfg.Account.Port, DefaultAccountPort)
	}
	if cfg.Gateway.Path != DefaultGatewayPath {
		t.Errorf("Gateway.Path = %q, want default %q", cfg.Gateway.Path, DefaultGatewayPath)
	}
	if cfg.Database.Port != DefaultDBPort {
		t.Errorf("Database.Port = %d, want default %d", cfg.Database.Port, DefaultDBPort)
	}
	if cfg.Guest.IDLength != DefaultGuestIDLength {
		t.Errorf("Guest.IDLength = %d, want default %d", cfg.Guest.IDLength, DefaultGuestIDLength)
	}
	if cfg.Guest.Alphabet != DefaultGuestAlphabet {
		t.Errorf("Guest.Alphabet = %q, want default %q", cfg.Guest.Alphabet, DefaultGuestAlphabet)
	}
	if cfg.Rooms.Capacity != DefaultRoomCapacity {
		t.Errorf("Rooms.Capacity = %d, want default %d", cfg.Rooms.Capacity, DefaultRoomCapacity)
	}
	if cfg.Health.Port != DefaultHealthPort {
		t.Errorf("Health.Port = %d, want default %d", cfg.Health.Port, DefaultHealthPort)
	}
}

func TestValidate(t *testing.T) {
	valid := func() BackendConfig {
		cfg := BackendConfig{
			Instance: InstanceConfig{ID: "test"},
			Database: DBConfig{Host: "localhost", Name: "db", User: "user", Password: "pass", MaxConns: 10, MinConns: 2},
		}
		cfg.applyDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*BackendConfig)
		wantErr string
	}{
		{
			name:    "valid config",
			mutate:  func(c *BackendConfig) {},
			wantErr: "",
		},
		{
			name:    "missing instance id",
			mutate:  func(c *BackendConfig) { c.Instance.ID = "" },
			wantErr: "instance.id is required",
		},
		{
			name:    "missing database host",
			mutate:  func(c *BackendConfig) { c.Database.Host = "" },
			wantErr: "database.host is required",
		},
		{
			name:    "missing database password",
			mutate:  func(c *BackendConfig) { c.Database.Password = "" },
			wantErr: "database.password is required",
		},
		{
			name:    "min_conns exceeds max_conns",
			mutate:  func(c *BackendConfig) { c.Database.MinConns = 20 },
			wantErr: "database.min_conns (20) cannot exceed max_conns (10)",
		},
		{
			name:    "missing redis addr",
			mutate:  func(c *BackendConfig) { c.Redis.Addr = "" },
			wantErr: "redis.addr is required",
		},
		{
			name:    "guest id length zero",
			mutate:  func(c *BackendConfig) { c.Guest.IDLength = -1 },
			wantErr: "guest.id_length must be >= 1",
		},
		{
			name:    "single character alphabet",
			mutate:  func(c *BackendConfig) { c.Guest.Alphabet = "A" },
			wantErr: "guest.alphabet must contain at least 2 characters",
		},
		{
			name:    "room capacity below two",
			mutate:  func(c *BackendConfig) { c.Rooms.Capacity = 1 },
			wantErr: "rooms.capacity must be >= 2, got 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("Validate() expected error %q, got nil", tt.wantErr)
				} else if err.Error() != tt.wantErr {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
				}
			}
		})
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}
