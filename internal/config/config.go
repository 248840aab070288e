package config

import "time"

// BackendConfig is the root configuration shared by all minibattle binaries.
type BackendConfig struct {
	Instance InstanceConfig `yaml:"instance"`
	Account  AccountConfig  `yaml:"account"`
	Gateway  GatewayConfig  `yaml:"gateway"`
	Database DBConfig       `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Guest    GuestConfig    `yaml:"guest"`
	Rooms    RoomsConfig    `yaml:"rooms"`
	Health   HealthConfig   `yaml:"health"`
}

// InstanceConfig identifies this deployment.
type InstanceConfig struct {
	ID string `yaml:"id"`
}

// AccountConfig holds the account-management HTTP server settings.
type AccountConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// GatewayConfig holds the realtime WebSocket server settings.
type GatewayConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	Path         string        `yaml:"path"` // WebSocket upgrade path
	PingInterval time.Duration `yaml:"ping_interval"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // max silence before a connection is considered dead
	WriteTimeout time.Duration `yaml:"write_timeout"` // write deadline for pushes
	SendBuffer   int           `yaml:"send_buffer"`   // per-connection outbound queue size
}

// DBConfig holds the PostgreSQL connection for user records.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// RedisConfig holds the Redis connection for shared realtime state
// (sessions, rooms, the open-room list).
type RedisConfig struct {
	Addr         string `yaml:"addr"`
	Password     string `yaml:"password"`
	DB           int    `yaml:"db"`
	PoolSize     int    `yaml:"pool_size"`
	MinIdleConns int    `yaml:"min_idle_conns"`
}

// GuestConfig controls generated guest identifiers for connections that
// arrive without a user_id. Duplicate risk is accepted and tuned here
// rather than checked against the store.
type GuestConfig struct {
	IDLength int    `yaml:"id_length"`
	Alphabet string `yaml:"alphabet"`
}

// RoomsConfig holds matchmaking settings.
type RoomsConfig struct {
	Capacity int `yaml:"capacity"` // members per room
}

// HealthConfig holds the health endpoint settings.
type HealthConfig struct {
	Port int    `yaml:"port"`
	Path string `yaml:"path"`
}
