package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultAccountPort       = 8081
	DefaultHTTPReadTimeout   = 10 * time.Second
	DefaultHTTPWriteTimeout  = 10 * time.Second
	DefaultGatewayPort       = 8082
	DefaultGatewayPath       = "/ws"
	DefaultPingInterval      = 15 * time.Second
	DefaultWSReadTimeout     = 60 * time.Second
	DefaultWSWriteTimeout    = 5 * time.Second
	DefaultSendBuffer        = 64
	DefaultDBPort            = 5432
	DefaultDBSSLMode         = "prefer"
	DefaultMaxConns          = 10
	DefaultMinConns          = 2
	DefaultRedisAddr         = "localhost:6379"
	DefaultRedisPoolSize     = 10
	DefaultRedisMinIdleConns = 2
	DefaultGuestIDLength     = 12
	DefaultGuestAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	DefaultRoomCapacity      = 2
	DefaultHealthPort        = 9090
	DefaultHealthPath        = "/health"
)

func (c *BackendConfig) applyDefaults() {
	// Account server defaults
	if c.Account.Port == 0 {
		c.Account.Port = DefaultAccountPort
	}
	if c.Account.ReadTimeout == 0 {
		c.Account.ReadTimeout = DefaultHTTPReadTimeout
	}
	if c.Account.WriteTimeout == 0 {
		c.Account.WriteTimeout = DefaultHTTPWriteTimeout
	}

	// Gateway defaults
	if c.Gateway.Port == 0 {
		c.Gateway.Port = DefaultGatewayPort
	}
	if c.Gateway.Path == "" {
		c.Gateway.Path = DefaultGatewayPath
	}
	if c.Gateway.PingInterval == 0 {
		c.Gateway.PingInterval = DefaultPingInterval
	}
	if c.Gateway.ReadTimeout == 0 {
		c.Gateway.ReadTimeout = DefaultWSReadTimeout
	}
	if c.Gateway.WriteTimeout == 0 {
		c.Gateway.WriteTimeout = DefaultWSWriteTimeout
	}
	if c.Gateway.SendBuffer == 0 {
		c.Gateway.SendBuffer = DefaultSendBuffer
	}

	// Database defaults
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	// Redis defaults
	if c.Redis.Addr == "" {
		c.Redis.Addr = DefaultRedisAddr
	}
	if c.Redis.PoolSize == 0 {
		c.Redis.PoolSize = DefaultRedisPoolSize
	}
	if c.Redis.MinIdleConns == 0 {
		c.Redis.MinIdleConns = DefaultRedisMinIdleConns
	}

	// Guest identifier defaults
	if c.Guest.IDLength == 0 {
		c.Guest.IDLength = DefaultGuestIDLength
	}
	if c.Guest.Alphabet == "" {
		c.Guest.Alphabet = DefaultGuestAlphabet
	}

	// Rooms defaults
	if c.Rooms.Capacity == 0 {
		c.Rooms.Capacity = DefaultRoomCapacity
	}

	// Health defaults
	if c.Health.Port == 0 {
		c.Health.Port = DefaultHealthPort
	}
	if c.Health.Path == "" {
		c.Health.Path = DefaultHealthPath
	}
}
