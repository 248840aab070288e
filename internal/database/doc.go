// Package database provides the PostgreSQL connection pool for user records.
//
// Only the account server talks to PostgreSQL; all realtime state
// (sessions, rooms) lives in Redis.
package database
