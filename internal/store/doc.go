// Package store provides the Redis client for shared realtime state.
//
// Every gateway instance reads and writes the same keys, so sessions and
// rooms survive any single instance and remain visible to all of them.
package store
