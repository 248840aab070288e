// Package battle routes battle event types.
//
// The routes are accepted and logged but battle simulation is not
// built; each handler answers with an explicit not-supported error so
// clients are never left waiting on a silent no-op.
package battle
