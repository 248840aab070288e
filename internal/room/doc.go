// Package room implements two-player room matchmaking.
//
// Open rooms wait on a shared list; a joining user pops the most
// recently opened room or creates a new one named after themselves.
// Popping is atomic, so two concurrent joiners cannot be assigned the
// same room, and membership is appended through a capacity-checked
// conditional write. Rooms are never destroyed once full; closed-room
// records persist until the store expires or an operator clears them.
package room
