package session

import "math/rand"

// DefaultGuestAlphabet matches the wire format clients expect for
// generated identifiers: uppercase letters and digits.
const DefaultGuestAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GuestID generates a random guest user identifier of the given length
// drawn from alphabet. There is no uniqueness check against existing
// identifiers; collision risk is tuned via length and alphabet.
func GuestID(length int, alphabet string) string {
	if length <= 0 {
		length = 12
	}
	if alphabet == "" {
		alphabet = DefaultGuestAlphabet
	}

	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}
