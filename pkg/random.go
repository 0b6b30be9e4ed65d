package pkg

import "math/rand"

const codeLetters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RandString returns n characters a player can read out loud and type back.
func RandString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeLetters[rand.Intn(len(codeLetters))]
	}
	return string(b)
}
