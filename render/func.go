package render

import (
	"github.com/google/uuid"
	"github.com/xy-planning-network/cairn"
)

// Env encloses some string representing an environment.
// It returns "env" as the name of the function for convenient passing to WithFn
// and returns a function returning the enclosed value when called.
func Env(e cairn.Environment) (string, func() string) {
	return "env", func() string { return e.String() }
}

// Nonce returns "nonce" as the name of the function for convenient passing to WithFn
// and returns a function generating a uuid.
func Nonce() (string, func() string) {
	return "nonce", func() string { return uuid.NewString() }
}
