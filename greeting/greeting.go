// Package greeting formats greetings. It has no side effects and is safe to
// import from any program.
package greeting

import "fmt"

// DefaultName is greeted when no name is given.
const DefaultName = "World"

// Greet returns a greeting message for the given name.
// The name is used as-is, including the empty string.
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}
