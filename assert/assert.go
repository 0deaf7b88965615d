package assert

import "github.com/strikepod/strikepod/serror"

// IsTrue panics when ok is false. It guards programmer errors that must not
// survive into a tick's output, not recoverable runtime conditions.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(serror.New(message, args...))
	}
}
