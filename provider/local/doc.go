// Package local adapts the dispatcher to plain net/http for local
// development and testing. The same handler and middleware run
// unmodified against the Lambda and Azure providers.
package local
