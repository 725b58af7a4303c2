package util

import (
	"log"
)

// Check logs a fatal error and exits if err is not nil.
func Check(err error) {
	if err != nil {
		log.Fatalf("%v", err)
	}
}

// Checkf is Check with a context prefix, e.g. Checkf("load config", err).
func Checkf(msg string, err error) {
	if err != nil {
		log.Fatalf("%s: %v", msg, err)
	}
}
