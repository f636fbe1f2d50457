// Package util provides logging helpers and file system locations.
package util

import "log"

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// LogWarnings logs each non-nil warning under the same context.
func LogWarnings(context string, warnings []error) {
	for _, w := range warnings {
		LogError(context, w)
	}
}
