package common

import "strings"

// Package returns the package part of a JVM internal name including the
// trailing slash ("a/b/C" -> "a/b/"). Returns empty string for the default package.
func Package(internalName string) string {
	i := strings.LastIndexByte(internalName, '/')
	if i < 0 {
		return ""
	}

	return internalName[:i+1]
}
