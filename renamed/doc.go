// Package renamed re-exports the SDK root package so callers can import
// github.com/renamed-to/renamed-golang/renamed when their tooling expects
// the package name to match the import path tail.
package renamed
