// Package source loads purchase tables from delimited text files and
// SQLite databases.
//
// Every failure is reported as a *LoadError (the input could not be opened
// or read) or a *SchemaError (a required column is missing or a value is
// malformed). Both are detected once, at load time.
package source
