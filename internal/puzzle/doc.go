// Package puzzle holds the pieces shared by every puzzle module: the Result
// handed back to the presentation layer, the closed set of error kinds a
// solver may report, and the line splitting used by all parsers.
package puzzle
