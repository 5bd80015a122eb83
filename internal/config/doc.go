// Package config defines the format-agnostic run configuration model and the
// Loader interface that concrete formats implement.
//
// The run configuration is optional. It lets a user pin the input file of a
// puzzle and record known-good answers that are checked after every run.
// The HCL implementation lives in the `hcl` package.
package config
