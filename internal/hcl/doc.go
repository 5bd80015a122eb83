// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for file discovery, parsing, decoding of
// `puzzle` blocks and the cty-to-Go conversion of expected answers.
package hcl
