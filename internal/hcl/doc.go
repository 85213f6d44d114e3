// Package hcl provides the concrete HCL implementation of the rules Loader
// interface defined in the `config` package, along with the built-in default
// rules. It is responsible for all rules file parsing and HCL-to-model
// translation.
package hcl
