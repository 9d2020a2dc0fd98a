// Package domain re-exports the core types and interfaces of clasp from the
// types and interfaces subpackages, so most code imports a single package.
package domain
