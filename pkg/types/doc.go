// Package types defines the Catalog interface, the PrivacyStack entity,
// composite scoring, and standard error types for the privacy-matrix
// storage system.
package types
