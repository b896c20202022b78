// Package catalog is the master recipe store. A Store is built once by Load
// from a merged config.Model and is read-only afterwards, so a single Store
// can serve any number of concurrent verifications.
package catalog
