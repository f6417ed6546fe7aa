// Package postgres provides PostgreSQL implementations of the store
// interfaces. All implementations run against a store.DBTX, so they work
// identically over the connection pool and inside a transaction.
package postgres
