// Package postgres implements the store interfaces on PostgreSQL through
// database/sql with the pgx driver. All queries go through the store.DBTX
// abstraction so the same implementations run inside transactions.
package postgres
