// Package ratelimit implements a fixed-window request rate limiter over an
// external counter store with atomic increment-and-expire semantics.
//
// The limiter itself is stateless: every decision is a single store
// round-trip, so instances can be replicated freely behind a load balancer
// as long as they share the store. Window bookkeeping is delegated to the
// store's key TTL; a window ends when the counter key expires and the next
// increment recreates it at one.
package ratelimit
