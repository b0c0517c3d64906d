// Package domain defines the core business entities of the taskboard
// application and their validation rules. Entities here are persistence
// agnostic; stores and handlers depend on this package, never the reverse.
package domain
