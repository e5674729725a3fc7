package domain

import "context"

// Identity is the authenticated caller as asserted by the platform gateway.
// Identity issuance and session management live outside this service; we only
// consume the claims.
type Identity struct {
	ID       int64    // Identity identifier on the platform
	Username string   // Display name resolved at token mint time
	Roles    []string // Platform roles, e.g. "admin", "discussion-reviewer"
}

// Problem is the read-only projection of a judge problem consumed by this
// service. Problems are managed elsewhere; we only need existence and alias.
type Problem struct {
	ID    int64
	Alias string
	Title string
}

// ProblemReader resolves problems owned by the judge platform.
type ProblemReader interface {
	// GetByAlias returns ErrNotFound if no problem has the given alias.
	GetByAlias(ctx context.Context, alias string) (Problem, error)

	// GetByID returns ErrNotFound if the problem doesn't exist.
	GetByID(ctx context.Context, id int64) (Problem, error)
}

// IdentityReader resolves display usernames for identity IDs. Callers treat a
// failed lookup as an empty username rather than an error.
type IdentityReader interface {
	Username(ctx context.Context, identityID int64) (string, error)
}

// IdentityCache caches username lookups so read-time enrichment does not hit
// the platform tables on every row.
type IdentityCache interface {
	// GetUsername returns ErrNotFound on a cache miss.
	GetUsername(ctx context.Context, identityID int64) (string, error)
	SetUsername(ctx context.Context, identityID int64, username string) error
}

// Authorizer answers capability questions about an identity. Injected into the
// services so tests can use a double instead of a real authorization backend.
type Authorizer interface {
	// CanModerate reports whether the identity may delete others' content and
	// work the report queue.
	CanModerate(identity Identity) bool
}
