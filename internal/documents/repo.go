package documents

import "context"

// Repo defines persistence operations for document metadata rows. Every
// operation is scoped to the owning user; the store, not the caller, is the
// authority on ownership.
type Repo interface {
	// Insert stores a new row and returns it with its assigned id.
	Insert(ctx context.Context, doc Document) (Document, error)
	// ListByOwner returns the owner's rows ordered by upload date, newest first.
	ListByOwner(ctx context.Context, userID string) ([]Document, error)
	// GetByID fetches a single row owned by userID. Returns ErrNotFound when
	// no matching row exists.
	GetByID(ctx context.Context, userID, docID string) (Document, error)
	// DeleteByID removes a row owned by userID and returns the removed row so
	// callers can clean up the referenced blob. Returns ErrNotFound when no
	// matching row exists.
	DeleteByID(ctx context.Context, userID, docID string) (Document, error)
}
