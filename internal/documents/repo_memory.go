package documents

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Document // userID -> documents
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Document),
	}
}

// Insert stores a new document row and assigns it an id.
func (r *MemoryRepo) Insert(ctx context.Context, doc Document) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	doc.ID = uuid.NewString()
	doc.Verified = false
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[doc.UserID] = append(r.data[doc.UserID], doc)
	return doc, nil
}

// ListByOwner returns a user's documents, newest first.
func (r *MemoryRepo) ListByOwner(ctx context.Context, userID string) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	userDocs := r.data[userID]
	r.mu.RUnlock()

	docs := make([]Document, len(userDocs))
	copy(docs, userDocs)
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].UploadDate.After(docs[j].UploadDate)
	})
	return docs, nil
}

// GetByID returns a document by id for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, docID string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, doc := range r.data[userID] {
		if doc.ID == docID {
			return doc, nil
		}
	}
	return Document{}, ErrNotFound
}

// DeleteByID removes a document row for a user and returns the removed row.
func (r *MemoryRepo) DeleteByID(ctx context.Context, userID, docID string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	docs := r.data[userID]
	for i, doc := range docs {
		if doc.ID == docID {
			r.data[userID] = append(docs[:i:i], docs[i+1:]...)
			return doc, nil
		}
	}
	return Document{}, ErrNotFound
}

var _ Repo = (*MemoryRepo)(nil)
