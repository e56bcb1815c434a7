package ports

import "context"

// ViewCache defines the presentation-refresh port. Implemented by the
// outbound cache adapter; called by the application layer after a confirmed
// write. Invalidate marks cached renders of the given logical view path stale
// so they are recomputed on next access. Invalidation is idempotent.
type ViewCache interface {
	Invalidate(ctx context.Context, path string) error
}
