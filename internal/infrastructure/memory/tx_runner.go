package memory

import (
	"context"

	"github.com/jhoicas/rationshop-api/internal/application/organization"
	"github.com/jhoicas/rationshop-api/internal/domain/repository"
)

var _ organization.TxRunner = (*TxRunner)(nil)

// TxRunner serialises transactions on the store's write lock.
type TxRunner struct {
	store *Store
}

// NewTxRunner builds a runner on store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run hands fn repositories bound to a private copy of the state and commits the copy
// when fn returns nil.
func (r *TxRunner) Run(ctx context.Context, fn func(
	users repository.UserRepository,
	shops repository.ShopRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.data.clone()
	if err := fn(&UserRepo{store: s, tx: tx}, &ShopRepo{store: s, tx: tx}); err != nil {
		return err
	}
	s.data = tx
	return nil
}
