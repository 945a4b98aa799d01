package organization

import (
	"context"

	"github.com/jhoicas/rationshop-api/internal/domain/repository"
)

// TxRunner runs fn inside one storage transaction with repositories bound to it.
// Either every write made through them commits or none does.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		shops repository.ShopRepository,
	) error) error
}
