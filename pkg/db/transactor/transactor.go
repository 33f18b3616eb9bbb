package transactor

import (
	"context"
)

// Transactor runs fn within single unit of work, everything fn does through
// context-aware executors is committed or rolled back together
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(context.Context) error) error
}
