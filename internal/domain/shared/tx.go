package shared

import "context"

// TxManager runs a function inside a database transaction. Repository calls
// made with the context passed to fn join that transaction, so number
// allocation and document creation commit or roll back together.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
