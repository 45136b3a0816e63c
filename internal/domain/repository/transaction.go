package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to make multi-step writes atomic without
// depending on a specific DB driver like GORM. Order creation (order + items),
// cancellation (status + payment refund) and deletion (refund + removal) all
// run through Execute so partial writes cannot occur.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise it is committed. All repositories obtained from the factory
	// share the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// OrderRepo returns an OrderRepository bound to the current transaction.
	OrderRepo() OrderRepository

	// PaymentRepo returns a PaymentRepository bound to the current transaction.
	PaymentRepo() PaymentRepository

	// MenuRepo returns a MenuItemRepository bound to the current transaction.
	MenuRepo() MenuItemRepository

	// InventoryRepo returns an InventoryRepository bound to the current transaction.
	InventoryRepo() InventoryRepository
}
