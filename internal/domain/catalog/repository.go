package catalog

import "context"

// DeviceModelRepository defines data operations for device models
type DeviceModelRepository interface {
	Create(ctx context.Context, m *DeviceModel) error
	GetByID(ctx context.Context, id uint) (*DeviceModel, error)
	Update(ctx context.Context, m *DeviceModel) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*DeviceModel, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// CustomerRepository defines data operations for customers.
// Delete is a soft delete; List excludes soft-deleted rows.
type CustomerRepository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id uint) (*Customer, error)
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*Customer, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
