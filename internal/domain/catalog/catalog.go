package catalog

import (
	"fmt"
	"time"
)

// DeviceModel is a catalog entry tickets reference by name.
type DeviceModel struct {
	id        uint
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewDeviceModel(name string) (*DeviceModel, error) {
	if name == "" {
		return nil, fmt.Errorf("device model name is required")
	}

	now := time.Now()
	return &DeviceModel{name: name, createdAt: now, updatedAt: now}, nil
}

func ReconstructDeviceModel(id uint, name string, createdAt, updatedAt time.Time) (*DeviceModel, error) {
	if id == 0 {
		return nil, fmt.Errorf("device model ID cannot be zero")
	}
	return &DeviceModel{id: id, name: name, createdAt: createdAt, updatedAt: updatedAt}, nil
}

// SetID assigns the database-generated ID after persistence
func (d *DeviceModel) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("device model ID already set")
	}
	if id == 0 {
		return fmt.Errorf("device model ID cannot be zero")
	}
	d.id = id
	return nil
}

func (d *DeviceModel) ID() uint             { return d.id }
func (d *DeviceModel) Name() string         { return d.name }
func (d *DeviceModel) CreatedAt() time.Time { return d.createdAt }
func (d *DeviceModel) UpdatedAt() time.Time { return d.updatedAt }

func (d *DeviceModel) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("device model name is required")
	}
	d.name = name
	d.updatedAt = time.Now()
	return nil
}

// Customer is a catalog entry for the customer a ticket belongs to.
// Customers soft-delete so old tickets keep resolving their names.
type Customer struct {
	id        uint
	name      string
	deleted   bool
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(name string) (*Customer, error) {
	if name == "" {
		return nil, fmt.Errorf("customer name is required")
	}

	now := time.Now()
	return &Customer{name: name, createdAt: now, updatedAt: now}, nil
}

func ReconstructCustomer(id uint, name string, deleted bool, createdAt, updatedAt time.Time) (*Customer, error) {
	if id == 0 {
		return nil, fmt.Errorf("customer ID cannot be zero")
	}
	return &Customer{id: id, name: name, deleted: deleted, createdAt: createdAt, updatedAt: updatedAt}, nil
}

// SetID assigns the database-generated ID after persistence
func (c *Customer) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("customer ID already set")
	}
	if id == 0 {
		return fmt.Errorf("customer ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Customer) ID() uint             { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) IsDeleted() bool      { return c.deleted }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

func (c *Customer) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("customer name is required")
	}
	c.name = name
	c.updatedAt = time.Now()
	return nil
}

func (c *Customer) MarkDeleted() {
	c.deleted = true
	c.updatedAt = time.Now()
}
