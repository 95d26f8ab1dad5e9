package usecases

import (
	"context"
	"fmt"
	"time"

	"haitch/internal/domain/catalog"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
)

type CustomerDetail struct {
	ID        uint
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomerUseCases bundles the customer catalog operations. Deletes are
// soft so historical tickets keep resolving customer names.
type CustomerUseCases struct {
	repo   catalog.CustomerRepository
	logger logger.Interface
}

func NewCustomerUseCases(repo catalog.CustomerRepository, logger logger.Interface) *CustomerUseCases {
	return &CustomerUseCases{repo: repo, logger: logger}
}

func (uc *CustomerUseCases) Create(ctx context.Context, name string) (*CustomerDetail, error) {
	exists, err := uc.repo.ExistsByName(ctx, name)
	if err != nil {
		uc.logger.Errorw("failed to check customer name", "name", name, "error", err)
		return nil, fmt.Errorf("failed to check customer: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("customer already exists", name)
	}

	c, err := catalog.NewCustomer(name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create customer", "name", name, "error", err)
		return nil, err
	}

	uc.logger.Infow("customer created", "id", c.ID(), "name", c.Name())
	return toCustomerDetail(c), nil
}

func (uc *CustomerUseCases) Rename(ctx context.Context, id uint, name string) (*CustomerDetail, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get customer", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if c == nil {
		return nil, errors.NewNotFoundError("customer not found")
	}

	if c.Name() != name {
		exists, err := uc.repo.ExistsByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to check customer: %w", err)
		}
		if exists {
			return nil, errors.NewConflictError("customer already exists", name)
		}
	}

	if err := c.Rename(name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update customer", "id", id, "error", err)
		return nil, err
	}

	return toCustomerDetail(c), nil
}

func (uc *CustomerUseCases) Delete(ctx context.Context, id uint) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get customer: %w", err)
	}
	if c == nil {
		return errors.NewNotFoundError("customer not found")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete customer", "id", id, "error", err)
		return err
	}

	uc.logger.Infow("customer deleted", "id", id)
	return nil
}

func (uc *CustomerUseCases) List(ctx context.Context) ([]*CustomerDetail, error) {
	customers, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list customers", "error", err)
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	details := make([]*CustomerDetail, 0, len(customers))
	for _, c := range customers {
		details = append(details, toCustomerDetail(c))
	}
	return details, nil
}

func toCustomerDetail(c *catalog.Customer) *CustomerDetail {
	return &CustomerDetail{
		ID:        c.ID(),
		Name:      c.Name(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}
