package usecase

//go:generate mockgen -source=customer.go -destination=../../tests/mock/usecase/mock_customer.go -package=usecasemock

import (
	"context"
	"log/slog"

	"beer-service/internal/domain/customer"
	"beer-service/internal/dto"
	"beer-service/internal/mapper"
	"beer-service/internal/pkg/clock"
	"beer-service/internal/pkg/errs"
	"beer-service/internal/pkg/patch"
	"beer-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerService interface {
	List(ctx context.Context) ([]dto.CustomerDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CustomerDTO, error)
	Create(ctx context.Context, in dto.CustomerDTO) (*dto.CustomerDTO, error)
	Replace(ctx context.Context, id uuid.UUID, in dto.CustomerDTO) (*dto.CustomerDTO, error)
	Patch(ctx context.Context, id uuid.UUID, in dto.CustomerPatch) (*dto.CustomerDTO, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type customerServiceImpl struct {
	customers shared.CustomerRepository
	uow       shared.UnitOfWork
	clock     clock.Clock
	logger    *slog.Logger
}

func NewCustomerService(customers shared.CustomerRepository, uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) CustomerService {
	return &customerServiceImpl{
		customers: customers,
		uow:       uow,
		clock:     clk,
		logger:    logger,
	}
}

func (s *customerServiceImpl) List(ctx context.Context) ([]dto.CustomerDTO, error) {
	customers, err := s.customers.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list customers")
	}
	return mapper.CustomerListToDTO(customers), nil
}

func (s *customerServiceImpl) Get(ctx context.Context, id uuid.UUID) (*dto.CustomerDTO, error) {
	c, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Wrapf(err, "get customer %s", id)
	}
	out := mapper.CustomerToDTO(c)
	return &out, nil
}

func (s *customerServiceImpl) Create(ctx context.Context, in dto.CustomerDTO) (*dto.CustomerDTO, error) {
	c := mapper.CustomerFromDTO(in)
	now := s.clock.Now()
	c.ID = uuid.Nil
	c.Version = 0
	c.CreatedDate = now
	c.LastModifiedDate = now

	if err := customer.Validate(c); err != nil {
		return nil, err
	}

	saved, err := s.customers.Save(ctx, c)
	if err != nil {
		return nil, errs.Wrap(err, "create customer")
	}
	s.logger.InfoContext(ctx, "customer created", "customer_id", saved.ID)

	out := mapper.CustomerToDTO(saved)
	return &out, nil
}

func (s *customerServiceImpl) Replace(ctx context.Context, id uuid.UUID, in dto.CustomerDTO) (*dto.CustomerDTO, error) {
	return s.mutate(ctx, id, in.Version, func(existing *customer.Customer) *customer.Customer {
		next := mapper.CustomerFromDTO(in)
		next.ID = existing.ID
		next.Version = existing.Version
		next.CreatedDate = existing.CreatedDate
		return next
	})
}

func (s *customerServiceImpl) Patch(ctx context.Context, id uuid.UUID, in dto.CustomerPatch) (*dto.CustomerDTO, error) {
	return s.mutate(ctx, id, in.Version, func(existing *customer.Customer) *customer.Customer {
		next := existing.Clone()
		next.Name = patch.CoalesceTextPtr(in.Name, existing.Name)
		return next
	})
}

func (s *customerServiceImpl) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.customers.DeleteByID(ctx, id)
	if err != nil {
		return false, errs.Wrapf(err, "delete customer %s", id)
	}
	if deleted {
		s.logger.InfoContext(ctx, "customer deleted", "customer_id", id)
	}
	return deleted, nil
}

func (s *customerServiceImpl) mutate(ctx context.Context, id uuid.UUID, pinned *int32, merge func(existing *customer.Customer) *customer.Customer) (*dto.CustomerDTO, error) {
	var updated *customer.Customer
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Customers().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := checkPinnedVersion(pinned, existing.Version); err != nil {
			return err
		}

		next := merge(existing)
		next.LastModifiedDate = notBefore(s.clock.Now(), existing.CreatedDate)
		if err := customer.Validate(next); err != nil {
			return err
		}

		updated, err = tx.Customers().Update(ctx, next)
		return err
	})
	if err != nil {
		return nil, errs.Wrapf(err, "update customer %s", id)
	}
	s.logger.InfoContext(ctx, "customer updated", "customer_id", id, "version", updated.Version)

	out := mapper.CustomerToDTO(updated)
	return &out, nil
}
