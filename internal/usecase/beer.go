package usecase

//go:generate mockgen -source=beer.go -destination=../../tests/mock/usecase/mock_beer.go -package=usecasemock

import (
	"context"
	"log/slog"
	"time"

	"beer-service/internal/domain/beer"
	"beer-service/internal/dto"
	"beer-service/internal/mapper"
	"beer-service/internal/pkg/clock"
	"beer-service/internal/pkg/errs"
	"beer-service/internal/pkg/patch"
	"beer-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type BeerService interface {
	List(ctx context.Context) ([]dto.BeerDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.BeerDTO, error)
	Create(ctx context.Context, in dto.BeerDTO) (*dto.BeerDTO, error)
	Replace(ctx context.Context, id uuid.UUID, in dto.BeerDTO) (*dto.BeerDTO, error)
	Patch(ctx context.Context, id uuid.UUID, in dto.BeerPatch) (*dto.BeerDTO, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type beerServiceImpl struct {
	beers  shared.BeerRepository
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewBeerService(beers shared.BeerRepository, uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) BeerService {
	return &beerServiceImpl{
		beers:  beers,
		uow:    uow,
		clock:  clk,
		logger: logger,
	}
}

func (s *beerServiceImpl) List(ctx context.Context) ([]dto.BeerDTO, error) {
	beers, err := s.beers.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list beers")
	}
	return mapper.BeerListToDTO(beers), nil
}

func (s *beerServiceImpl) Get(ctx context.Context, id uuid.UUID) (*dto.BeerDTO, error) {
	s.logger.DebugContext(ctx, "get beer", "beer_id", id)

	b, err := s.beers.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Wrapf(err, "get beer %s", id)
	}
	out := mapper.BeerToDTO(b)
	return &out, nil
}

// Create ignores any id, version or dates on the input.
func (s *beerServiceImpl) Create(ctx context.Context, in dto.BeerDTO) (*dto.BeerDTO, error) {
	b := mapper.BeerFromDTO(in)
	now := s.clock.Now()
	b.ID = uuid.Nil
	b.Version = 0
	b.CreatedDate = now
	b.UpdateDate = now

	if err := beer.Validate(b); err != nil {
		return nil, err
	}

	saved, err := s.beers.Save(ctx, b)
	if err != nil {
		return nil, errs.Wrap(err, "create beer")
	}
	s.logger.InfoContext(ctx, "beer created", "beer_id", saved.ID)

	out := mapper.BeerToDTO(saved)
	return &out, nil
}

func (s *beerServiceImpl) Replace(ctx context.Context, id uuid.UUID, in dto.BeerDTO) (*dto.BeerDTO, error) {
	return s.mutate(ctx, id, in.Version, func(existing *beer.Beer) *beer.Beer {
		next := mapper.BeerFromDTO(in)
		next.ID = existing.ID
		next.Version = existing.Version
		next.CreatedDate = existing.CreatedDate
		return next
	})
}

// Patch applies only present fields; blank strings count as absent.
func (s *beerServiceImpl) Patch(ctx context.Context, id uuid.UUID, in dto.BeerPatch) (*dto.BeerDTO, error) {
	return s.mutate(ctx, id, in.Version, func(existing *beer.Beer) *beer.Beer {
		next := existing.Clone()
		next.BeerName = patch.CoalesceText(in.BeerName, existing.BeerName)
		next.BeerStyle = patch.Coalesce(in.BeerStyle, existing.BeerStyle)
		next.UPC = patch.CoalesceText(in.UPC, existing.UPC)
		next.QuantityOnHand = patch.Coalesce(in.QuantityOnHand, existing.QuantityOnHand)
		next.Price = patch.Coalesce(in.Price, existing.Price)
		return next
	})
}

func (s *beerServiceImpl) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.beers.DeleteByID(ctx, id)
	if err != nil {
		return false, errs.Wrapf(err, "delete beer %s", id)
	}
	if deleted {
		s.logger.InfoContext(ctx, "beer deleted", "beer_id", id)
	}
	return deleted, nil
}

// mutate reads the current record, lets merge build the next state and commits it
// with a version compare-and-swap. A pinned version must match the stored one.
func (s *beerServiceImpl) mutate(ctx context.Context, id uuid.UUID, pinned *int32, merge func(existing *beer.Beer) *beer.Beer) (*dto.BeerDTO, error) {
	var updated *beer.Beer
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Beers().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := checkPinnedVersion(pinned, existing.Version); err != nil {
			return err
		}

		next := merge(existing)
		next.UpdateDate = notBefore(s.clock.Now(), existing.CreatedDate)
		if err := beer.Validate(next); err != nil {
			return err
		}

		updated, err = tx.Beers().Update(ctx, next)
		return err
	})
	if err != nil {
		return nil, errs.Wrapf(err, "update beer %s", id)
	}
	s.logger.InfoContext(ctx, "beer updated", "beer_id", id, "version", updated.Version)

	out := mapper.BeerToDTO(updated)
	return &out, nil
}

var errVersionMismatch = errs.Mark(errs.New("version does not match the stored record"), errs.ErrConflict)

func checkPinnedVersion(pinned *int32, stored int32) error {
	if pinned == nil || *pinned == stored {
		return nil
	}
	return errs.Wrapf(errVersionMismatch, "expected version %d, stored version %d", *pinned, stored)
}

func notBefore(t, floor time.Time) time.Time {
	if t.Before(floor) {
		return floor
	}
	return t
}
