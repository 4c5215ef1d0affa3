//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"beer-service/internal/domain/beer"
	"beer-service/internal/dto"
	"beer-service/internal/infra"
	"beer-service/internal/infra/memstore"
	"beer-service/internal/pkg/clock"
	"beer-service/internal/pkg/errs"
	"beer-service/internal/pkg/ptr"
	"beer-service/internal/usecase"
	"beer-service/internal/usecase/shared"
	"beer-service/tests/common/builder"
	sharedmock "beer-service/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var startTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type beerFixture struct {
	store *memstore.Store
	clock *clock.MockClock
	svc   usecase.BeerService
}

func newBeerFixture() *beerFixture {
	store := memstore.New()
	clk := clock.NewMockClock(startTime)
	return &beerFixture{
		store: store,
		clock: clk,
		svc:   usecase.NewBeerService(store.Beers(), memstore.NewUnitOfWork(store), clk, discardLogger()),
	}
}

func (f *beerFixture) create(t *testing.T, b *builder.BeerBuilder) *dto.BeerDTO {
	t.Helper()
	out, err := f.svc.Create(context.Background(), b.BuildRequestDTO())
	require.NoError(t, err)
	return out
}

// =============================================================================
// Create
// =============================================================================

func TestBeerService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: assigns id, version 1 and equal dates", func(t *testing.T) {
		f := newBeerFixture()

		out := f.create(t, builder.NewBeerBuilder())

		require.NotNil(t, out.ID)
		assert.NotEqual(t, uuid.Nil, *out.ID)
		assert.Equal(t, int32(1), *out.Version)
		assert.Equal(t, startTime, *out.CreatedDate)
		assert.Equal(t, *out.CreatedDate, *out.UpdateDate)
		assert.Equal(t, "Galaxy Cat", out.BeerName)
		assert.True(t, decimal.RequireFromString("12.99").Equal(*out.Price))
	})

	t.Run("success: client supplied id, version and dates are ignored", func(t *testing.T) {
		f := newBeerFixture()
		in := builder.NewBeerBuilder().BuildRequestDTO()
		in.ID = ptr.To(uuid.New())
		in.Version = ptr.To(int32(42))
		in.CreatedDate = ptr.To(startTime.Add(-24 * time.Hour))

		out, err := f.svc.Create(ctx, in)

		require.NoError(t, err)
		assert.NotEqual(t, *in.ID, *out.ID)
		assert.Equal(t, int32(1), *out.Version)
		assert.Equal(t, startTime, *out.CreatedDate)
	})

	t.Run("error: invalid beer is not stored", func(t *testing.T) {
		f := newBeerFixture()
		in := builder.NewBeerBuilder().WithName(" ").WithQuantity(-1).BuildRequestDTO()

		_, err := f.svc.Create(ctx, in)

		var verr *errs.ValidationError
		require.True(t, errs.As(err, &verr))
		assert.ElementsMatch(t, []string{"beerName", "quantityOnHand"}, violationFields(verr))
		n, _ := f.store.Beers().Count(ctx)
		assert.Zero(t, n)
	})
}

// =============================================================================
// Read / Delete
// =============================================================================

func TestBeerService_ListAndGet(t *testing.T) {
	ctx := context.Background()
	f := newBeerFixture()

	galaxy := f.create(t, builder.NewBeerBuilder())
	crank := f.create(t, builder.NewBeerBuilder().AsCrank())

	list, err := f.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, *galaxy.ID, *list[0].ID)
	assert.Equal(t, *crank.ID, *list[1].ID)

	got, err := f.svc.Get(ctx, *crank.ID)
	require.NoError(t, err)
	assert.Equal(t, "Crank", got.BeerName)

	_, err = f.svc.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestBeerService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newBeerFixture()
	created := f.create(t, builder.NewBeerBuilder())

	deleted, err := f.svc.Delete(ctx, *created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = f.svc.Delete(ctx, *created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = f.svc.Get(ctx, *created.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

// =============================================================================
// Replace / Patch
// =============================================================================

func TestBeerService_Replace(t *testing.T) {
	ctx := context.Background()

	t.Run("success: keeps id and created date, bumps version", func(t *testing.T) {
		f := newBeerFixture()
		created := f.create(t, builder.NewBeerBuilder())
		f.clock.Add(time.Minute)

		in := builder.NewBeerBuilder().AsSunshineCity().BuildRequestDTO()
		in.CreatedDate = ptr.To(startTime.Add(-time.Hour))
		out, err := f.svc.Replace(ctx, *created.ID, in)

		require.NoError(t, err)
		assert.Equal(t, *created.ID, *out.ID)
		assert.Equal(t, int32(2), *out.Version)
		assert.Equal(t, startTime, *out.CreatedDate)
		assert.Equal(t, startTime.Add(time.Minute), *out.UpdateDate)
		assert.Equal(t, "Sunshine City", out.BeerName)
		assert.Equal(t, beer.StyleIPA, out.BeerStyle)
	})

	t.Run("error: unknown id", func(t *testing.T) {
		f := newBeerFixture()

		_, err := f.svc.Replace(ctx, uuid.New(), builder.NewBeerBuilder().BuildRequestDTO())

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("error: pinned version is stale", func(t *testing.T) {
		f := newBeerFixture()
		created := f.create(t, builder.NewBeerBuilder())
		_, err := f.svc.Replace(ctx, *created.ID, builder.NewBeerBuilder().AsCrank().BuildRequestDTO())
		require.NoError(t, err)

		in := builder.NewBeerBuilder().BuildRequestDTO()
		in.Version = ptr.To(int32(1))
		_, err = f.svc.Replace(ctx, *created.ID, in)

		assert.True(t, errs.Is(err, errs.ErrConflict), "got %v", err)
		got, _ := f.svc.Get(ctx, *created.ID)
		assert.Equal(t, "Crank", got.BeerName)
	})

	t.Run("error: invalid replacement leaves the record untouched", func(t *testing.T) {
		f := newBeerFixture()
		created := f.create(t, builder.NewBeerBuilder())

		_, err := f.svc.Replace(ctx, *created.ID, builder.NewBeerBuilder().WithPrice("-0.01").BuildRequestDTO())

		assert.ErrorIs(t, err, errs.ErrValidation)
		got, _ := f.svc.Get(ctx, *created.ID)
		assert.Equal(t, int32(1), *got.Version)
	})
}

func TestBeerService_Patch(t *testing.T) {
	ctx := context.Background()

	t.Run("success: only present fields change", func(t *testing.T) {
		f := newBeerFixture()
		created := f.create(t, builder.NewBeerBuilder())
		f.clock.Add(time.Second)

		out, err := f.svc.Patch(ctx, *created.ID, dto.BeerPatch{BeerName: ptr.To("Galaxy Dog")})

		require.NoError(t, err)
		assert.Equal(t, "Galaxy Dog", out.BeerName)
		assert.Equal(t, created.BeerStyle, out.BeerStyle)
		assert.Equal(t, created.UPC, out.UPC)
		assert.Equal(t, created.QuantityOnHand, out.QuantityOnHand)
		assert.True(t, created.Price.Equal(*out.Price))
		assert.Equal(t, int32(2), *out.Version)
		assert.True(t, out.UpdateDate.After(*created.UpdateDate))
	})

	t.Run("success: blank strings are treated as absent", func(t *testing.T) {
		f := newBeerFixture()
		created := f.create(t, builder.NewBeerBuilder())

		out, err := f.svc.Patch(ctx, *created.ID, dto.BeerPatch{
			BeerName:       ptr.To(""),
			UPC:            ptr.To("  "),
			QuantityOnHand: ptr.To(int32(0)),
		})

		require.NoError(t, err)
		assert.Equal(t, "Galaxy Cat", out.BeerName)
		assert.Equal(t, "12356", out.UPC)
		assert.Equal(t, int32(0), out.QuantityOnHand)
	})

	t.Run("success: empty patch still bumps version", func(t *testing.T) {
		f := newBeerFixture()
		created := f.create(t, builder.NewBeerBuilder())

		out, err := f.svc.Patch(ctx, *created.ID, dto.BeerPatch{})

		require.NoError(t, err)
		assert.Equal(t, int32(2), *out.Version)
	})

	t.Run("error: unknown id", func(t *testing.T) {
		f := newBeerFixture()

		_, err := f.svc.Patch(ctx, uuid.New(), dto.BeerPatch{BeerName: ptr.To("x")})

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

// =============================================================================
// Concurrency
// =============================================================================

// barrierUoW holds every caller after its read until all parties have read,
// forcing the writes to race on the same version.
type barrierUoW struct {
	inner shared.UnitOfWork
	wg    *sync.WaitGroup
}

func (u barrierUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.inner.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, barrierTx{Tx: tx, wg: u.wg})
	})
}

type barrierTx struct {
	shared.Tx
	wg *sync.WaitGroup
}

func (t barrierTx) Beers() shared.BeerRepository {
	return barrierBeers{BeerRepository: t.Tx.Beers(), wg: t.wg}
}

type barrierBeers struct {
	shared.BeerRepository
	wg *sync.WaitGroup
}

func (r barrierBeers) FindByID(ctx context.Context, id uuid.UUID) (*beer.Beer, error) {
	b, err := r.BeerRepository.FindByID(ctx, id)
	r.wg.Done()
	r.wg.Wait()
	return b, err
}

func TestBeerService_ConcurrentReplace(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	clk := clock.NewMockClock(startTime)

	seed := usecase.NewBeerService(store.Beers(), memstore.NewUnitOfWork(store), clk, discardLogger())
	created, err := seed.Create(ctx, builder.NewBeerBuilder().BuildRequestDTO())
	require.NoError(t, err)

	const writers = 2
	wg := &sync.WaitGroup{}
	wg.Add(writers)
	svc := usecase.NewBeerService(store.Beers(), barrierUoW{inner: memstore.NewUnitOfWork(store), wg: wg}, clk, discardLogger())

	names := []string{"Writer A", "Writer B"}
	results := make([]error, writers)
	var done sync.WaitGroup
	for i := range writers {
		done.Add(1)
		go func() {
			defer done.Done()
			_, results[i] = svc.Replace(ctx, *created.ID, builder.NewBeerBuilder().WithName(names[i]).BuildRequestDTO())
		}()
	}
	done.Wait()

	var wins, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errs.Is(err, errs.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, conflicts)

	got, err := seed.Get(ctx, *created.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(2), *got.Version)
	assert.Contains(t, names, got.BeerName)
}

// =============================================================================
// Repository failures
// =============================================================================

func TestBeerService_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dbErr := infra.WrapRepoErr("failed to list beers", errors.New("connection reset"))
	repo := sharedmock.NewMockBeerRepository(ctrl)
	repo.EXPECT().FindAll(gomock.Any()).Return(nil, dbErr)
	repo.EXPECT().DeleteByID(gomock.Any(), gomock.Any()).Return(false, dbErr)

	uow := sharedmock.NewMockUnitOfWork(ctrl)
	svc := usecase.NewBeerService(repo, uow, clock.NewMockClock(startTime), discardLogger())

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))

	_, err = svc.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
}

func TestBeerService_UpdateRunsInUnitOfWork(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := builder.NewBeerBuilder().BuildStored()
	repo := sharedmock.NewMockBeerRepository(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), stored.ID).Return(stored, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *beer.Beer) (*beer.Beer, error) {
		assert.Equal(t, stored.Version, b.Version, "update must carry the version that was read")
		next := b.Clone()
		next.Version++
		return next, nil
	})

	tx := sharedmock.NewMockTx(ctrl)
	tx.EXPECT().Beers().Return(repo).AnyTimes()

	uow := sharedmock.NewMockUnitOfWork(ctrl)
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		})

	clk := clock.NewMockClock(startTime.Add(time.Hour))
	svc := usecase.NewBeerService(sharedmock.NewMockBeerRepository(ctrl), uow, clk, discardLogger())

	out, err := svc.Patch(ctx, stored.ID, dto.BeerPatch{Price: ptr.To(decimal.RequireFromString("9.50"))})

	require.NoError(t, err)
	assert.Equal(t, stored.Version+1, *out.Version)
	assert.Equal(t, "9.5", out.Price.String())
	assert.Equal(t, startTime.Add(time.Hour), *out.UpdateDate)
}

func violationFields(v *errs.ValidationError) []string {
	out := make([]string, 0, len(v.Violations))
	for _, f := range v.Violations {
		out = append(out, f.Field)
	}
	return out
}
