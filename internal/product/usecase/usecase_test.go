package usecase

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal/internal/model"
	"github.com/fekuna/omnipos-terminal/internal/pkg/counter"
	"github.com/fekuna/omnipos-terminal/internal/product"
	"github.com/fekuna/omnipos-terminal/internal/product/dto"
	"github.com/fekuna/omnipos-terminal/internal/product/repository"
)

func newTestUseCase(t *testing.T, allowNegativeStock bool) (product.UseCase, *counter.Counter) {
	t.Helper()
	dir := t.TempDir()
	repo := repository.NewFileRepository(filepath.Join(dir, "products.dat"))
	idCounter := counter.New(filepath.Join(dir, "last_id.txt"))
	return NewCatalogUseCase(repo, idCounter, allowNegativeStock, zap.NewNop()), idCounter
}

func TestSearch_NoMatchCases(t *testing.T) {
	uc, _ := newTestUseCase(t, true)

	for _, query := range []string{"", "abc", "12x", "9999"} {
		got, err := uc.Search(query)
		require.NoError(t, err, "query %q", query)
		assert.Nil(t, got, "query %q", query)
	}
}

func TestSearch_FindsById(t *testing.T) {
	uc, _ := newTestUseCase(t, true)
	created, err := uc.Create(&dto.CreateProductInput{Name: "Coffee", Price: 9.99, Stock: 3})
	require.NoError(t, err)

	got, err := uc.Search("1002")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Coffee", got.Name)
}

func TestCreate_AssignsIdsFromCounter(t *testing.T) {
	uc, idCounter := newTestUseCase(t, true)

	// Fresh install: the counter reads as 1001, so the first product
	// gets 1002.
	first, err := uc.Create(&dto.CreateProductInput{Name: "A", Price: 1.00})
	require.NoError(t, err)
	assert.Equal(t, counter.MissingBaseline+1, first.ID)
	assert.Equal(t, first.ID, idCounter.ReadLast())

	second, err := uc.Create(&dto.CreateProductInput{Name: "B", Price: 2.00})
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)
}

func TestCreate_NegativeStockPolicy(t *testing.T) {
	strict, _ := newTestUseCase(t, false)
	_, err := strict.Create(&dto.CreateProductInput{Name: "A", Stock: -1})
	assert.ErrorIs(t, err, ErrNegativeStock)

	lenient, _ := newTestUseCase(t, true)
	created, err := lenient.Create(&dto.CreateProductInput{Name: "A", Stock: -1})
	require.NoError(t, err)
	assert.Equal(t, -1, created.Stock)
}

func TestDelete(t *testing.T) {
	uc, _ := newTestUseCase(t, true)
	created, err := uc.Create(&dto.CreateProductInput{Name: "A", Price: 1.00})
	require.NoError(t, err)

	found, err := uc.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = uc.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestList_PreservesInsertionOrder(t *testing.T) {
	uc, _ := newTestUseCase(t, true)
	var want []int
	for _, name := range []string{"A", "B", "C"} {
		created, err := uc.Create(&dto.CreateProductInput{Name: name})
		require.NoError(t, err)
		want = append(want, created.ID)
	}

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	var got []int
	for _, p := range list {
		got = append(got, p.ID)
	}
	assert.Equal(t, want, got)
	assert.IsType(t, model.Product{}, list[0])
}
