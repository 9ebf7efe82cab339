package usecase

import (
	"errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal/internal/model"
	"github.com/fekuna/omnipos-terminal/internal/pkg/counter"
	"github.com/fekuna/omnipos-terminal/internal/product"
	"github.com/fekuna/omnipos-terminal/internal/product/dto"
)

var ErrNegativeStock = errors.New("stock cannot be negative")

type catalogUseCase struct {
	repo               product.Repository
	counter            *counter.Counter
	allowNegativeStock bool
	logger             *zap.Logger
}

func NewCatalogUseCase(repo product.Repository, idCounter *counter.Counter, allowNegativeStock bool, log *zap.Logger) product.UseCase {
	return &catalogUseCase{
		repo:               repo,
		counter:            idCounter,
		allowNegativeStock: allowNegativeStock,
		logger:             log,
	}
}

// Search runs on every keystroke of the main screen, so it stays a plain
// linear scan with no state between calls. Empty and non-numeric queries
// resolve to no match rather than an error.
func (uc *catalogUseCase) Search(query string) (*model.Product, error) {
	if query == "" {
		return nil, nil
	}
	id, err := strconv.Atoi(query)
	if err != nil {
		return nil, nil
	}
	return uc.repo.FindByID(id)
}

func (uc *catalogUseCase) Create(input *dto.CreateProductInput) (*model.Product, error) {
	if !uc.allowNegativeStock && input.Stock < 0 {
		return nil, ErrNegativeStock
	}

	last := uc.counter.ReadLast()
	p := &model.Product{
		ID:           last + 1,
		Barcode:      input.Barcode,
		Name:         input.Name,
		Price:        input.Price,
		Stock:        input.Stock,
		TierPrices:   input.TierPrices,
		Manufacturer: input.Manufacturer,
		Supplier:     input.Supplier,
		Department:   input.Department,
		Class:        input.Class,
		Subclass:     input.Subclass,
		TaxCategory:  input.TaxCategory,
		Descriptions: input.Descriptions,
	}

	if err := uc.repo.Append(p); err != nil {
		return nil, err
	}

	// Losing the counter would hand out duplicate ids on the next insert,
	// so unlike store reads this failure terminates the process.
	if err := uc.counter.WriteLast(p.ID); err != nil {
		uc.logger.Fatal("could not persist last product id", zap.Int("id", p.ID), zap.Error(err))
	}

	uc.logger.Info("product created", zap.Int("id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (uc *catalogUseCase) Delete(id int) (bool, error) {
	found, err := uc.repo.Delete(id)
	if err != nil {
		return false, err
	}
	if found {
		uc.logger.Info("product deleted", zap.Int("id", id))
	}
	return found, nil
}

func (uc *catalogUseCase) List() ([]model.Product, error) {
	return uc.repo.All()
}
