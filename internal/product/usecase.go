package product

import (
	"github.com/fekuna/omnipos-terminal/internal/model"
	"github.com/fekuna/omnipos-terminal/internal/product/dto"
)

type UseCase interface {
	// Search resolves a query string to at most one product. Empty or
	// non-numeric queries never match.
	Search(query string) (*model.Product, error)
	Create(input *dto.CreateProductInput) (*model.Product, error)
	Delete(id int) (bool, error)
	List() ([]model.Product, error)
}
