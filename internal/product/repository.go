package product

import (
	"github.com/fekuna/omnipos-terminal/internal/model"
)

type Repository interface {
	FindByID(id int) (*model.Product, error)
	Append(p *model.Product) error
	Delete(id int) (bool, error)
	All() ([]model.Product, error)
}
