package repository

import "github.com/jhoicas/nuvemshop-descriptions/internal/domain/entity"

// DescriptionRepository define el puerto de persistencia para CategoryDescription (DIP).
type DescriptionRepository interface {
	Create(desc *entity.CategoryDescription) error
	GetByID(id string) (*entity.CategoryDescription, error)
	GetByCategoryID(categoryID string) (*entity.CategoryDescription, error)
	Update(desc *entity.CategoryDescription) error
	List(limit, offset int) ([]*entity.CategoryDescription, error)
	ListAll() ([]*entity.CategoryDescription, error)
	Count() (int, error)
	Delete(id string) error
}
