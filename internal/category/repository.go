package category

import (
	"gorm.io/gorm"

	categorymodel "kb-backend/internal/model/category"
)

// Repository 分类仓储层
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List() ([]categorymodel.Category, error) {
	var categories []categorymodel.Category
	err := r.db.Order("sort_order ASC, id ASC").Find(&categories).Error
	return categories, err
}

func (r *Repository) GetByID(id uint) (*categorymodel.Category, error) {
	var cat categorymodel.Category
	err := r.db.First(&cat, id).Error
	return &cat, err
}

func (r *Repository) Create(cat *categorymodel.Category) error {
	return r.db.Create(cat).Error
}

func (r *Repository) Update(cat *categorymodel.Category) error {
	return r.db.Save(cat).Error
}

func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&categorymodel.Category{}, id).Error
}
