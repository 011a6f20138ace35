package article

import (
	"gorm.io/gorm"

	articlemodel "kb-backend/internal/model/article"
)

// Repository 文章仓储层
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByID(id uint) (*articlemodel.Article, error) {
	var art articlemodel.Article
	err := r.db.First(&art, id).Error
	return &art, err
}

func (r *Repository) Create(art *articlemodel.Article) error {
	return r.db.Create(art).Error
}

func (r *Repository) Update(art *articlemodel.Article) error {
	return r.db.Save(art).Error
}

func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&articlemodel.Article{}, id).Error
}

// IncrementViewCount 增加阅读量
func (r *Repository) IncrementViewCount(id uint) error {
	return r.db.Model(&articlemodel.Article{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1")).Error
}

// List 文章列表，支持按分类过滤与标题/内容模糊搜索
func (r *Repository) List(categoryID uint, search string, offset, limit int) ([]articlemodel.Article, int64, error) {
	var articles []articlemodel.Article
	var total int64

	query := r.db.Model(&articlemodel.Article{})
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	// 获取总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("updated_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&articles).Error
	return articles, total, err
}

// CountByCategory 分类下的文章数（删除分类前校验用）
func (r *Repository) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&articlemodel.Article{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
