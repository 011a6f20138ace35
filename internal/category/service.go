package category

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"kb-backend/internal/article"
	"kb-backend/internal/dto"
	categorymodel "kb-backend/internal/model/category"
)

var (
	ErrCategoryNotFound = errors.New("分类不存在")
	// 分类下还有文章时不允许删除
	ErrCategoryInUse = errors.New("分类下仍有文章，不能删除")
)

type Service struct {
	repo        *Repository
	articleRepo *article.Repository
}

func NewService(repo *Repository, articleRepo *article.Repository) *Service {
	return &Service{repo: repo, articleRepo: articleRepo}
}

func (s *Service) List() ([]categorymodel.Category, error) {
	return s.repo.List()
}

func (s *Service) Create(req dto.CategoryRequest) (*categorymodel.Category, error) {
	cat := &categorymodel.Category{
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.repo.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *Service) Update(id uint, req dto.CategoryRequest) (*categorymodel.Category, error) {
	cat, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	cat.Name = req.Name
	cat.Description = req.Description
	cat.SortOrder = req.SortOrder
	cat.UpdatedAt = time.Now()

	if err := s.repo.Update(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *Service) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	count, err := s.articleRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	return s.repo.Delete(id)
}
