package article

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kb-backend/internal/attachment"
	"kb-backend/internal/cleanup"
	"kb-backend/internal/dto"
	articlemodel "kb-backend/internal/model/article"
)

var ErrArticleNotFound = errors.New("文章不存在")

// Service 文章业务层
// 更新路径只做附件数组的合并计算，不做物理文件删除；
// 物理删除只发生在删除文章和显式清理这两条路径上
type Service struct {
	repo    *Repository
	cleanup *cleanup.Service
}

func NewService(repo *Repository, cleanupSvc *cleanup.Service) *Service {
	return &Service{repo: repo, cleanup: cleanupSvc}
}

// Create 创建文章，服务端为每个附件分配 ID
func (s *Service) Create(req dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	files := assignIDs(dto.ToAttachments(req.Files))
	images := assignIDs(dto.ToAttachments(req.Images))

	art := &articlemodel.Article{
		Title:           req.Title,
		Content:         req.Content,
		CategoryID:      req.CategoryID,
		Files:           attachment.Marshal(files),
		Images:          attachment.Marshal(images),
		EnableSlideshow: req.EnableSlideshow,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := s.repo.Create(art); err != nil {
		return nil, err
	}
	return toResponse(art), nil
}

// Get 文章详情，浏览计数+1
func (s *Service) Get(id uint, countView bool) (*dto.ArticleResponse, error) {
	art, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	if countView {
		// 计数失败不影响读取
		_ = s.repo.IncrementViewCount(id)
	}
	return toResponse(art), nil
}

// List 分页列表
func (s *Service) List(categoryID uint, search string, page, pageSize int) ([]dto.ArticleListItem, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	articles, total, err := s.repo.List(categoryID, search, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.ArticleListItem, 0, len(articles))
	for i := range articles {
		art := &articles[i]
		items = append(items, dto.ArticleListItem{
			ID:              art.ID,
			Title:           art.Title,
			CategoryID:      art.CategoryID,
			EnableSlideshow: art.EnableSlideshow,
			ViewCount:       art.ViewCount,
			FileCount:       len(attachment.Normalize(art.Files)),
			ImageCount:      len(attachment.Normalize(art.Images)),
			CreatedAt:       art.CreatedAt.Format(time.RFC3339),
			UpdatedAt:       art.UpdatedAt.Format(time.RFC3339),
		})
	}
	return items, total, nil
}

// Update 更新文章
//
// files/images 的新数组 = (现有数组 - 待删ID) ++ (新附件，分配ID)。
// 整个数组在一次请求内整体读-改-写；两个管理员并发编辑同一篇文章
// 是后写覆盖（已知限制，不做乐观锁）。
// 这里不删物理文件：内容里被移除引用的上传文件留给孤儿扫描回收
func (s *Service) Update(id uint, req dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	art, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		art.Title = *req.Title
	}
	if req.Content != nil {
		art.Content = *req.Content
	}
	if req.CategoryID != nil {
		art.CategoryID = *req.CategoryID
	}
	if req.EnableSlideshow != nil {
		art.EnableSlideshow = *req.EnableSlideshow
	}

	currentFiles := attachment.Normalize(art.Files)
	currentImages := attachment.Normalize(art.Images)

	newFiles := attachment.Reconcile(currentFiles, req.FilesToRemove, dto.ToAttachments(req.NewFiles))
	newImages := attachment.Reconcile(currentImages, req.ImagesToRemove, dto.ToAttachments(req.NewImages))

	// isNew 只在本次操作内有效，入库前清掉
	art.Files = attachment.Marshal(attachment.ClearNewFlags(newFiles))
	art.Images = attachment.Marshal(attachment.ClearNewFlags(newImages))
	art.UpdatedAt = time.Now()

	if err := s.repo.Update(art); err != nil {
		return nil, err
	}
	return toResponse(art), nil
}

// Delete 删除文章：先清理引用的上传文件，再删数据库行
// 清理是尽力而为的，个别文件删不掉不会阻止文章删除
func (s *Service) Delete(id uint) (*cleanup.CleanupReport, error) {
	art, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	report := s.cleanup.CleanupArticleFiles(art)

	if err := s.repo.Delete(id); err != nil {
		return report, err
	}
	return report, nil
}

func assignIDs(list []attachment.Attachment) []attachment.Attachment {
	for i := range list {
		if list[i].ID == "" {
			list[i].ID = uuid.NewString()
		}
	}
	return list
}

func toResponse(art *articlemodel.Article) *dto.ArticleResponse {
	return &dto.ArticleResponse{
		ID:              art.ID,
		Title:           art.Title,
		Content:         art.Content,
		CategoryID:      art.CategoryID,
		Files:           attachment.Normalize(art.Files),
		Images:          attachment.Normalize(art.Images),
		EnableSlideshow: art.EnableSlideshow,
		ViewCount:       art.ViewCount,
		CreatedAt:       art.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       art.UpdatedAt.Format(time.RFC3339),
	}
}
