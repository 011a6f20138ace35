package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kb-backend/internal/article"
	"kb-backend/internal/dto"
	"kb-backend/internal/testutils"
)

func newServiceWithDB(t *testing.T) *Service {
	t.Helper()
	db := testutils.SetupTestDB(t)
	return NewService(NewRepository(db), article.NewRepository(db))
}

func TestService_CreateAndList(t *testing.T) {
	svc := newServiceWithDB(t)

	cat, err := svc.Create(dto.CategoryRequest{Name: "使用手册", SortOrder: 1})
	require.NoError(t, err)
	assert.NotZero(t, cat.ID)

	list, err := svc.List()
	require.NoError(t, err)

	found := false
	for _, c := range list {
		if c.ID == cat.ID {
			found = true
		}
	}
	assert.True(t, found, "created category should appear in list")
}

// 分类下还有文章时拒绝删除
func TestService_DeleteRefusesWhenInUse(t *testing.T) {
	svc := newServiceWithDB(t)
	db := svc.repo.db

	cat := testutils.CreateTestCategory(db)
	testutils.CreateTestArticle(db, cat.ID)

	err := svc.Delete(cat.ID)
	assert.ErrorIs(t, err, ErrCategoryInUse)
}

func TestService_DeleteNotFound(t *testing.T) {
	svc := newServiceWithDB(t)

	err := svc.Delete(999999999)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
