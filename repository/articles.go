package repository

import (
	"github.com/newshubio/newshub/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// DefaultArticleLimit bounds the article listing when the caller does not
// supply a limit.
const DefaultArticleLimit = 250

// ArticleFilter narrows the article listing. CategoryName matches the
// joined category's name, case-insensitive substring.
type ArticleFilter struct {
	Limit        int
	CategoryName string
}

// ListArticles returns at most Limit articles with their category preloaded,
// ordered by id.
func ListArticles(db *gorm.DB, filter ArticleFilter) ([]*model.Article, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultArticleLimit
	}
	query := db.Model(&model.Article{}).Preload("Category").
		Order("articles.id").Limit(limit)
	if filter.CategoryName != "" {
		query = query.
			Joins("JOIN categories ON categories.id = articles.category_id").
			Where("categories.name ILIKE ?", "%"+filter.CategoryName+"%")
	}
	var articles []*model.Article
	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// GetArticle resolves one article by id, mapping absence to ErrNotFound.
func GetArticle(db *gorm.DB, id int64) (*model.Article, error) {
	var article model.Article
	result := db.Preload("Category").First(&article, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, errors.Wrapf(ErrNotFound, "article %d", id)
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &article, nil
}

// CreateArticle stores one article under the category named by
// categoryName. The article id comes from the store's sequence. Used by the
// seed and ingest binaries.
func CreateArticle(db *gorm.DB, article *model.Article, categoryName string) error {
	category, err := findCategoryBySelector(db, categoryName)
	if err != nil {
		return err
	}
	if category == nil {
		return NewInvalidArgument("unknown category", NormalizeCategoryName(categoryName))
	}
	article.CategoryID = category.Id
	article.Category = *category
	return db.Create(article).Error
}
