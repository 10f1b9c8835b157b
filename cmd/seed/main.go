package main

import (
	"encoding/json"
	"flag"
	"io/ioutil"

	"github.com/araddon/dateparse"
	"github.com/newshubio/newshub/app_setting"
	"github.com/newshubio/newshub/model"
	"github.com/newshubio/newshub/repository"
	. "github.com/newshubio/newshub/utils"
	"github.com/newshubio/newshub/utils/dotenv"
	flags "github.com/newshubio/newshub/utils/flag"
	. "github.com/newshubio/newshub/utils/log"
	"gopkg.in/yaml.v2"
	"gorm.io/datatypes"
)

var appSettingPath = flag.String("app_setting", "newshub.yaml", "path to the app setting yaml")

type seedCategory struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type seedArticle struct {
	Title    string   `yaml:"title"`
	Content  string   `yaml:"content"`
	Url      string   `yaml:"url"`
	Source   string   `yaml:"source"`
	Authors  []string `yaml:"authors"`
	Date     string   `yaml:"date"`
	Category string   `yaml:"category"`
}

type seedData struct {
	Categories []seedCategory `yaml:"categories"`
	Articles   []seedArticle  `yaml:"articles"`
}

// seed loads the reference categories and sample articles from the YAML
// dataset into the store. Re-running is safe: categories upsert, articles
// already present (same title and source) are skipped.
func main() {
	flags.Parse()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	setting := app_setting.ParseServerAppSetting(*appSettingPath)

	raw, err := ioutil.ReadFile(setting.SEED_DATA_PATH)
	if err != nil {
		Log.Fatal("cannot read seed data: ", err)
	}
	var data seedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		Log.Fatal("cannot parse seed data: ", err)
	}

	db, err := GetDBConnection()
	if err != nil {
		Log.Fatal("cannot connect to DB: ", err)
	}
	DatabaseSetupAndMigration(db)

	categories := make([]model.Category, 0, len(data.Categories))
	for _, c := range data.Categories {
		categories = append(categories, model.Category{
			Name:        c.Name,
			Description: c.Description,
		})
	}
	if err := repository.UpsertCategories(db, categories); err != nil {
		Log.Fatal("cannot seed categories: ", err)
	}
	Log.Info("seeded ", len(categories), " categories")

	created := 0
	for _, a := range data.Articles {
		var existing int64
		if err := db.Model(&model.Article{}).
			Where("title = ? AND source = ?", a.Title, a.Source).
			Count(&existing).Error; err != nil {
			Log.Fatal("cannot check for existing article: ", err)
		}
		if existing > 0 {
			continue
		}

		article := model.Article{
			Title:   a.Title,
			Content: a.Content,
			Url:     a.Url,
			Source:  a.Source,
		}
		if len(a.Authors) > 0 {
			authors, _ := json.Marshal(a.Authors)
			article.Authors = datatypes.JSON(authors)
		}
		if a.Date != "" {
			publishedAt, err := dateparse.ParseAny(a.Date)
			if err != nil {
				Log.Fatal("cannot parse article date ", a.Date, ": ", err)
			}
			article.PublishedAt = publishedAt
		}
		if err := repository.CreateArticle(db, &article, a.Category); err != nil {
			Log.Fatal("cannot seed article ", a.Title, ": ", err)
		}
		created++
	}
	Log.Info("seeded ", created, " articles")
}
