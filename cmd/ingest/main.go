package main

import (
	"encoding/json"
	"flag"

	"github.com/araddon/dateparse"
	"github.com/mmcdole/gofeed"
	"github.com/newshubio/newshub/model"
	"github.com/newshubio/newshub/repository"
	. "github.com/newshubio/newshub/utils"
	"github.com/newshubio/newshub/utils/dotenv"
	flags "github.com/newshubio/newshub/utils/flag"
	. "github.com/newshubio/newshub/utils/log"
	"gorm.io/datatypes"
)

var (
	feedUrl  = flag.String("feed_url", "", "RSS/Atom feed to ingest")
	category = flag.String("category", "", "category name the ingested articles belong to")
)

// ingest pulls one RSS/Atom feed and stores its items as articles under the
// given category. Items whose url is already stored are skipped, so the
// ingester can run on a schedule.
func main() {
	flags.Parse()

	if *feedUrl == "" || *category == "" {
		Log.Fatal("both -feed_url and -category are required")
	}

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	db, err := GetDBConnection()
	if err != nil {
		Log.Fatal("cannot connect to DB: ", err)
	}
	DatabaseSetupAndMigration(db)

	parsed, err := gofeed.NewParser().ParseURL(*feedUrl)
	if err != nil {
		Log.Fatal("cannot fetch feed ", *feedUrl, ": ", err)
	}

	created := 0
	for _, item := range parsed.Items {
		if item.Link != "" {
			var existing int64
			if err := db.Model(&model.Article{}).Where("url = ?", item.Link).
				Count(&existing).Error; err != nil {
				Log.Fatal("cannot check for existing article: ", err)
			}
			if existing > 0 {
				continue
			}
		}

		article := model.Article{
			Title:   item.Title,
			Content: item.Description,
			Url:     item.Link,
			Source:  parsed.Title,
		}
		if item.Content != "" {
			article.Content = item.Content
		}
		if item.Author != nil && item.Author.Name != "" {
			authors, _ := json.Marshal([]string{item.Author.Name})
			article.Authors = datatypes.JSON(authors)
		}
		if item.PublishedParsed != nil {
			article.PublishedAt = *item.PublishedParsed
		} else if item.Published != "" {
			if publishedAt, err := dateparse.ParseAny(item.Published); err == nil {
				article.PublishedAt = publishedAt
			}
		}

		if err := repository.CreateArticle(db, &article, *category); err != nil {
			Log.Fatal("cannot store article ", item.Title, ": ", err)
		}
		created++
	}
	Log.Info("ingested ", created, " articles from ", *feedUrl)
}
