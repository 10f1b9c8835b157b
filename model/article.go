package model

import (
	"time"

	"gorm.io/datatypes"
)

/*

Article is a data model for a single news story

Id: primary key, store-generated sequence
CreatedAt: time when entity is created

Title: headline
Content: article body
Url: link to the original story, may be empty
Source: publisher the story was collected from
Authors: JSON array of author names
PublishedAt: time the story was published at the source

CategoryID: required foreign key, every article belongs to exactly one
category; "belongs-to" relation

*/
type Article struct {
	Id          int64 `gorm:"primaryKey"`
	CreatedAt   time.Time
	Title       string
	Content     string
	Url         string
	Source      string
	Authors     datatypes.JSON
	PublishedAt time.Time
	CategoryID  int32    `gorm:"not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Category    Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
