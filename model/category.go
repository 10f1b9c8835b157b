package model

/*

Category is a data model for a news topic

Id: primary key, small integer from the store's sequence
Name: unique topic name, always stored upper-case (e.g. SPORTS, TECH);
incoming names are case-folded before matching
Description: human readable description of the topic

Categories are static reference data. They are seeded once and never
created or deleted through the API.

*/
type Category struct {
	Id          int32  `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex"`
	Description string
}
