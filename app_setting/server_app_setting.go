package app_setting

import (
	"io/ioutil"
	"log"

	"gopkg.in/yaml.v2"
)

// This is the application setting for the API server and the data loading
// binaries.
type ServerAppSetting struct {
	// Address the API server listens on, e.g. ":8080".
	SERVER_ADDR string `yaml:"SERVER_ADDR"`
	// Path to the YAML seed dataset consumed by the seed binary.
	SEED_DATA_PATH string `yaml:"SEED_DATA_PATH"`
	// Cap applied to any list endpoint when the caller asks for more.
	MAX_LIST_LIMIT int `yaml:"MAX_LIST_LIMIT"`
}

func ParseServerAppSetting(path string) ServerAppSetting {
	c := ServerAppSetting{}
	yamlFile, err := ioutil.ReadFile(path)
	if err != nil {
		log.Fatal("yamlFile. get err: ", err.Error())
	}
	err = yaml.Unmarshal(yamlFile, &c)
	if err != nil {
		log.Fatal("Unmarshal: ", err)
	}
	return c
}
