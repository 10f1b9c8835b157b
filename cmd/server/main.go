package main

import (
	"flag"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/newshubio/newshub/app_setting"
	"github.com/newshubio/newshub/server"
	"github.com/newshubio/newshub/server/middlewares"
	. "github.com/newshubio/newshub/utils"
	"github.com/newshubio/newshub/utils/dotenv"
	flags "github.com/newshubio/newshub/utils/flag"
	. "github.com/newshubio/newshub/utils/log"
)

var appSettingPath = flag.String("app_setting", "newshub.yaml", "path to the app setting yaml")

func main() {
	flags.Parse()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	setting := app_setting.ParseServerAppSetting(*appSettingPath)

	db, err := GetDBConnection()
	if err != nil {
		Log.Fatal("cannot connect to DB: ", err)
	}
	DatabaseSetupAndMigration(db)

	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(middlewares.RequestId())
	router.Use(middlewares.RequestLogger())

	apiServer := server.NewApiServer(db)
	apiServer.MaxListLimit = setting.MAX_LIST_LIMIT
	apiServer.RegisterRoutes(router)

	addr := setting.SERVER_ADDR
	if addr == "" {
		addr = ":8080"
	}
	Log.Info("api server starts up on ", addr)
	router.Run(addr)
}
