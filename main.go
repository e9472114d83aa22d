package main

import (
	"github.com/joho/godotenv"

	"github.com/yeongbeomSong/CourseEnroll/internal/middlewares"
	_ "github.com/yeongbeomSong/CourseEnroll/routers"
	"github.com/yeongbeomSong/CourseEnroll/services"

	beego "github.com/beego/beego/v2/server/web"
	cors "github.com/beego/beego/v2/server/web/filter/cors"
)

func main() {
	// Local development convenience; no-op when no .env file exists.
	_ = godotenv.Load()

	cfg := services.GetConfig()

	beego.InsertFilter("*", beego.BeforeRouter, cors.Allow(&cors.Options{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Requested-With", "X-Correlation-Id", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	middlewares.UseAuth()

	if beego.BConfig.RunMode == "dev" {
		beego.BConfig.WebConfig.DirectoryIndex = true
		beego.BConfig.WebConfig.StaticDir["/swagger"] = "swagger"
	}
	beego.Run()
}
