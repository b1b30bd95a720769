// @title Course Insights API
// @version 1.0
// @description 课程学习数据分析服务：课程层级汇总、学生诊断、知识点难度与活动效果排行。
// @termsOfService http://swagger.io/terms/

// @contact.name API支持
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"course_insights_backend/internal/app"
	"course_insights_backend/internal/config"
	"flag"
	"log"
	"time"
)

func main() {
	// 命令行参数
	configPath := flag.String("config", "configs", "配置文件目录")
	check := flag.Bool("check", false, "构建一次快照并输出摘要，完成后退出")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.CheckOnly = *check
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg, *configPath)

	// 迁移完成后直接退出
	if cfg.MigrateOnly {
		application.Close(context.Background())
		log.Println("数据库迁移完成，退出程序")
		return
	}

	if cfg.CheckOnly {
		ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.Source.Timeout()+10*time.Second)
		defer cancel()
		err := application.Check(ctx)
		application.Close(ctx)
		if err != nil {
			log.Fatalf("Check failed: %v", err)
		}
		return
	}

	application.Run()
}
