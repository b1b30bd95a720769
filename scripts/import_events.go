// 将导出的学习事件宽表（JSON 数组）导入 learning_events 表
//
// 数据源配置为 database 时，服务从该表读取宽表构建分析快照。
// 导入后可调用 POST /api/insights/refresh?force=true 立即重建。
//
// 用法: go run scripts/import_events.go -file export.json [-truncate]

package main

import (
	"context"
	"course_insights_backend/internal/config"
	"course_insights_backend/internal/model"
	"course_insights_backend/internal/repository"
	"course_insights_backend/pkg/database"
	"flag"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

func main() {
	configFile := flag.String("config", "configs/config.yaml", "配置文件")
	file := flag.String("file", "", "宽表 JSON 文件")
	truncate := flag.Bool("truncate", false, "导入前清空已有事件")
	flag.Parse()

	if *file == "" {
		log.Fatal("缺少 -file 参数")
	}

	data, err := os.ReadFile(*configFile)
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg struct {
		Database config.DatabaseConfig `yaml:"database"`
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	events := repository.NewEventRepository(db)
	if err := events.Migrate(); err != nil {
		log.Fatalf("迁移失败: %v", err)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("无法打开宽表文件: %v", err)
	}
	defer f.Close()

	records, err := repository.DecodeRecords(f)
	if err != nil {
		log.Fatalf("解析宽表失败: %v", err)
	}

	ctx := context.Background()
	if *truncate {
		if err := events.Truncate(ctx); err != nil {
			log.Fatalf("清空事件失败: %v", err)
		}
	}

	now := time.Now()
	batch := make([]*model.LearningEvent, 0, len(records))
	for _, r := range records {
		batch = append(batch, model.NewLearningEvent(r, now))
	}
	if err := events.CreateBatch(ctx, batch); err != nil {
		log.Fatalf("导入失败: %v", err)
	}

	total, _ := events.Count(ctx)
	log.Printf("导入 %d 条，当前共 %d 条", len(batch), total)
}
