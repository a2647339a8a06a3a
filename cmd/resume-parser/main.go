package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"resume-parser-go/internal/api/handler"
	"resume-parser-go/internal/api/router"
	"resume-parser-go/internal/config"
	applogger "resume-parser-go/internal/logger"
	"resume-parser-go/internal/parser"
	"resume-parser-go/internal/processor"
	"resume-parser-go/internal/storage"
)

func main() {
	// .env 缺失不是错误，环境变量覆盖在配置加载时处理
	_ = godotenv.Load()

	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		applogger.Fatal().Err(err).Msg("加载配置失败")
	}

	initLogger(cfg)
	glog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storageManager := storage.NewStorage(ctx, cfg)
	defer storageManager.Close()
	glog.Info("存储服务初始化成功")

	// 解析策略：模型可用时AI优先，规则解析兜底
	parsers := []processor.ResumeParser{}
	if cfg.LLM.Enabled && cfg.LLM.APIKey != "" {
		llmModel, err := parser.NewOpenAIChatModel(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.APIURL,
			time.Duration(cfg.LLM.TimeoutSeconds)*time.Second)
		if err != nil {
			glog.Warnf("初始化LLM模型失败，仅使用规则解析: %v", err)
		} else {
			parsers = append(parsers, parser.NewLLMParser(llmModel))
			glog.Info("LLM解析策略已启用")
		}
	}
	parsers = append(parsers, parser.NewRuleBasedParser())

	extractor := parser.NewTextExtractor(ctx)
	enricher := parser.NewProfileEnricher(cfg.Enrichment.GitHubAPIBase,
		time.Duration(cfg.Enrichment.TimeoutSeconds)*time.Second)

	resumeProcessor := processor.NewResumeProcessor(storageManager,
		processor.WithParsers(parsers...),
		processor.WithTextExtractor(extractor),
		processor.WithEnricher(enricher),
		processor.WithEnrichment(cfg.Enrichment.Enabled),
		processor.WithMaxUploadSizeMB(cfg.Upload.MaxSizeMB),
	)
	glog.Info("简历处理流水线初始化成功")

	resumeHandler := handler.NewResumeHandler(cfg, storageManager, resumeProcessor)

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		ctx.Next(c)
		glog.CtxInfof(c, "%s %s -> %d", string(ctx.Method()), string(ctx.Path()), ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, resumeHandler)
	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)

	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Errorf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

// initLogger 初始化zerolog全局日志，并让Hertz的hlog走同一个输出
func initLogger(cfg *config.Config) {
	applogger.Init(applogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})

	glog.SetLogger(hertzadapter.From(applogger.Logger))
}
