package storage

import (
	"context"
	"strings"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/logger"
)

// Storage 存储管理器，聚合所有存储依赖。
// MySQL/Redis/MinIO 任何一个初始化失败都不阻止启动：简历存储退化
// 为内存实现，文件去重与对象存储直接停用。
type Storage struct {
	// 简历主存储（MySQL或内存回退）
	Resumes ResumeStore

	// 原始文件MD5去重，可能为nil
	Redis *Redis

	// 对象存储，可能为nil
	MinIO *MinIO

	// mysqlStore 非nil时表示主存储走MySQL
	mysqlStore *MySQLResumeStore
}

// NewStorage 按配置初始化各个存储组件
func NewStorage(ctx context.Context, cfg *config.Config) *Storage {
	s := &Storage{}
	var degraded []string

	if cfg.MySQL.Host != "" {
		mysqlStore, err := NewMySQLResumeStore(&cfg.MySQL)
		if err != nil {
			logger.Warn().Err(err).Msg("初始化MySQL失败，简历存储退化为内存实现")
			degraded = append(degraded, "mysql")
		} else {
			s.mysqlStore = mysqlStore
			s.Resumes = mysqlStore
		}
	}
	if s.Resumes == nil {
		s.Resumes = NewMemoryResumeStore()
	}

	if cfg.Redis.Address != "" {
		redisClient, err := NewRedis(&cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Msg("初始化Redis失败，文件MD5去重停用")
			degraded = append(degraded, "redis")
		} else {
			s.Redis = redisClient
		}
	}

	if cfg.MinIO.Endpoint != "" {
		minioClient, err := NewMinIO(&cfg.MinIO)
		if err != nil {
			logger.Warn().Err(err).Msg("初始化MinIO失败，原始文件归档停用")
			degraded = append(degraded, "minio")
		} else {
			s.MinIO = minioClient
		}
	}

	if len(degraded) > 0 {
		logger.Warn().Str("components", strings.Join(degraded, ",")).Msg("部分存储组件降级运行")
	}
	return s
}

// UsingMySQL 返回主存储是否为MySQL
func (s *Storage) UsingMySQL() bool {
	return s.mysqlStore != nil
}

// Close 关闭所有持有连接的存储组件
func (s *Storage) Close() {
	if s.mysqlStore != nil {
		if err := s.mysqlStore.Close(); err != nil {
			logger.Warn().Err(err).Msg("关闭MySQL连接失败")
		}
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			logger.Warn().Err(err).Msg("关闭Redis连接失败")
		}
	}
}
