package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/constants"
	"resume-parser-go/internal/logger"
)

// ErrNotFound Redis中不存在对应的键
var ErrNotFound = redis.Nil

// Redis 键值存储适配器，承载原始文件MD5去重集合
type Redis struct {
	Client *redis.Client
	config *config.RedisConfig
}

// NewRedis 创建Redis客户端并注册追踪钩子
func NewRedis(cfg *config.RedisConfig) (*Redis, error) {
	if cfg == nil {
		return nil, fmt.Errorf("Redis配置不能为空")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  time.Duration(cfg.DialTimeoutSeconds) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("连接Redis失败: %w", err)
	}

	if err := redisotel.InstrumentTracing(client); err != nil {
		logger.Warn().Err(err).Msg("注册Redis追踪钩子失败")
	}

	logger.Info().Str("address", cfg.Address).Msg("成功连接Redis")
	return &Redis{Client: client, config: cfg}, nil
}

// md5ExpireDuration 返回MD5记录的过期时长
func (r *Redis) md5ExpireDuration() time.Duration {
	days := r.config.MD5RecordExpireDays
	if days <= 0 {
		days = constants.DefaultMD5RecordExpireDays
	}
	return time.Duration(days) * 24 * time.Hour
}

// CheckRawFileMD5Exists 判断原始文件MD5是否已经上传过
func (r *Redis) CheckRawFileMD5Exists(ctx context.Context, md5Hex string) (bool, error) {
	return r.Client.SIsMember(ctx, constants.RawFileMD5SetKey, md5Hex).Result()
}

// RecordRawFileMD5 将原始文件MD5加入去重集合，过期时间只在
// 集合首次创建时设置
func (r *Redis) RecordRawFileMD5(ctx context.Context, md5Hex string) error {
	pipe := r.Client.Pipeline()
	pipe.SAdd(ctx, constants.RawFileMD5SetKey, md5Hex)
	pipe.ExpireNX(ctx, constants.RawFileMD5SetKey, r.md5ExpireDuration())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("记录文件MD5失败: %w", err)
	}
	return nil
}

// Close 关闭Redis连接
func (r *Redis) Close() error {
	return r.Client.Close()
}
