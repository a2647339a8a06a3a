package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid/v5"

	"resume-parser-go/internal/types"
)

// ResumeStore 简历持久化接口。MySQL 为主存储，不可用时退化为
// 进程内存储，两者行为一致。
type ResumeStore interface {
	// InsertOne 插入一条记录，ID为空时生成UUIDv7，返回最终ID
	InsertOne(ctx context.Context, record *types.ResumeRecord) (string, error)

	// FindAll 返回全部记录，按创建时间升序
	FindAll(ctx context.Context) ([]*types.ResumeRecord, error)

	// FindByID 按ID查找，不存在时返回 ErrResumeNotFound
	FindByID(ctx context.Context, id string) (*types.ResumeRecord, error)

	// DeleteByIDs 批量删除，返回实际删除数量
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
}

// ErrResumeNotFound 按ID查找不到记录
var ErrResumeNotFound = fmt.Errorf("简历记录不存在")

// MemoryResumeStore 进程内简历存储，保持插入顺序
type MemoryResumeStore struct {
	mu      sync.RWMutex
	records []*types.ResumeRecord
}

// NewMemoryResumeStore 创建内存存储
func NewMemoryResumeStore() *MemoryResumeStore {
	return &MemoryResumeStore{records: []*types.ResumeRecord{}}
}

// InsertOne 实现 ResumeStore 接口
func (s *MemoryResumeStore) InsertOne(ctx context.Context, record *types.ResumeRecord) (string, error) {
	if record.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("生成记录ID失败: %w", err)
		}
		record.ID = id.String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return record.ID, nil
}

// FindAll 实现 ResumeStore 接口
func (s *MemoryResumeStore) FindAll(ctx context.Context) ([]*types.ResumeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*types.ResumeRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// FindByID 实现 ResumeStore 接口
func (s *MemoryResumeStore) FindByID(ctx context.Context, id string) (*types.ResumeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, ErrResumeNotFound
}

// DeleteByIDs 实现 ResumeStore 接口
func (s *MemoryResumeStore) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0]
	var deleted int64
	for _, r := range s.records {
		if _, ok := idSet[r.ID]; ok {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	return deleted, nil
}
