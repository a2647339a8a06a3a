package processor

import (
	"context"

	"resume-parser-go/internal/types"
)

// ResumeParser 简历解析策略接口。流水线按优先级依次尝试，
// 前一个策略失败时回退到下一个。
type ResumeParser interface {
	// Name 返回策略名称，用于日志
	Name() string

	// Parse 将简历纯文本解析为结构化记录
	Parse(ctx context.Context, text string) (*types.ResumeRecord, error)
}

// TextExtractor 文件字节到纯文本的提取接口
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, filename string) (string, error)
}

// Enricher 外部档案数据补全接口
type Enricher interface {
	FetchProfiles(ctx context.Context, linkedinURL, githubURL string) (linkedin map[string]any, github map[string]any)
}

// ObjectStore 原始文件与解析文本的归档接口，返回对象路径
type ObjectStore interface {
	UploadOriginal(ctx context.Context, filename string, data []byte, contentType string) (string, error)
	UploadParsedText(ctx context.Context, originalObjectName, text string) (string, error)
}

// ProcessResult 单个文件的处理结果
type ProcessResult struct {
	// 入库后的记录
	Record *types.ResumeRecord

	// 实际使用的解析策略
	ParserUsed string

	// 重复检测删除的旧记录数
	DuplicatesRemoved int64

	// 原始文件在对象存储中的路径（未启用对象存储时为空）
	OriginalObjectPath string
}

// BatchItemResult 批量上传中单个文件的处理结果，失败的文件
// 不中断整个批次
type BatchItemResult struct {
	Filename string         `json:"filename"`
	Success  bool           `json:"success"`
	Error    string         `json:"error,omitempty"`
	ResumeID string         `json:"resume_id,omitempty"`
	Result   *ProcessResult `json:"-"`
}
