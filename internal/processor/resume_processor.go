package processor

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"resume-parser-go/internal/constants"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/parser"
	"resume-parser-go/internal/storage"
	"resume-parser-go/internal/types"
)

// 上传阶段的业务错误，由HTTP层映射为对应的响应
var (
	// ErrUnsupportedFileType 扩展名不在允许列表中
	ErrUnsupportedFileType = errors.New("不支持的文件类型")
	// ErrFileTooLarge 文件超过大小限制
	ErrFileTooLarge = errors.New("文件超过大小限制")
	// ErrDuplicateFile 相同内容的文件已上传过
	ErrDuplicateFile = errors.New("文件已上传过")
	// ErrEmptyText 文件中提取不到文本
	ErrEmptyText = errors.New("无法从文件中提取文本")
)

// UploadFile 待处理的上传文件
type UploadFile struct {
	Filename string
	Data     []byte
}

// ResumeProcessor 简历处理流水线：校验、去重、归档、提取、解析、
// 补全、重复清理、入库，每一步的组件都可替换。
type ResumeProcessor struct {
	parsers   []ResumeParser
	extractor TextExtractor
	enricher  Enricher
	objects   ObjectStore
	store     *storage.Storage
	dedup     *DuplicateDetector

	enrichEnabled bool
	maxSizeMB     int
}

// ProcessorOption 处理器选项函数类型
type ProcessorOption func(*ResumeProcessor)

// WithParsers 设置解析策略列表，顺序即优先级
func WithParsers(parsers ...ResumeParser) ProcessorOption {
	return func(p *ResumeProcessor) {
		p.parsers = parsers
	}
}

// WithTextExtractor 设置文本提取器
func WithTextExtractor(extractor TextExtractor) ProcessorOption {
	return func(p *ResumeProcessor) {
		p.extractor = extractor
	}
}

// WithEnricher 设置档案补全组件
func WithEnricher(enricher Enricher) ProcessorOption {
	return func(p *ResumeProcessor) {
		p.enricher = enricher
	}
}

// WithObjectStore 设置归档对象存储
func WithObjectStore(objects ObjectStore) ProcessorOption {
	return func(p *ResumeProcessor) {
		p.objects = objects
	}
}

// WithEnrichment 开关档案补全
func WithEnrichment(enabled bool) ProcessorOption {
	return func(p *ResumeProcessor) {
		p.enrichEnabled = enabled
	}
}

// WithMaxUploadSizeMB 设置上传大小限制
func WithMaxUploadSizeMB(sizeMB int) ProcessorOption {
	return func(p *ResumeProcessor) {
		p.maxSizeMB = sizeMB
	}
}

// NewResumeProcessor 创建处理流水线。未指定解析策略时只使用规则解析。
func NewResumeProcessor(store *storage.Storage, options ...ProcessorOption) *ResumeProcessor {
	p := &ResumeProcessor{
		store:         store,
		dedup:         NewDuplicateDetector(store.Resumes),
		enrichEnabled: true,
		maxSizeMB:     constants.MaxUploadSizeMB,
	}
	for _, opt := range options {
		opt(p)
	}
	if len(p.parsers) == 0 {
		p.parsers = []ResumeParser{parser.NewRuleBasedParser()}
	}
	if p.objects == nil && store.MinIO != nil {
		p.objects = store.MinIO
	}
	return p
}

// ProcessUpload 处理单个上传文件的完整流程
func (p *ResumeProcessor) ProcessUpload(ctx context.Context, file UploadFile) (*ProcessResult, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if !constants.AllowedExtensions[ext] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}
	if len(file.Data) > p.maxSizeMB*1024*1024 {
		return nil, fmt.Errorf("%w: 上限 %dMB", ErrFileTooLarge, p.maxSizeMB)
	}

	// 原始文件MD5去重
	md5Hex := fmt.Sprintf("%x", md5.Sum(file.Data))
	if p.store.Redis != nil {
		exists, err := p.store.Redis.CheckRawFileMD5Exists(ctx, md5Hex)
		if err != nil {
			logger.Warn().Err(err).Msg("查询文件MD5失败，跳过去重检查")
		} else if exists {
			return nil, ErrDuplicateFile
		}
	}

	// 原始文件归档失败不阻断解析
	var objectPath string
	if p.objects != nil {
		path, err := p.objects.UploadOriginal(ctx, file.Filename, file.Data, contentTypeOf(ext))
		if err != nil {
			logger.Warn().Err(err).Str("filename", file.Filename).Msg("归档原始文件失败")
		} else {
			objectPath = path
		}
	}

	text, err := p.extractor.Extract(ctx, file.Data, file.Filename)
	if err != nil {
		return nil, fmt.Errorf("提取文本失败: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	record, parserUsed, err := p.parse(ctx, text)
	if err != nil {
		return nil, err
	}

	record.SourceFile = file.Filename
	record.OriginalFilePath = objectPath

	// 解析文本归档在入库前完成，对象路径随记录一起持久化
	if p.objects != nil && objectPath != "" {
		parsedPath, err := p.objects.UploadParsedText(ctx, objectPath, text)
		if err != nil {
			logger.Warn().Err(err).Msg("归档解析文本失败")
		} else {
			record.ParsedTextPath = parsedPath
		}
	}

	// 主页链接统一再过一遍归一化，解析策略的输出不做假设
	record.LinkedIn = parser.NormalizeLinkedInURL(record.LinkedIn)
	record.GitHub = parser.NormalizeGitHubURL(record.GitHub)

	if p.enrichEnabled && p.enricher != nil && (record.LinkedIn != "" || record.GitHub != "") {
		linkedinData, githubData := p.enricher.FetchProfiles(ctx, record.LinkedIn, record.GitHub)
		record.LinkedInData = linkedinData
		record.GitHubData = githubData
	}
	record.EnsureDefaults()

	duplicatesRemoved, _, err := p.dedup.RemoveDuplicates(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("重复检测失败: %w", err)
	}

	if _, err := p.store.Resumes.InsertOne(ctx, record); err != nil {
		return nil, err
	}

	// 入库成功后才登记MD5，避免失败的上传挡住重试
	if p.store.Redis != nil {
		if err := p.store.Redis.RecordRawFileMD5(ctx, md5Hex); err != nil {
			logger.Warn().Err(err).Msg("登记文件MD5失败")
		}
	}

	logger.Info().
		Str("filename", file.Filename).
		Str("parser", parserUsed).
		Str("resume_id", record.ID).
		Int64("duplicates_removed", duplicatesRemoved).
		Msg("简历处理完成")

	return &ProcessResult{
		Record:             record,
		ParserUsed:         parserUsed,
		DuplicatesRemoved:  duplicatesRemoved,
		OriginalObjectPath: objectPath,
	}, nil
}

// ProcessBatch 逐个处理批量上传的文件，单个文件失败不中断批次
func (p *ResumeProcessor) ProcessBatch(ctx context.Context, files []UploadFile) []BatchItemResult {
	results := make([]BatchItemResult, 0, len(files))
	for _, file := range files {
		result, err := p.ProcessUpload(ctx, file)
		if err != nil {
			logger.Warn().Err(err).Str("filename", file.Filename).Msg("批量上传中单个文件处理失败")
			results = append(results, BatchItemResult{
				Filename: file.Filename,
				Success:  false,
				Error:    err.Error(),
			})
			continue
		}
		results = append(results, BatchItemResult{
			Filename: file.Filename,
			Success:  true,
			ResumeID: result.Record.ID,
			Result:   result,
		})
	}
	return results
}

// parse 按优先级尝试解析策略，前一个失败时回退到下一个
func (p *ResumeProcessor) parse(ctx context.Context, text string) (*types.ResumeRecord, string, error) {
	var lastErr error
	for _, strategy := range p.parsers {
		record, err := strategy.Parse(ctx, text)
		if err != nil {
			logger.Warn().Err(err).Str("parser", strategy.Name()).Msg("解析策略失败，尝试下一个")
			lastErr = err
			continue
		}
		return record, strategy.Name(), nil
	}
	return nil, "", fmt.Errorf("所有解析策略均失败: %w", lastErr)
}

func contentTypeOf(ext string) string {
	switch ext {
	case "pdf":
		return "application/pdf"
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "doc":
		return "application/msword"
	case "csv":
		return "text/csv"
	case "rtf":
		return "application/rtf"
	default:
		return "text/plain"
	}
}
