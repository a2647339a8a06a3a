package handler

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/constants"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/matcher"
	"resume-parser-go/internal/processor"
	"resume-parser-go/internal/storage"
)

// ResumeHandler 简历相关的HTTP处理器
type ResumeHandler struct {
	cfg       *config.Config
	storage   *storage.Storage
	processor *processor.ResumeProcessor
}

// NewResumeHandler 创建简历处理器
func NewResumeHandler(cfg *config.Config, storage *storage.Storage, proc *processor.ResumeProcessor) *ResumeHandler {
	return &ResumeHandler{
		cfg:       cfg,
		storage:   storage,
		processor: proc,
	}
}

// Upload 处理单个简历上传
func (h *ResumeHandler) Upload(c context.Context, ctx *app.RequestContext) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "文件未找到"})
		return
	}

	source := ctx.PostForm("source")
	if source == "" {
		source = constants.DefaultUploadSource
	}

	data, err := readMultipartFile(fileHeader)
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "读取上传文件失败"})
		return
	}

	result, err := h.processor.ProcessUpload(c, processor.UploadFile{
		Filename: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		status, message := uploadErrorResponse(err)
		ctx.JSON(status, utils.H{"error": message})
		return
	}

	ctx.JSON(consts.StatusOK, utils.H{
		"success":            true,
		"resume_id":          result.Record.ID,
		"parser_used":        result.ParserUsed,
		"duplicates_removed": result.DuplicatesRemoved,
		"resume":             result.Record,
	})
}

// BatchUpload 处理批量简历上传，单个文件失败不中断批次
func (h *ResumeHandler) BatchUpload(c context.Context, ctx *app.RequestContext) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "解析multipart表单失败"})
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "未提供任何文件"})
		return
	}

	files := make([]processor.UploadFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		data, err := readMultipartFile(fh)
		if err != nil {
			logger.Warn().Err(err).Str("filename", fh.Filename).Msg("读取批量上传文件失败")
			continue
		}
		files = append(files, processor.UploadFile{Filename: fh.Filename, Data: data})
	}

	results := h.processor.ProcessBatch(c, files)

	succeeded := 0
	for _, r := range results {
		if r.Success {
			succeeded++
		}
	}

	ctx.JSON(consts.StatusOK, utils.H{
		"total":     len(results),
		"succeeded": succeeded,
		"failed":    len(results) - succeeded,
		"results":   results,
	})
}

// ListResumes 返回全部简历记录，最新的在前
func (h *ResumeHandler) ListResumes(c context.Context, ctx *app.RequestContext) {
	records, err := h.storage.Resumes.FindAll(c)
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	ctx.JSON(consts.StatusOK, utils.H{"count": len(records), "resumes": records})
}

// GetResume 按ID返回单条简历记录
func (h *ResumeHandler) GetResume(c context.Context, ctx *app.RequestContext) {
	id := ctx.Param("id")
	record, err := h.storage.Resumes.FindByID(c, id)
	if errors.Is(err, storage.ErrResumeNotFound) {
		ctx.JSON(consts.StatusNotFound, utils.H{"error": "简历不存在"})
		return
	}
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return
	}
	ctx.JSON(consts.StatusOK, record)
}

// SearchResumes 按技能搜索并评分排序
func (h *ResumeHandler) SearchResumes(c context.Context, ctx *app.RequestContext) {
	skill := ctx.Query("skill")
	if skill == "" {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "未提供技能关键词"})
		return
	}

	records, err := h.storage.Resumes.FindAll(c)
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return
	}

	scored := matcher.SearchResumes(records, skill)
	ctx.JSON(consts.StatusOK, utils.H{"skill": skill, "count": len(scored), "results": scored})
}

// skillGapRequest 自由职位技能差距分析请求
type skillGapRequest struct {
	ResumeID  string   `json:"resume_id"`
	JobSkills []string `json:"job_skills"`
}

// AnalyzeSkillGap 针对调用方给出的技能列表做差距分析
func (h *ResumeHandler) AnalyzeSkillGap(c context.Context, ctx *app.RequestContext) {
	var req skillGapRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体格式错误"})
		return
	}
	if req.ResumeID == "" {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "缺少简历ID"})
		return
	}
	if len(req.JobSkills) == 0 {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "缺少职位技能列表"})
		return
	}

	record, err := h.storage.Resumes.FindByID(c, req.ResumeID)
	if errors.Is(err, storage.ErrResumeNotFound) {
		ctx.JSON(consts.StatusNotFound, utils.H{"error": "简历不存在"})
		return
	}
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return
	}

	report := matcher.AnalyzeSkillGap(record.Skills.Technical, req.JobSkills)
	ctx.JSON(consts.StatusOK, report)
}

// RoleSkillGap 按预置职位模板做技能差距分析
func (h *ResumeHandler) RoleSkillGap(c context.Context, ctx *app.RequestContext) {
	id := ctx.Param("id")
	role := ctx.Param("role")

	record, err := h.storage.Resumes.FindByID(c, id)
	if errors.Is(err, storage.ErrResumeNotFound) {
		ctx.JSON(consts.StatusNotFound, utils.H{"error": "简历不存在"})
		return
	}
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return
	}

	report := matcher.RoleSkillGap(record.Skills.Technical, role)
	ctx.JSON(consts.StatusOK, report)
}

// ExportCSV 将全部简历导出为CSV文件
func (h *ResumeHandler) ExportCSV(c context.Context, ctx *app.RequestContext) {
	records, err := h.storage.Resumes.FindAll(c)
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := []string{"Full Name", "Email", "Phone", "Location", "LinkedIn", "GitHub",
		"Technical Skills", "Soft Skills", "Suggested Category", "Recommended Roles", "Source File", "Upload Date"}
	if err := w.Write(header); err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "生成CSV失败"})
		return
	}

	for _, r := range records {
		row := []string{
			r.FullName, r.Email, r.Phone, r.Location, r.LinkedIn, r.GitHub,
			strings.Join(r.Skills.Technical, "; "),
			strings.Join(r.Skills.Soft, "; "),
			r.SuggestedCategory,
			strings.Join(r.RecommendedRoles, "; "),
			r.SourceFile,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(row); err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "生成CSV失败"})
			return
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "生成CSV失败"})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="resumes.csv"`)
	ctx.Data(consts.StatusOK, "text/csv; charset=utf-8", []byte(sb.String()))
}

// Health 健康检查，报告各存储组件状态
func (h *ResumeHandler) Health(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, utils.H{
		"status": "ok",
		"storage": utils.H{
			"mysql": h.storage.UsingMySQL(),
			"redis": h.storage.Redis != nil,
			"minio": h.storage.MinIO != nil,
		},
	})
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("打开上传文件失败: %w", err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

// uploadErrorResponse 将流水线业务错误映射为HTTP状态码
func uploadErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, processor.ErrUnsupportedFileType):
		return consts.StatusBadRequest, err.Error()
	case errors.Is(err, processor.ErrFileTooLarge):
		return consts.StatusRequestEntityTooLarge, err.Error()
	case errors.Is(err, processor.ErrDuplicateFile):
		return consts.StatusConflict, err.Error()
	case errors.Is(err, processor.ErrEmptyText):
		return consts.StatusUnprocessableEntity, err.Error()
	default:
		return consts.StatusInternalServerError, err.Error()
	}
}
