package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"resume-parser-go/internal/api/handler"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, resumeHandler *handler.ResumeHandler) {
	api := h.Group("/api/v1")

	resumes := api.Group("/resumes")
	resumes.POST("/upload", resumeHandler.Upload)
	resumes.POST("/batch_upload", resumeHandler.BatchUpload)
	resumes.GET("", resumeHandler.ListResumes)
	resumes.GET("/search", resumeHandler.SearchResumes)
	resumes.GET("/export", resumeHandler.ExportCSV)
	resumes.GET("/:id", resumeHandler.GetResume)

	api.POST("/skill-gap", resumeHandler.AnalyzeSkillGap)
	api.GET("/skill-gap/:id/:role", resumeHandler.RoleSkillGap)

	api.GET("/health", resumeHandler.Health)
}
