package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/matcher"
	"resume-parser-go/internal/types"
)

// llmSystemPrompt 简历解析系统提示词
const llmSystemPrompt = `You are a resume parsing assistant. Extract details from the resume text provided by the user and return them in structured JSON format. Return ONLY the JSON object, without markdown fences or commentary.`

// llmUserPromptTemplate 用户消息模板，约定返回的 JSON 字段结构
const llmUserPromptTemplate = `### Resume Text:
%s

### Return JSON Format:
{
  "Full Name": "John Doe",
  "Contact Number": "123-456-7890",
  "Email Address": "johndoe@example.com",
  "Location": "New York, USA",
  "LinkedIn": "https://www.linkedin.com/in/johndoe",
  "GitHub": "https://github.com/johndoe",
  "Skills": { "Technical": ["Python", "Java"], "Soft": ["Communication"] },
  "Education": [{ "Degree": "B.Sc. Computer Science", "Institution": "XYZ University", "Years": "2015-2019" }],
  "Work Experience": [{ "Company": "ABC Corp", "Role": "Software Engineer", "Years": "3" }],
  "Certifications": ["AWS Certified Developer"],
  "Languages": ["English", "Spanish"],
  "Suggested Category": "Software Development",
  "Recommended Roles": ["Backend Developer", "Full Stack Developer"]
}`

// jsonBlockPattern 贪婪匹配响应中首个 { 到最后一个 } 之间的内容
var jsonBlockPattern = regexp.MustCompile(`(?s)\{.*\}`)

// LLMParser 基于大模型的简历解析策略。模型输出不可靠时返回错误，
// 由流水线回退到规则解析。
type LLMParser struct {
	llmModel model.ToolCallingChatModel
}

// NewLLMParser 创建LLM解析器
func NewLLMParser(llmModel model.ToolCallingChatModel) *LLMParser {
	return &LLMParser{llmModel: llmModel}
}

// Name 返回策略名称
func (p *LLMParser) Name() string {
	return "llm"
}

// aiResume 模型返回的简历JSON结构。Skills 字段形状不可靠，
// 先按原始JSON接收再归一化。
type aiResume struct {
	Error             string                  `json:"error"`
	FullName          string                  `json:"Full Name"`
	Phone             string                  `json:"Contact Number"`
	Email             string                  `json:"Email Address"`
	Location          string                  `json:"Location"`
	LinkedIn          string                  `json:"LinkedIn"`
	GitHub            string                  `json:"GitHub"`
	Skills            json.RawMessage         `json:"Skills"`
	Education         []types.EducationEntry  `json:"Education"`
	WorkExperience    []types.ExperienceEntry `json:"Work Experience"`
	Certifications    []string                `json:"Certifications"`
	Languages         []string                `json:"Languages"`
	SuggestedCategory string                  `json:"Suggested Category"`
	RecommendedRoles  []string                `json:"Recommended Roles"`
}

// Parse 调用模型解析简历文本。
//
// 模型响应中提取首个JSON块并反序列化；无JSON块、反序列化失败或
// 带有 error 字段都视为解析失败。项目经历不信任模型输出，始终
// 由规则抽取补充，LinkedIn/GitHub 归一化后再落入记录。
func (p *LLMParser) Parse(ctx context.Context, text string) (*types.ResumeRecord, error) {
	messages := []*schema.Message{
		schema.SystemMessage(llmSystemPrompt),
		schema.UserMessage(fmt.Sprintf(llmUserPromptTemplate, text)),
	}

	resp, err := p.llmModel.Generate(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("调用模型失败: %w", err)
	}

	jsonBlock := jsonBlockPattern.FindString(resp.Content)
	if jsonBlock == "" {
		return nil, fmt.Errorf("模型响应中未检测到有效JSON")
	}

	var ai aiResume
	if err := json.Unmarshal([]byte(jsonBlock), &ai); err != nil {
		return nil, fmt.Errorf("模型返回的JSON无效: %w", err)
	}
	if ai.Error != "" {
		return nil, fmt.Errorf("模型返回错误: %s", ai.Error)
	}

	record := &types.ResumeRecord{
		FullName:          ai.FullName,
		Email:             ai.Email,
		Phone:             ai.Phone,
		Location:          ai.Location,
		LinkedIn:          NormalizeLinkedInURL(ai.LinkedIn),
		GitHub:            NormalizeGitHubURL(ai.GitHub),
		Skills:            normalizeSkills(ai.Skills),
		Education:         ai.Education,
		WorkExperience:    ai.WorkExperience,
		Certifications:    ai.Certifications,
		Languages:         ai.Languages,
		SuggestedCategory: ai.SuggestedCategory,
		RecommendedRoles:  ai.RecommendedRoles,
		CreatedAt:         time.Now(),
	}

	// 项目经历始终用规则抽取，模型输出的项目结构不稳定
	sections := SegmentSections(text)
	record.Projects = ExtractProjects(sections[types.SectionProjects])

	if len(record.RecommendedRoles) == 0 {
		record.RecommendedRoles = matcher.RecommendRoles(record.Skills.Technical)
	}
	record.EnsureDefaults()

	logger.Debug().Str("name", record.FullName).Msg("LLM解析完成")
	return record, nil
}

// normalizeSkills 将模型返回的任意形状技能字段归一化为固定结构：
// 对象按 Technical/Soft 取值，裸列表归入 Technical，其余形状为空。
func normalizeSkills(raw json.RawMessage) types.Skills {
	if len(raw) == 0 {
		return types.Skills{Technical: []string{}, Soft: []string{}}
	}

	var structured types.Skills
	if err := json.Unmarshal(raw, &structured); err == nil {
		if structured.Technical == nil {
			structured.Technical = []string{}
		}
		if structured.Soft == nil {
			structured.Soft = []string{}
		}
		return structured
	}

	var flat []string
	if err := json.Unmarshal(raw, &flat); err == nil {
		return types.Skills{Technical: flat, Soft: []string{}}
	}

	return types.Skills{Technical: []string{}, Soft: []string{}}
}
