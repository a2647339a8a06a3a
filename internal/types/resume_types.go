package types

import "time"

// SectionLabel 简历章节标签
type SectionLabel string

const (
	// SectionHeader 默认章节（文档开头未命中任何标题前的内容）
	SectionHeader SectionLabel = "header"
	// SectionPersonalInfo 个人信息/联系方式章节
	SectionPersonalInfo SectionLabel = "personal_info"
	// SectionEducation 教育经历章节
	SectionEducation SectionLabel = "education"
	// SectionExperience 工作经历章节
	SectionExperience SectionLabel = "experience"
	// SectionSkills 技能章节
	SectionSkills SectionLabel = "skills"
	// SectionProjects 项目经历章节
	SectionProjects SectionLabel = "projects"
	// SectionCertifications 证书章节
	SectionCertifications SectionLabel = "certifications"
	// SectionLanguages 语言能力章节
	SectionLanguages SectionLabel = "languages"
	// SectionInterests 兴趣爱好章节
	SectionInterests SectionLabel = "interests"
	// SectionReferences 推荐人章节
	SectionReferences SectionLabel = "references"
)

// SectionMap 章节标签到行列表的有序划分结果。
// 不变量：所有非空白输入行恰好归属一个章节。
type SectionMap map[SectionLabel][]string

// Skills 技能集合，入库时统一为固定的 Technical/Soft 结构
type Skills struct {
	Technical []string `json:"Technical"`
	Soft      []string `json:"Soft"`
}

// EducationEntry 教育经历条目。Degree 与 Institution 至少一个非空时条目才成立。
type EducationEntry struct {
	Degree      string `json:"Degree"`
	Institution string `json:"Institution"`
	Years       string `json:"Years"`
	Field       string `json:"Field"`
}

// ExperienceEntry 工作经历条目。Company 与 Role 至少一个非空时条目才成立，
// Description 始终保留该条目的原始文本。
type ExperienceEntry struct {
	Company     string `json:"Company"`
	Role        string `json:"Role"`
	Years       string `json:"Years"`
	Description string `json:"Description"`
}

// ProjectEntry 项目条目。Name 是切分锚点，其后的行累积为 Description。
type ProjectEntry struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

// ResumeRecord 结构化简历记录。
// 不变量：提取完成后所有列表字段均为空列表而非 nil，下游无需判空。
type ResumeRecord struct {
	ID               string            `json:"id,omitempty"`
	FullName         string            `json:"Full Name"`
	Email            string            `json:"Email Address"`
	Phone            string            `json:"Contact Number"`
	Location         string            `json:"Location"`
	LinkedIn         string            `json:"LinkedIn"`
	GitHub           string            `json:"GitHub"`
	LinkedInData     map[string]any    `json:"LinkedInData"`
	GitHubData       map[string]any    `json:"GitHubData"`
	Skills           Skills            `json:"Skills"`
	Education        []EducationEntry  `json:"Education"`
	WorkExperience   []ExperienceEntry `json:"Work Experience"`
	Projects         []ProjectEntry    `json:"Projects"`
	Certifications   []string          `json:"Certifications"`
	Languages        []string          `json:"Languages"`
	SuggestedCategory string           `json:"Suggested Category,omitempty"`
	RecommendedRoles []string          `json:"Recommended Roles"`
	SourceFile       string            `json:"source_file,omitempty"`
	OriginalFilePath string            `json:"original_file_path,omitempty"`
	ParsedTextPath   string            `json:"parsed_text_path,omitempty"`
	CreatedAt        time.Time         `json:"upload_date"`
}

// AllSkills 返回技术技能与软技能的合并列表（声明顺序）
func (r *ResumeRecord) AllSkills() []string {
	all := make([]string, 0, len(r.Skills.Technical)+len(r.Skills.Soft))
	all = append(all, r.Skills.Technical...)
	all = append(all, r.Skills.Soft...)
	return all
}

// EnsureDefaults 将所有 nil 列表字段替换为空列表，保证记录形状固定
func (r *ResumeRecord) EnsureDefaults() {
	if r.Skills.Technical == nil {
		r.Skills.Technical = []string{}
	}
	if r.Skills.Soft == nil {
		r.Skills.Soft = []string{}
	}
	if r.Education == nil {
		r.Education = []EducationEntry{}
	}
	if r.WorkExperience == nil {
		r.WorkExperience = []ExperienceEntry{}
	}
	if r.Projects == nil {
		r.Projects = []ProjectEntry{}
	}
	if r.Certifications == nil {
		r.Certifications = []string{}
	}
	if r.Languages == nil {
		r.Languages = []string{}
	}
	if r.RecommendedRoles == nil {
		r.RecommendedRoles = []string{}
	}
	if r.LinkedInData == nil {
		r.LinkedInData = map[string]any{}
	}
	if r.GitHubData == nil {
		r.GitHubData = map[string]any{}
	}
}

// DuplicateMatch 重复检测命中信息，仅在入库阶段临时产生，不持久化
type DuplicateMatch struct {
	RecordID     string `json:"record_id"`
	SourceFile   string `json:"source_file"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	MatchedField string `json:"matched_field"` // name / email / phone
}

// ScoredResume 带评分与名次的搜索结果
type ScoredResume struct {
	Resume    *ResumeRecord `json:"resume"`
	Score     int           `json:"score"`
	Rank      int           `json:"rank"`
	RankLabel string        `json:"rank_label"`
}

// SkillGapReport 技能差距分析结果
type SkillGapReport struct {
	JobRole               string            `json:"job_role,omitempty"`
	CandidateSkills       []string          `json:"candidate_skills"`
	RequiredSkills        []string          `json:"required_skills"`
	MatchingSkills        []string          `json:"matching_skills"`
	MissingSkills         []string          `json:"missing_skills"`
	MatchPercentage       int               `json:"match_percentage"`
	Recommendations       []string          `json:"recommendations,omitempty"`
	CourseRecommendations map[string]string `json:"course_recommendations"`
}
