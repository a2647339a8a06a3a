package constants

// 上传相关常量
const (
	// MaxUploadSizeMB 默认最大上传大小（MB）
	MaxUploadSizeMB = 16

	// DefaultUploadSource 未指定来源时的默认上传渠道
	DefaultUploadSource = "web_upload"
)

// AllowedExtensions 允许上传的简历文件扩展名（不含点）
var AllowedExtensions = map[string]bool{
	"pdf":  true,
	"docx": true,
	"doc":  true,
	"txt":  true,
	"rtf":  true,
	"csv":  true,
}

// 评分上限，见 ScoringEngine：各分项之和的理论上限为100
const (
	// MaxSkillScore 技能精确匹配满分
	MaxSkillScore = 40
	// MaxPartialSkillScore 技能部分匹配上限
	MaxPartialSkillScore = 30
	// MaxExperienceScore 工作经历分项上限
	MaxExperienceScore = 30
	// MaxProjectScore 项目分项分值
	MaxProjectScore = 15
	// MaxEducationScore 教育分项分值
	MaxEducationScore = 10
	// MaxCertificationScore 证书分项分值
	MaxCertificationScore = 5
)

// MaxRecommendedRoles 推荐职位数量上限
const MaxRecommendedRoles = 5

// SectionHeaderMaxLen 章节标题行的最大长度，超过则视为正文
const SectionHeaderMaxLen = 50

// ProjectTitleMaxLen 项目标题行的最大长度
const ProjectTitleMaxLen = 50
