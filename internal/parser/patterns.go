package parser

import (
	"regexp"

	"resume-parser-go/internal/types"
)

// Rule 单条抽取规则：正则模式 + 取值分组索引。
// Group 为 0 时取整个匹配，否则取对应捕获组。
// 规则表中的声明顺序即优先级顺序：前面的模式先尝试，命中即停。
type Rule struct {
	Pattern *regexp.Regexp
	Group   int
}

// SectionRule 章节标题识别规则，Label 的声明顺序决定同一行多类别命中时的归属
type SectionRule struct {
	Label    types.SectionLabel
	Patterns []*regexp.Regexp
}

// sectionRules 章节标题模式表。一行长度小于50且命中任一模式即切换当前章节。
var sectionRules = []SectionRule{
	{types.SectionPersonalInfo, compileAll(
		`(?i)personal\s+information`,
		`(?i)contact\s+information`,
		`(?i)contact`,
		`(?i)personal`,
		`(?i)about\s+me`,
	)},
	{types.SectionEducation, compileAll(
		`(?i)education`,
		`(?i)academic`,
		`(?i)qualification`,
		`(?i)degree`,
	)},
	{types.SectionExperience, compileAll(
		`(?i)experience`,
		`(?i)employment`,
		`(?i)work\s+history`,
		`(?i)professional\s+experience`,
		`(?i)work\s+experience`,
	)},
	{types.SectionSkills, compileAll(
		`(?i)skills`,
		`(?i)technical\s+skills`,
		`(?i)competencies`,
		`(?i)expertise`,
	)},
	{types.SectionProjects, compileAll(
		`(?i)projects`,
		`(?i)personal\s+projects`,
		`(?i)academic\s+projects`,
	)},
	{types.SectionCertifications, compileAll(
		`(?i)certifications`,
		`(?i)certificates`,
		`(?i)accreditations`,
	)},
	{types.SectionLanguages, compileAll(
		`(?i)languages`,
		`(?i)language\s+proficiency`,
	)},
	{types.SectionInterests, compileAll(
		`(?i)interests`,
		`(?i)hobbies`,
		`(?i)activities`,
	)},
	{types.SectionReferences, compileAll(
		`(?i)references`,
		`(?i)referees`,
	)},
}

// namePatterns 姓名抽取规则，按可信度从高到低排列
var namePatterns = []Rule{
	{regexp.MustCompile(`(?m)^\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})\s*$`), 1},         // 整行标准姓名
	{regexp.MustCompile(`name[:\s]+([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})`), 1},           // Name: John Doe
	{regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})\s*\n`), 1},                // 行首姓名后跟换行
	{regexp.MustCompile(`curriculum\s+vitae\s*(?:of|for)?\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})`), 1}, // CV of John Doe
	{regexp.MustCompile(`resume\s*(?:of|for)?\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})`), 1},             // Resume of John Doe
	{regexp.MustCompile(`([A-Z][A-Z\s]+)`), 1},                                          // 全大写姓名
	{regexp.MustCompile(`([A-Z][a-z]+\s+[A-Z][a-z]+)`), 1},                              // 简单 First Last
	{regexp.MustCompile(`(?m)^([A-Z][a-z]*\.?\s+[A-Z][a-z]+)`), 1},                      // 首字母缩写 + 姓
	{regexp.MustCompile(`(?m)^\s*([A-Za-z\.\s]{2,30})\s*$`), 1},                         // 开头任意似姓名文本
}

// emailPatterns 邮箱抽取规则
var emailPatterns = []Rule{
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`), 0},
	{regexp.MustCompile(`email[:\s]+([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,})`), 1},
	{regexp.MustCompile(`e-mail[:\s]+([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,})`), 1},
	{regexp.MustCompile(`mail[:\s]+([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,})`), 1},
}

// phonePatterns 电话抽取规则
var phonePatterns = []Rule{
	{regexp.MustCompile(`(?:phone|mobile|cell|contact|tel)[:\s]+(\+?[\d\s\-\.]{7,})`), 1},
	{regexp.MustCompile(`\b(\+\d{1,3}[\s\-\.]?\d{3}[\s\-\.]?\d{3}[\s\-\.]?\d{4})\b`), 1}, // 国际格式
	{regexp.MustCompile(`\b(\d{3}[\s\-\.]?\d{3}[\s\-\.]?\d{4})\b`), 1},                   // 美式格式
	{regexp.MustCompile(`\b(\d{4}[\s\-\.]?\d{3}[\s\-\.]?\d{3})\b`), 1},                   // 部分国际格式
	{regexp.MustCompile(`\b(\d{3,4}[\s\-\.]?\d{6,7})\b`), 1},                             // 0313-7786895 之类
}

// locationPatterns 地址抽取规则
var locationPatterns = []Rule{
	{regexp.MustCompile(`(?i)(?:location|address|city|residence)[:\s]+([A-Za-z0-9\s,\.\-]+)`), 1},
	{regexp.MustCompile(`(?i)(?:state|province|country)[:\s]+([A-Za-z\s,\.]+)`), 1},
	{regexp.MustCompile(`(?i)(?:zip|postal\s+code)[:\s]+([A-Za-z0-9\s\-]+)`), 1},
}

// linkedinPatterns LinkedIn引用抽取规则，命中结果交给 NormalizeLinkedInURL 验证
var linkedinPatterns = []Rule{
	{regexp.MustCompile(`(?i)https?://(?:www\.)?linkedin\.com/in/([a-zA-Z0-9_-]+)/?`), 1},
	{regexp.MustCompile(`(?i)linkedin\.com/in/([a-zA-Z0-9_-]+)/?`), 1},
	{regexp.MustCompile(`(?i)(?:linkedin|linked in)[:\s]+(?:https?://)?(?:www\.)?linkedin\.com/in/([a-zA-Z0-9_-]+)/?`), 1},
	{regexp.MustCompile(`(?i)(?:profile|linkedin)[:\s]+(?:https?://)?(?:www\.)?linkedin\.com/in/([a-zA-Z0-9_-]+)/?`), 1},
	{regexp.MustCompile(`(?i)linkedin[:\s]+(?:https?://)?(?:www\.)?linkedin\.com/in/([a-zA-Z0-9_-]+)/?`), 1},
	{regexp.MustCompile(`(?i)linkedin[:\s]+([a-zA-Z0-9_-]+)`), 1},   // linkedin: 后直接跟用户名
	{regexp.MustCompile(`(?i)linkedin\s*:\s*([^\s,]+)`), 1},         // linkedin: 后任意非空白
}

// githubPatterns GitHub引用抽取规则，命中结果交给 NormalizeGitHubURL 验证
var githubPatterns = []Rule{
	{regexp.MustCompile(`(?i)https?://(?:www\.)?github\.com/([a-zA-Z0-9_-]+)/?`), 1},
	{regexp.MustCompile(`(?i)github\.com/([a-zA-Z0-9_-]+)/?`), 1},
	{regexp.MustCompile(`(?i)(?:github|git hub)[:\s]+(?:https?://)?(?:www\.)?github\.com/([a-zA-Z0-9_-]+)/?`), 1},
	{regexp.MustCompile(`(?i)(?:profile|github)[:\s]+(?:https?://)?(?:www\.)?github\.com/([a-zA-Z0-9_-]+)/?`), 1},
	{regexp.MustCompile(`(?i)github[:\s]+(?:https?://)?(?:www\.)?github\.com/([a-zA-Z0-9_-]+)/?`), 1},
	{regexp.MustCompile(`(?i)github[:\s]+([a-zA-Z0-9_-]+)`), 1},
	{regexp.MustCompile(`(?i)github\s*:\s*([^\s,]+)`), 1},
}

// 教育经历相关规则表
var (
	degreePatterns = []Rule{
		{regexp.MustCompile(`(?i)(?:bachelor|master|phd|b\.?s\.?|m\.?s\.?|b\.?e\.?|b\.?tech|m\.?tech)[^,\n]*`), 0},
		{regexp.MustCompile(`(?i)(?:degree)[^,\n]*`), 0},
	}

	institutionPatterns = []Rule{
		{regexp.MustCompile(`(?i)(?:university|college|institute|school)[^,\n]*`), 0},
	}

	eduYearPatterns = []Rule{
		{regexp.MustCompile(`(?i)(?:20\d{2})\s*-\s*(?:20\d{2}|present|ongoing)`), 0},
		{regexp.MustCompile(`(?i)(?:19\d{2})\s*-\s*(?:20\d{2}|present|ongoing)`), 0},
		{regexp.MustCompile(`(?i)(?:20\d{2})`), 0},
		{regexp.MustCompile(`(?i)(?:19\d{2})`), 0},
	}

	fieldPatterns = []Rule{
		{regexp.MustCompile(`(?i)(?:in|of)\s+([A-Za-z\s&]+)`), 1},
	}

	// eduKeywordPattern 行级回退扫描时判定教育相关行
	eduKeywordPattern = regexp.MustCompile(`(?i)degree|bachelor|master|phd|university|college|institute|school`)
)

// 工作经历相关规则表
var (
	// jobEntryStartPatterns 任一命中则该行开启新的工作条目分组
	jobEntryStartPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:20\d{2}|19\d{2})\s*-\s*(?:20\d{2}|19\d{2}|present|ongoing)`),
		regexp.MustCompile(`^[A-Z][a-zA-Z\s&]+,`),    // 公司名后跟逗号
		regexp.MustCompile(`^[A-Z][a-zA-Z\s&]+\s+\|`), // 公司名后跟竖线
		regexp.MustCompile(`(?i)^(?:senior|junior|lead|principal|software|web|mobile|data|cloud|devops|full\s+stack|front\s*end|back\s*end)\s+`),
	}

	companyPatterns = []Rule{
		{regexp.MustCompile(`(?i)(?:at|with|for)?\s*([A-Za-z0-9\s&.,]+?)(?:\n|\s{2,}|$)`), 1},
		{regexp.MustCompile(`(?i)(?:company|employer)[:\s]+([A-Za-z0-9\s&.,]+)`), 1},
		{regexp.MustCompile(`(?i)^([A-Z][a-zA-Z\s&]+),`), 1},
		{regexp.MustCompile(`(?i)^([A-Z][a-zA-Z\s&]+)\s+\|`), 1},
	}

	rolePatterns = []Rule{
		{regexp.MustCompile(`(?i)(?:as|position|role|title)[:\s]+([A-Za-z\s]+)`), 1},
		{regexp.MustCompile(`(?i)(?:senior|junior|lead|principal|software|web|mobile|data|cloud|devops|full\s+stack|front\s*end|back\s*end)\s+([A-Za-z\s]+)`), 1},
		{regexp.MustCompile(`(?i)([A-Za-z\s]+?)\s+(?:developer|engineer|analyst|manager|consultant|designer|architect)`), 1},
	}

	// roleTitleKeywordPattern 职位后缀关键词，用于补全缺失的职位名尾词
	roleTitleKeywordPattern = regexp.MustCompile(`(?i)developer|engineer|analyst|manager|consultant|designer|architect`)
	roleTitleSuffixPattern  = regexp.MustCompile(`(?i)(developer|engineer|analyst|manager|consultant|designer|architect)`)

	expYearPatterns = []Rule{
		{regexp.MustCompile(`(?i)(?:20\d{2}|19\d{2})\s*-\s*(?:20\d{2}|19\d{2}|present|ongoing)`), 0},
		{regexp.MustCompile(`(?i)(?:from|since)\s+(?:20\d{2}|19\d{2})`), 0},
		{regexp.MustCompile(`(?i)(?:20\d{2}|19\d{2})`), 0},
	}
)

// TechnicalSkills 技术技能词表。匹配结果按此处声明顺序输出，而非文档出现顺序。
var TechnicalSkills = []string{
	"Python", "JavaScript", "Java", "C++", "C#", "PHP", "Ruby", "Swift", "Kotlin", "Go",
	"React", "Angular", "Vue.js", "Node.js", "Express", "Django", "Flask", "Spring Boot",
	"HTML", "CSS", "SQL", "MongoDB", "PostgreSQL", "MySQL", "Oracle", "Firebase",
	"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Git", "CI/CD",
	"Machine Learning", "Data Science", "Artificial Intelligence", "Deep Learning",
	"TensorFlow", "PyTorch", "Pandas", "NumPy", "Scikit-learn", "R", "Tableau", "Power BI",
	"Mobile Development", "Web Development", "Full Stack", "Frontend", "Backend", "DevOps",
	"Agile", "Scrum", "REST API", "GraphQL", "Microservices", "Linux", "Windows",
	"Networking", "Security", "Blockchain", "IoT", "AR/VR", "Game Development",
	"Solidity", "Ethereum", "Smart Contracts", "Web3", "DApp", "Hardhat", "Truffle",
	"Project Management", "Digital Marketing", "Teamwork", "Time Management", "Leadership",
	"Effective Communication", "Critical Thinking", "Problem Solving", "Analytical Skills",
}

// SoftSkills 软技能词表
var SoftSkills = []string{
	"Communication", "Leadership", "Teamwork", "Problem Solving", "Critical Thinking",
	"Time Management", "Adaptability", "Creativity", "Project Management", "Collaboration",
	"Attention to Detail", "Organization", "Analytical Skills", "Interpersonal Skills",
	"Presentation Skills", "Negotiation", "Conflict Resolution", "Decision Making",
	"Emotional Intelligence", "Flexibility",
}

// 词表匹配使用整词、不区分大小写的包含判断，正则在包初始化时预编译
var (
	technicalSkillPatterns = compileSkillPatterns(TechnicalSkills)
	softSkillPatterns      = compileSkillPatterns(SoftSkills)
)

// firstLineNameBlacklist 首行姓名启发式的排除词
var firstLineNameBlacklist = regexp.MustCompile(`(?i)resume|cv|curriculum|vitae`)

func compileAll(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		res = append(res, regexp.MustCompile(p))
	}
	return res
}

func compileSkillPatterns(skills []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(skills))
	for _, s := range skills {
		res = append(res, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(s)+`\b`))
	}
	return res
}

// firstMatch 按顺序尝试规则表，返回第一个非空匹配。
// 单条规则匹配失败不会中断级联，直接尝试下一条。
func firstMatch(rules []Rule, text string) string {
	for _, rule := range rules {
		m := rule.Pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		idx := rule.Group
		if idx >= len(m) {
			idx = 0
		}
		if v := m[idx]; v != "" {
			return v
		}
	}
	return ""
}

// allMatches 收集规则表中所有规则的全部匹配（保持规则顺序再按出现顺序）
func allMatches(rules []Rule, text string) []string {
	var out []string
	for _, rule := range rules {
		for _, m := range rule.Pattern.FindAllStringSubmatch(text, -1) {
			idx := rule.Group
			if idx >= len(m) {
				idx = 0
			}
			out = append(out, m[idx])
		}
	}
	return out
}
