package matcher

import (
	"strings"

	"resume-parser-go/internal/constants"
)

// roleRule 技能关键词到候选职位列表的映射，按声明顺序遍历保证结果确定
type roleRule struct {
	Skill string
	Roles []string
}

var roleMapping = []roleRule{
	{"Python", []string{"Python Developer", "Data Scientist", "Backend Developer"}},
	{"JavaScript", []string{"Frontend Developer", "Full Stack Developer", "Web Developer"}},
	{"React", []string{"React Developer", "Frontend Developer", "UI Developer"}},
	{"Angular", []string{"Angular Developer", "Frontend Developer", "UI Developer"}},
	{"Node.js", []string{"Node.js Developer", "Backend Developer", "Full Stack Developer"}},
	{"SQL", []string{"Database Administrator", "Data Analyst", "Backend Developer"}},
	{"MongoDB", []string{"MongoDB Developer", "NoSQL Developer", "Backend Developer"}},
	{"AWS", []string{"Cloud Engineer", "DevOps Engineer", "Solutions Architect"}},
	{"Docker", []string{"DevOps Engineer", "Cloud Engineer", "Systems Administrator"}},
	{"Machine Learning", []string{"Machine Learning Engineer", "Data Scientist", "AI Researcher"}},
	{"Full Stack", []string{"Full Stack Developer", "Web Developer", "Software Engineer"}},
	{"Frontend", []string{"Frontend Developer", "UI Developer", "Web Designer"}},
	{"Backend", []string{"Backend Developer", "API Developer", "Server Engineer"}},
	{"Mobile", []string{"Mobile Developer", "iOS Developer", "Android Developer"}},
	{"DevOps", []string{"DevOps Engineer", "SRE", "Cloud Engineer"}},
	{"Data", []string{"Data Analyst", "Data Engineer", "Business Intelligence Analyst"}},
	{"Solidity", []string{"Blockchain Developer", "Smart Contract Developer", "Ethereum Developer"}},
	{"Ethereum", []string{"Blockchain Developer", "Smart Contract Developer", "DApp Developer"}},
	{"Smart Contracts", []string{"Blockchain Developer", "Smart Contract Developer", "Solidity Developer"}},
	{"Web3", []string{"Blockchain Developer", "DApp Developer", "Web3 Developer"}},
}

// RecommendRoles 根据技术技能推荐职位。
//
// 技能与映射键做双向包含匹配（不区分大小写），命中的职位按首次出现
// 顺序去重合并，最多返回5个。
func RecommendRoles(technicalSkills []string) []string {
	recommended := []string{}
	seen := make(map[string]struct{})

	for _, skill := range technicalSkills {
		skillLower := strings.ToLower(skill)
		for _, rule := range roleMapping {
			keyLower := strings.ToLower(rule.Skill)
			if !strings.Contains(skillLower, keyLower) && !strings.Contains(keyLower, skillLower) {
				continue
			}
			for _, role := range rule.Roles {
				if _, ok := seen[role]; ok {
					continue
				}
				seen[role] = struct{}{}
				recommended = append(recommended, role)
			}
		}
	}

	if len(recommended) > constants.MaxRecommendedRoles {
		recommended = recommended[:constants.MaxRecommendedRoles]
	}
	return recommended
}
