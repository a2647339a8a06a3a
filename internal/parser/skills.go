package parser

import (
	"regexp"
	"strings"

	"resume-parser-go/internal/types"
)

// ExtractSkills 按固定词表匹配技术技能与软技能。
//
// 有技能章节时先在章节文本上匹配；章节不存在或未命中任何词条时
// 退回全文。匹配为整词、不区分大小写的包含判断，去重后按词表
// 声明顺序输出。
func ExtractSkills(text string, skillsSection []string) types.Skills {
	scope := text
	if len(skillsSection) > 0 {
		scope = strings.Join(skillsSection, " ")
	}

	technical := matchVocabulary(TechnicalSkills, technicalSkillPatterns, scope)
	soft := matchVocabulary(SoftSkills, softSkillPatterns, scope)

	// 章节中没有任何词表命中时回退全文
	if len(technical) == 0 && len(skillsSection) > 0 {
		technical = matchVocabulary(TechnicalSkills, technicalSkillPatterns, text)
	}
	if len(soft) == 0 && len(skillsSection) > 0 {
		soft = matchVocabulary(SoftSkills, softSkillPatterns, text)
	}

	return types.Skills{Technical: technical, Soft: soft}
}

func matchVocabulary(vocab []string, patterns []*regexp.Regexp, text string) []string {
	matched := []string{}
	for i, skill := range vocab {
		if patterns[i].MatchString(text) {
			matched = append(matched, skill)
		}
	}
	return matched
}
