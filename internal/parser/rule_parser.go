package parser

import (
	"context"
	"time"

	"resume-parser-go/internal/matcher"
	"resume-parser-go/internal/types"
)

// RuleBasedParser 规则驱动的简历解析策略：章节切分 + 级联模式抽取。
// 纯计算，无外部依赖，对相同输入永远产生相同输出。
type RuleBasedParser struct{}

// NewRuleBasedParser 创建规则解析器
func NewRuleBasedParser() *RuleBasedParser {
	return &RuleBasedParser{}
}

// Name 返回策略名称
func (p *RuleBasedParser) Name() string {
	return "rule_based"
}

// Parse 解析简历纯文本为结构化记录。规则解析不会失败：
// 抽不到的字段保持空值，错误只发生在上游（解码、存储）。
func (p *RuleBasedParser) Parse(ctx context.Context, text string) (*types.ResumeRecord, error) {
	sections := SegmentSections(text)

	personal := ExtractPersonalInfo(text, sections[types.SectionPersonalInfo])

	record := &types.ResumeRecord{
		FullName:       personal.FullName,
		Email:          personal.Email,
		Phone:          personal.Phone,
		Location:       personal.Location,
		LinkedIn:       personal.LinkedIn,
		GitHub:         personal.GitHub,
		Skills:         ExtractSkills(text, sections[types.SectionSkills]),
		Education:      ExtractEducation(sections[types.SectionEducation]),
		WorkExperience: ExtractExperience(sections[types.SectionExperience]),
		Projects:       ExtractProjects(sections[types.SectionProjects]),
		CreatedAt:      time.Now(),
	}

	record.RecommendedRoles = matcher.RecommendRoles(record.Skills.Technical)
	record.EnsureDefaults()

	return record, nil
}
