package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// PersonalInfo 个人信息抽取结果
type PersonalInfo struct {
	FullName string
	Email    string
	Phone    string
	Location string
	LinkedIn string
	GitHub   string
}

// ExtractPersonalInfo 从全文与个人信息章节（可为 nil）中抽取联系信息。
//
// 姓名优先用文档首行的直接启发式判断；失败后在个人信息文本、
// 再在全文上按姓名规则表级联。邮箱/电话/地址各自先在个人信息
// 文本上尝试规则表，无结果再退回全文。LinkedIn/GitHub 直接在
// 全文上匹配，每个命中交给规范化器验证，规范化失败的候选跳过。
func ExtractPersonalInfo(text string, personalSection []string) PersonalInfo {
	info := PersonalInfo{}

	var personalText string
	if len(personalSection) > 0 {
		personalText = strings.Join(personalSection, "\n")
	} else {
		// 没有个人信息章节时取前20行
		lines := strings.Split(text, "\n")
		if len(lines) > 20 {
			lines = lines[:20]
		}
		personalText = strings.Join(lines, "\n")
	}

	// 姓名：首行直接启发式
	firstLine := strings.TrimSpace(strings.SplitN(text, "\n", 2)[0])
	if looksLikeName(firstLine) {
		info.FullName = firstLine
	}

	// 首行失败后按规则表级联：先限定文本，再全文
	if info.FullName == "" {
		info.FullName = strings.TrimSpace(firstMatch(namePatterns, personalText))
	}
	if info.FullName == "" {
		info.FullName = strings.TrimSpace(firstMatch(namePatterns, text))
	}

	// 联系块标题被吸入姓名捕获时会留下 "Contact " 前缀，剥掉
	if strings.HasPrefix(info.FullName, "Contact ") {
		info.FullName = strings.TrimPrefix(info.FullName, "Contact ")
	}

	info.Email = scopedFirstMatch(emailPatterns, personalText, text)
	info.Phone = scopedFirstMatch(phonePatterns, personalText, text)
	info.Location = scopedFirstMatch(locationPatterns, personalText, text)

	// 社交链接：在全文上匹配，第一个能成功规范化的候选胜出
	info.LinkedIn = firstNormalizedURL(linkedinPatterns, text, NormalizeLinkedInURL)
	info.GitHub = firstNormalizedURL(githubPatterns, text, NormalizeGitHubURL)

	return info
}

// looksLikeName 首行姓名启发式：长度5-40、不含 resume/cv 类词、
// 2-5个单词且长度大于1的单词均以大写开头。
func looksLikeName(line string) bool {
	n := utf8.RuneCountInString(line)
	if n < 5 || n > 40 {
		return false
	}
	if firstLineNameBlacklist.MatchString(line) {
		return false
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 5 {
		return false
	}
	for _, w := range words {
		if utf8.RuneCountInString(w) > 1 {
			r, _ := utf8.DecodeRuneInString(w)
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return true
}

// scopedFirstMatch 先在限定文本上尝试规则表，无结果再退回全文
func scopedFirstMatch(rules []Rule, scoped, full string) string {
	if v := strings.TrimSpace(firstMatch(rules, scoped)); v != "" {
		return v
	}
	return strings.TrimSpace(firstMatch(rules, full))
}

// firstNormalizedURL 按规则顺序取候选，返回第一个规范化成功的URL
func firstNormalizedURL(rules []Rule, text string, normalize func(string) string) string {
	for _, rule := range rules {
		for _, m := range rule.Pattern.FindAllStringSubmatch(text, -1) {
			idx := rule.Group
			if idx >= len(m) {
				idx = 0
			}
			if url := normalize(m[idx]); url != "" {
				return url
			}
		}
	}
	return ""
}
