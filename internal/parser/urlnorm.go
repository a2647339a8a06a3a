package parser

import (
	"regexp"
	"strings"
)

// URL规范化相关模式
var (
	linkedinUsernameExtract = regexp.MustCompile(`linkedin\.com/in/([a-zA-Z0-9_-]+)`)
	githubUsernameExtract   = regexp.MustCompile(`github\.com/([a-zA-Z0-9_-]+)`)
	linkedinUsernameCharset = regexp.MustCompile(`^[a-zA-Z0-9\-]{3,100}$`)
	githubUsernameCharset   = regexp.MustCompile(`^[a-zA-Z0-9\-]{1,39}$`)
)

// NormalizeLinkedInURL 将原始LinkedIn引用（完整URL、域名片段或裸用户名）
// 规范化为 https://www.linkedin.com/in/<username> 形式。
// 无法规范化时返回空字符串，从不报错；对已规范化的输入幂等。
func NormalizeLinkedInURL(raw string) string {
	// 已带协议的输入：路径中包含 /in/ 即视为合法，原样返回
	if strings.HasPrefix(raw, "http") {
		if strings.Contains(raw, "/in/") {
			return raw
		}
		return ""
	}

	// 含裸域名时提取用户名重建规范URL
	if strings.Contains(raw, "linkedin.com") {
		if m := linkedinUsernameExtract.FindStringSubmatch(raw); m != nil {
			return "https://www.linkedin.com/in/" + m[1]
		}
		return ""
	}

	// 纯用户名：校验字符集与长度（3-100位字母数字连字符）
	username := strings.Trim(raw, "/")
	if linkedinUsernameCharset.MatchString(username) {
		return "https://www.linkedin.com/in/" + username
	}

	return ""
}

// NormalizeGitHubURL 将原始GitHub引用规范化为 https://github.com/<username> 形式。
// 规则与 NormalizeLinkedInURL 相同，用户名限制为1-39位。
func NormalizeGitHubURL(raw string) string {
	if strings.HasPrefix(raw, "http") {
		if strings.Contains(raw, "github.com/") {
			return raw
		}
		return ""
	}

	if strings.Contains(raw, "github.com") {
		if m := githubUsernameExtract.FindStringSubmatch(raw); m != nil {
			return "https://github.com/" + m[1]
		}
		return ""
	}

	username := strings.Trim(raw, "/")
	if githubUsernameCharset.MatchString(username) {
		return "https://github.com/" + username
	}

	return ""
}
