package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLinkedInURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"完整URL原样返回", "https://www.linkedin.com/in/jane-doe", "https://www.linkedin.com/in/jane-doe"},
		{"带协议但路径不合法", "https://www.linkedin.com/company/acme", ""},
		{"裸域名重建", "linkedin.com/in/jane-doe", "https://www.linkedin.com/in/jane-doe"},
		{"www裸域名重建", "www.linkedin.com/in/janedoe/", "https://www.linkedin.com/in/janedoe"},
		{"纯用户名", "jane-doe", "https://www.linkedin.com/in/jane-doe"},
		{"用户名带斜杠", "/jane-doe/", "https://www.linkedin.com/in/jane-doe"},
		{"用户名过短", "jd", ""},
		{"非法字符", "jane doe", ""},
		{"裸用户名不接受下划线", "jane_doe", ""},
		{"空输入", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLinkedInURL(tt.in))
		})
	}
}

func TestNormalizeGitHubURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"完整URL原样返回", "https://github.com/janedoe", "https://github.com/janedoe"},
		{"带协议但缺少用户路径", "https://example.com/janedoe", ""},
		{"裸域名重建", "github.com/janedoe/", "https://github.com/janedoe"},
		{"纯用户名", "janedoe", "https://github.com/janedoe"},
		{"单字符用户名", "j", "https://github.com/j"},
		{"超长用户名", "abcdefghijklmnopqrstuvwxyz0123456789abcd", ""},
		{"裸用户名不接受下划线", "jane_doe", ""},
		{"域名路径中的下划线保留", "github.com/jane_doe", "https://github.com/jane_doe"},
		{"空输入", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeGitHubURL(tt.in))
		})
	}
}

// 规范化结果再次规范化应保持不变
func TestNormalizeURLIdempotent(t *testing.T) {
	linkedinInputs := []string{"jane-doe", "linkedin.com/in/jane-doe", "https://www.linkedin.com/in/jane-doe"}
	for _, in := range linkedinInputs {
		once := NormalizeLinkedInURL(in)
		assert.Equal(t, once, NormalizeLinkedInURL(once), "input: %s", in)
	}

	githubInputs := []string{"janedoe", "github.com/janedoe", "https://github.com/janedoe"}
	for _, in := range githubInputs {
		once := NormalizeGitHubURL(in)
		assert.Equal(t, once, NormalizeGitHubURL(once), "input: %s", in)
	}
}
