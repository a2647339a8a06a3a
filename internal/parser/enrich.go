package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"resume-parser-go/internal/logger"
)

const defaultGitHubAPIBase = "https://api.github.com"

var githubUsernameFromURL = regexp.MustCompile(`github\.com/([a-zA-Z0-9_-]+)`)

// ProfileEnricher 根据归一化后的主页链接补充公开档案数据。
// 所有失败都被吸收为空结果，补充数据缺失不影响简历入库。
type ProfileEnricher struct {
	apiBase    string
	httpClient *http.Client
}

// NewProfileEnricher 创建档案补充器
func NewProfileEnricher(apiBase string, timeout time.Duration) *ProfileEnricher {
	if apiBase == "" {
		apiBase = defaultGitHubAPIBase
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ProfileEnricher{
		apiBase:    apiBase,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchProfiles 拉取 LinkedIn 与 GitHub 的档案数据。
//
// LinkedIn 公开 API 需要授权凭据，当前始终返回空档案；GitHub 走
// 公开 users API，非200响应或解码失败都返回空档案。
func (e *ProfileEnricher) FetchProfiles(ctx context.Context, linkedinURL, githubURL string) (map[string]any, map[string]any) {
	linkedinData := map[string]any{}
	githubData := map[string]any{}

	if githubURL != "" {
		if data, err := e.fetchGitHubProfile(ctx, githubURL); err != nil {
			logger.Warn().Err(err).Str("github_url", githubURL).Msg("拉取GitHub档案失败")
		} else {
			githubData = data
		}
	}

	return linkedinData, githubData
}

func (e *ProfileEnricher) fetchGitHubProfile(ctx context.Context, githubURL string) (map[string]any, error) {
	m := githubUsernameFromURL.FindStringSubmatch(githubURL)
	if m == nil {
		return nil, fmt.Errorf("无法从URL中提取GitHub用户名: %s", githubURL)
	}
	username := m[1]

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/users/%s", e.apiBase, username), nil)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求GitHub API失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API 返回状态 %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}

	var profile map[string]any
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("解码GitHub档案失败: %w", err)
	}
	return profile, nil
}
