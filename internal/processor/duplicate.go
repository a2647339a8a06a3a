package processor

import (
	"context"
	"regexp"
	"strings"

	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/storage"
	"resume-parser-go/internal/types"
)

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	nonDigitPattern   = regexp.MustCompile(`\D`)
)

// DuplicateDetector 入库前的重复检测。对已有记录逐条比较姓名、
// 邮箱、电话三个归一化字段，任一相同即视为重复。
type DuplicateDetector struct {
	store storage.ResumeStore
}

// NewDuplicateDetector 创建重复检测器
func NewDuplicateDetector(store storage.ResumeStore) *DuplicateDetector {
	return &DuplicateDetector{store: store}
}

// RemoveDuplicates 删除与新记录重复的已有记录，返回删除数量与
// 命中详情。新记录三个字段全为空时不做任何比较。
func (d *DuplicateDetector) RemoveDuplicates(ctx context.Context, record *types.ResumeRecord) (int64, []types.DuplicateMatch, error) {
	name := normalizeName(record.FullName)
	email := normalizeEmail(record.Email)
	phone := normalizePhone(record.Phone)

	if name == "" && email == "" && phone == "" {
		return 0, nil, nil
	}

	existing, err := d.store.FindAll(ctx)
	if err != nil {
		return 0, nil, err
	}

	var toDelete []string
	var matches []types.DuplicateMatch
	for _, old := range existing {
		matchedField := ""
		switch {
		case name != "" && normalizeName(old.FullName) == name:
			matchedField = "name"
		case email != "" && normalizeEmail(old.Email) == email:
			matchedField = "email"
		case phone != "" && normalizePhone(old.Phone) == phone:
			matchedField = "phone"
		}
		if matchedField == "" {
			continue
		}
		toDelete = append(toDelete, old.ID)
		matches = append(matches, types.DuplicateMatch{
			RecordID:     old.ID,
			SourceFile:   old.SourceFile,
			Name:         old.FullName,
			Email:        old.Email,
			Phone:        old.Phone,
			MatchedField: matchedField,
		})
	}

	if len(toDelete) == 0 {
		return 0, nil, nil
	}

	deleted, err := d.store.DeleteByIDs(ctx, toDelete)
	if err != nil {
		return 0, nil, err
	}

	logger.Info().Int64("deleted", deleted).Str("name", record.FullName).Msg("移除重复简历记录")
	return deleted, matches, nil
}

// normalizeName 小写、折叠空白并去除 "contact " 前缀
func normalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = whitespacePattern.ReplaceAllString(n, " ")
	n = strings.TrimPrefix(n, "contact ")
	return n
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizePhone 只保留数字
func normalizePhone(phone string) string {
	return nonDigitPattern.ReplaceAllString(phone, "")
}
