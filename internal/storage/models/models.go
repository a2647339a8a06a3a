package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"resume-parser-go/internal/types"
)

// Resume 简历主表。结构化列表字段以JSON列存储，检索只按标量列过滤，
// 列表内容整取整存。
type Resume struct {
	ID                string         `gorm:"type:char(36);primaryKey"`
	FullName          string         `gorm:"type:varchar(255);index:idx_resumes_full_name"`
	Email             string         `gorm:"type:varchar(255);index:idx_resumes_email"`
	Phone             string         `gorm:"type:varchar(50);index:idx_resumes_phone"`
	Location          string         `gorm:"type:varchar(255)"`
	LinkedIn          string         `gorm:"type:varchar(512)"`
	GitHub            string         `gorm:"type:varchar(512)"`
	LinkedInData      datatypes.JSON `gorm:"type:json"`
	GitHubData        datatypes.JSON `gorm:"type:json"`
	Skills            datatypes.JSON `gorm:"type:json"`
	Education         datatypes.JSON `gorm:"type:json"`
	WorkExperience    datatypes.JSON `gorm:"type:json"`
	Projects          datatypes.JSON `gorm:"type:json"`
	Certifications    datatypes.JSON `gorm:"type:json"`
	Languages         datatypes.JSON `gorm:"type:json"`
	SuggestedCategory string         `gorm:"type:varchar(255)"`
	RecommendedRoles  datatypes.JSON `gorm:"type:json"`
	SourceFile        string         `gorm:"type:varchar(512)"`
	OriginalFilePath  string         `gorm:"type:varchar(1024)"` // 对象存储中的原始文件路径
	ParsedTextPath    string         `gorm:"type:varchar(1024)"` // 对象存储中的解析文本路径
	CreatedAt         time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`
	UpdatedAt         time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);autoUpdateTime"`
}

// TableName 指定表名
func (Resume) TableName() string {
	return "resumes"
}

// FromRecord 将领域记录转换为数据库模型
func FromRecord(record *types.ResumeRecord) (*Resume, error) {
	m := &Resume{
		ID:                record.ID,
		FullName:          record.FullName,
		Email:             record.Email,
		Phone:             record.Phone,
		Location:          record.Location,
		LinkedIn:          record.LinkedIn,
		GitHub:            record.GitHub,
		SuggestedCategory: record.SuggestedCategory,
		SourceFile:        record.SourceFile,
		OriginalFilePath:  record.OriginalFilePath,
		ParsedTextPath:    record.ParsedTextPath,
		CreatedAt:         record.CreatedAt,
	}

	fields := []struct {
		name string
		src  any
		dst  *datatypes.JSON
	}{
		{"LinkedInData", record.LinkedInData, &m.LinkedInData},
		{"GitHubData", record.GitHubData, &m.GitHubData},
		{"Skills", record.Skills, &m.Skills},
		{"Education", record.Education, &m.Education},
		{"WorkExperience", record.WorkExperience, &m.WorkExperience},
		{"Projects", record.Projects, &m.Projects},
		{"Certifications", record.Certifications, &m.Certifications},
		{"Languages", record.Languages, &m.Languages},
		{"RecommendedRoles", record.RecommendedRoles, &m.RecommendedRoles},
	}
	for _, f := range fields {
		data, err := json.Marshal(f.src)
		if err != nil {
			return nil, fmt.Errorf("序列化 %s 失败: %w", f.name, err)
		}
		*f.dst = data
	}

	return m, nil
}

// ToRecord 将数据库模型还原为领域记录。JSON列反序列化失败时保留
// 空值而不中断整条记录的读取。
func (m *Resume) ToRecord() *types.ResumeRecord {
	record := &types.ResumeRecord{
		ID:                m.ID,
		FullName:          m.FullName,
		Email:             m.Email,
		Phone:             m.Phone,
		Location:          m.Location,
		LinkedIn:          m.LinkedIn,
		GitHub:            m.GitHub,
		SuggestedCategory: m.SuggestedCategory,
		SourceFile:        m.SourceFile,
		OriginalFilePath:  m.OriginalFilePath,
		ParsedTextPath:    m.ParsedTextPath,
		CreatedAt:         m.CreatedAt,
	}

	unmarshal := func(data datatypes.JSON, dst any) {
		if len(data) == 0 {
			return
		}
		_ = json.Unmarshal(data, dst)
	}
	unmarshal(m.LinkedInData, &record.LinkedInData)
	unmarshal(m.GitHubData, &record.GitHubData)
	unmarshal(m.Skills, &record.Skills)
	unmarshal(m.Education, &record.Education)
	unmarshal(m.WorkExperience, &record.WorkExperience)
	unmarshal(m.Projects, &record.Projects)
	unmarshal(m.Certifications, &record.Certifications)
	unmarshal(m.Languages, &record.Languages)
	unmarshal(m.RecommendedRoles, &record.RecommendedRoles)

	record.EnsureDefaults()
	return record
}
