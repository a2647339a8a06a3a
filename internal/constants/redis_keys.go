package constants

// Redis键相关常量
const (
	// RawFileMD5SetKey 已解析原始文件MD5集合的键名，用于跳过重复上传的相同文件
	RawFileMD5SetKey = "resume:raw_file_md5_set"

	// DefaultMD5RecordExpireDays MD5记录默认过期天数
	DefaultMD5RecordExpireDays = 30
)
