package parser

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	einopdf "github.com/cloudwego/eino-ext/components/document/parser/pdf"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"resume-parser-go/internal/logger"
)

// TextExtractor 按文件扩展名将原始字节解码为纯文本。
// PDF 优先走 Eino 解析器，失败时回退到 ledongthuc/pdf。
type TextExtractor struct {
	einoPDF *einopdf.PDFParser
}

// NewTextExtractor 创建文本提取器。Eino PDF 解析器初始化失败不是
// 致命错误，只影响 PDF 主路径，回退路径仍然可用。
func NewTextExtractor(ctx context.Context) *TextExtractor {
	p, err := einopdf.NewPDFParser(ctx, &einopdf.Config{
		ToPages: false, // 整个文档作为单个文本返回
	})
	if err != nil {
		logger.Warn().Err(err).Msg("Eino PDF 解析器初始化失败，PDF 将只使用回退路径")
		p = nil
	}
	return &TextExtractor{einoPDF: p}
}

// Extract 从文件字节中提取纯文本。不支持的扩展名返回错误，
// 提取过程中的失败返回空文本与错误，由调用方决定是否吸收。
func (e *TextExtractor) Extract(ctx context.Context, data []byte, filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	switch ext {
	case "pdf":
		return e.extractPDF(ctx, data)
	case "docx", "doc":
		return extractDocx(data)
	case "csv":
		return extractCSV(data)
	case "txt", "rtf":
		return decodeText(data), nil
	default:
		return "", fmt.Errorf("不支持的文件类型: %s", ext)
	}
}

func (e *TextExtractor) extractPDF(ctx context.Context, data []byte) (string, error) {
	if e.einoPDF != nil {
		docs, err := e.einoPDF.Parse(ctx, bytes.NewReader(data))
		if err == nil && len(docs) > 0 {
			var sb strings.Builder
			for _, doc := range docs {
				sb.WriteString(doc.Content)
			}
			if strings.TrimSpace(sb.String()) != "" {
				return sb.String(), nil
			}
		}
		if err != nil {
			logger.Warn().Err(err).Msg("Eino PDF 解析失败，使用回退解析器")
		}
	}
	return extractPDFFallback(data)
}

// extractPDFFallback 逐页提取PDF纯文本，单页失败跳过不中断
func extractPDFFallback(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("读取PDF失败: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("解析docx失败: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

// extractCSV 将CSV每行的字段用空格连接，行之间换行分隔
func extractCSV(data []byte) (string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	var lines []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("解析CSV失败: %w", err)
		}
		lines = append(lines, strings.Join(record, " "))
	}
	return strings.Join(lines, "\n"), nil
}

// decodeText UTF-8优先解码，无效时按Latin-1逐字节转换
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}
