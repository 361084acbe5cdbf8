package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"factory-monitor-service/internal/error/code"
	"factory-monitor-service/internal/infrastructure/config"
	Logger "factory-monitor-service/pkg/logger"
	"factory-monitor-service/pkg/utils"

	"github.com/google/uuid"
)

// MaxUploadSize 單一檔案大小上限
const MaxUploadSize = 20 << 20

var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)

// InterfaceFileService 上傳與下載檔案
type InterfaceFileService interface {
	Save(files []*multipart.FileHeader) ([]UploadedFile, error)
	Open(name string) (*os.File, os.FileInfo, error)
}

// UploadedFile 上傳結果
type UploadedFile struct {
	FileName     string `json:"fileName"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
}

// FileService 檔案存放在暫存目錄，以 uuid 命名
type FileService struct {
	uploadDir string
	reportDir string
}

// NewFileService 建立檔案服務
func NewFileService(cfg *config.Config) InterfaceFileService {
	for _, dir := range []string{cfg.UploadDir, cfg.ReportDir} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			Logger.Error("建立目錄 %s 失敗: %v", dir, err)
		}
	}
	return &FileService{uploadDir: cfg.UploadDir, reportDir: cfg.ReportDir}
}

func safeExt(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if !extPattern.MatchString(ext) {
		return ""
	}
	return ext
}

// 1 Save 儲存上傳檔案，回傳產生的檔名
func (s *FileService) Save(files []*multipart.FileHeader) ([]UploadedFile, error) {
	if len(files) == 0 {
		return nil, code.New(code.ErrFileUpload, "沒有上傳的檔案")
	}

	for _, fh := range files {
		if fh.Size > MaxUploadSize {
			return nil, code.New(code.ErrFileUpload, fmt.Sprintf("檔案 %s 超過大小上限", fh.Filename))
		}
	}

	out := make([]UploadedFile, 0, len(files))
	for _, fh := range files {
		name := uuid.NewString() + safeExt(fh.Filename)
		if err := s.write(fh, filepath.Join(s.uploadDir, name)); err != nil {
			// 整批失敗，已寫入的檔案不會再被引用
			for _, f := range out {
				os.Remove(filepath.Join(s.uploadDir, f.FileName))
			}
			return nil, code.Wrap(code.ErrFileUpload, err)
		}
		out = append(out, UploadedFile{FileName: name, OriginalName: filepath.Base(fh.Filename), Size: fh.Size})
	}
	return out, nil
}

func (s *FileService) write(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, io.LimitReader(src, MaxUploadSize+1)); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}

// 2 Open 依檔名開啟報表或上傳檔案，呼叫端負責關閉
func (s *FileService) Open(name string) (*os.File, os.FileInfo, error) {
	clean, err := utils.SanitizeFileName(name)
	if err != nil {
		return nil, nil, code.New(code.ErrFileNameInvalid, "")
	}

	for _, dir := range []string{s.reportDir, s.uploadDir} {
		f, err := os.Open(filepath.Join(dir, clean))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		info, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		if info.IsDir() {
			f.Close()
			continue
		}
		return f, info, nil
	}
	return nil, nil, code.New(code.ErrFileNotFound, "")
}
