package utils

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrInvalidFileName 檔名不合法
var ErrInvalidFileName = errors.New("invalid file name")

var fileNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,127}$`)

// SanitizeFileName 只保留檔名本身，拒絕路徑與特殊字元
func SanitizeFileName(name string) (string, error) {
	name = strings.TrimSpace(strings.ReplaceAll(name, "\\", "/"))
	base := filepath.Base(name)
	if base != name || base == "." || base == ".." || strings.Contains(base, "..") {
		return "", ErrInvalidFileName
	}
	if !fileNamePattern.MatchString(base) {
		return "", ErrInvalidFileName
	}
	return base, nil
}
