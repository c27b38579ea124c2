package path

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// RootPath 專案根目錄；相對路徑的 --env / --config 以此為基準
func RootPath() string {
	// 本檔位於 <root>/utils/path/path.go
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		panic("cannot resolve caller for project root")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
}

// Exists 檔案不存在時回傳 false, nil；權限等其他錯誤照樣回傳
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
