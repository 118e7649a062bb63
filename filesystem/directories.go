package filesystem

import (
	"os"
	"time"
)

func CreateDirectoryIfNotExists(path string) error {
	return os.MkdirAll(path, 0777)
}

func FileModifiedTime(path string) (mod time.Time, err error) {
	fi, err := os.Stat(path)
	if err != nil {
		return
	}

	mod = fi.ModTime()

	return
}
