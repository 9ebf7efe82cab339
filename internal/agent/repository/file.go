package repository

import (
	"bufio"
	"os"
	"strings"
)

// FileRepository reads credentials from a plaintext file of
// "code,password" lines. Matching is exact and case-sensitive; the
// passwords are not hashed, which is a known property of the format.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Validate(code, password string) bool {
	file, err := os.Open(r.path)
	if err != nil {
		return false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineCode, linePassword, ok := strings.Cut(scanner.Text(), ",")
		if !ok {
			continue
		}
		if lineCode == code && linePassword == password {
			return true
		}
	}
	return false
}
