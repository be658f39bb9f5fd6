package pkg

import "os"

// CheckFileExist reports whether the file at filePath exists.
func CheckFileExist(filePath string) (bool, error) {
	_, err := os.Lstat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// WriteFile writes data to filePath, creating or truncating it.
func WriteFile(filePath string, data []byte) error {
	return os.WriteFile(filePath, data, 0o644)
}
