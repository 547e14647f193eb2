package osutil

import "runtime"

const (
	Windows = "windows"
	Darwin  = "darwin"
)

const DirPermission = 0o755

const FilePermission = 0o600

// DefaultEditor returns the editor used when neither VISUAL nor EDITOR is
// set.
func DefaultEditor() string {
	if runtime.GOOS == Windows {
		return "C:\\Windows\\system32\\notepad.exe"
	}

	return "nano"
}
