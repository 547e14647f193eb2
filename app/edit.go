package app

import (
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/stride/internal/osutil"
	"github.com/ayoisaiah/stride/internal/pathutil"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// editorCmd builds the command that opens path in the user's editor. The
// editor value may carry arguments, e.g. "code --wait".
func editorCmd(editor, path string) (*exec.Cmd, error) {
	// a bare executable path is used as is so Windows paths keep their
	// backslashes
	if _, err := exec.LookPath(editor); err == nil {
		return exec.Command(editor, path), nil
	}

	args, err := shellquote.Split(editor)
	if err != nil {
		return nil, err
	}

	if len(args) == 0 {
		return nil, errEmptyEditor
	}

	args = append(args, path)

	return exec.Command(args[0], args[1:]...), nil
}

// editConfigAction handles the edit-config command which opens the stride
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		osutil.DefaultEditor(),
	)

	cmd, err := editorCmd(editor, pathutil.ConfigFilePath())
	if err != nil {
		return err
	}

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}
