package ports

import "os/exec"

// EditorOpener opens wiki pages in an external editor
type EditorOpener interface {
	// OpenFile opens the page in the user's preferred editor
	OpenFile(path string) error

	// Command returns an exec.Cmd for the editor, for bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}
