package ui

import (
	"os/exec"
	"runtime"
)

const imdbTitleURL = "https://www.imdb.com/title/"

// openBrowser opens a URL in the default browser
func openBrowser(url string) error {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start"}
	case "darwin":
		cmd = "open"
	default: // "linux", "freebsd", etc.
		cmd = "xdg-open"
	}
	args = append(args, url)

	return exec.Command(cmd, args...).Start()
}

func imdbURL(id string) string {
	return imdbTitleURL + id + "/"
}
