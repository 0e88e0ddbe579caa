// Package fontfile locates and reads font files for the command-line tools.
package fontfile

import (
	"fmt"
	"os"

	findfont "github.com/flopp/go-findfont"
	"golang.org/x/image/font/gofont/goregular"
)

// Load returns the contents of the font called name.
//
// name is first tried as a path, then looked up in the system font
// directories. An empty name selects the built-in Go Regular.
func Load(name string) ([]byte, error) {
	if name == "" {
		return goregular.TTF, nil
	}
	path := name
	if _, err := os.Stat(path); err != nil {
		path, err = findfont.Find(name)
		if err != nil {
			return nil, fmt.Errorf("find font %q: %w", name, err)
		}
	}
	return os.ReadFile(path)
}
