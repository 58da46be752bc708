package commands

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/tubenotes/internal/core/api"
	"github.com/hay-kot/tubenotes/internal/tube"
	"github.com/hay-kot/tubenotes/pkg/iojson"
)

// writeResult prints obj as indented JSON on the command's stdout.
func writeResult(c *cli.Command, obj any) error {
	return iojson.Write(c.Root().Writer, c.Root().ErrWriter, obj)
}

// fail reports err as a JSON error on stderr and exits non-zero. The HTTP
// status and load stage are added to data when err carries them.
func fail(c *cli.Command, msg string, err error, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}
	data["error"] = err.Error()
	if status := api.StatusCode(err); status != 0 {
		data["status"] = status
	}
	var loadErr *tube.LoadError
	if errors.As(err, &loadErr) {
		data["stage"] = loadErr.Stage
	}

	if werr := iojson.WriteError(c.Root().ErrWriter, msg, data); werr != nil {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return cli.Exit("", 1)
}
