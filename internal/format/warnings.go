package format

import (
	"io"

	"github.com/fatih/color"

	"github.com/rcliao/inkind/internal/model"
)

var warnColor = color.New(color.FgYellow, color.Bold)

// WriteWarnings prints each data quality warning on its own line.
func WriteWarnings(w io.Writer, warnings []model.Warning) error {
	for _, wn := range warnings {
		if _, err := warnColor.Fprintf(w, "warning [%s]: %s\n", wn.Code, wn.Message); err != nil {
			return err
		}
	}
	return nil
}
