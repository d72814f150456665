package cli

import (
	"github.com/pkg/errors"

	"animal-savior/ui"
)

func (c *InteractiveCmd) Run() error {
	return errors.Wrap(ui.Start(c.File), "InteractiveCmd.Run error")
}
