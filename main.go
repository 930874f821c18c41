package main

import (
	"context"
	"os"

	"github.com/devctl/devctl/cli"
	"github.com/devctl/devctl/pkg/logger"
)

func main() {
	cmd := cli.RootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		logger.GetDefault().Error(err.Error())
		os.Exit(1)
	}
}
