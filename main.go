package main

import (
	"fmt"
	"os"

	"r2logs/cmd"
	"r2logs/config"
	"r2logs/pkg/logger"
)

func main() {
	logger.Init(false)

	cnf, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "Please set environment variables")
		os.Exit(1)
	}

	if err := cmd.Execute(cnf); err != nil {
		logger.Get().Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
