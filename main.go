/*
Copyright © 2025 sevenuz
*/
package main

import (
	"github.com/sevenuz/cake/cmd"
	"github.com/sevenuz/cake/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	cmd.Execute()
}
