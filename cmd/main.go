// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/e28099005-del/Godot-Develop-Tool-Kit/cmd/internal"
)

func main() {
	if err := internal.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
