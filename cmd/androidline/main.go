// Where: cmd/androidline/main.go
// What: CLI entrypoint.
// Why: Run the scaffolder with configured dependencies.
package main

import (
	"os"

	"github.com/H4-Corp/AndroidLine/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}
