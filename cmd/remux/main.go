// cmd/remux/main.go
package main

import (
	"remux/internal/app"
	"remux/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
