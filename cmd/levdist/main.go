// cmd/levdist/main.go
package main

import (
	"levdist/internal/app"
	"levdist/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
