// cmd/fqdiff/main.go
package main

import (
	"editfa/internal/appshell"
	"editfa/internal/diffapp"
)

func main() {
	appshell.Main(diffapp.RunContext)
}
