// cmd/editfa/main.go
package main

import (
	"editfa/internal/appshell"
	"editfa/internal/editapp"
)

func main() {
	appshell.Main(editapp.RunContext)
}
