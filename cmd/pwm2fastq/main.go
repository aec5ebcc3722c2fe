// cmd/pwm2fastq/main.go
package main

import (
	"editfa/internal/appshell"
	"editfa/internal/pwmapp"
)

func main() {
	appshell.Main(pwmapp.RunContext)
}
