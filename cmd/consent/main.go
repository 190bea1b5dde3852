package main

import (
	consentcmd "github.com/initializ/consent/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	consentcmd.SetVersionInfo(version, commit)
	consentcmd.Execute()
}
