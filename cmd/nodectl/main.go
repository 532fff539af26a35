// Package main is the entry point for the nodectl CLI.
//
// nodectl is the node-lifecycle controller for a Cluster-in-the-Cloud
// deployment on Oracle Cloud Infrastructure. The Slurm controller invokes
// it as its ResumeProgram and SuspendProgram: "nodectl start" brings
// named compute nodes into existence and registers their addresses,
// "nodectl stop" tears them down.
package main

import (
	"fmt"
	"os"

	"github.com/clusterinthecloud/nodectl/cmd/nodectl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
