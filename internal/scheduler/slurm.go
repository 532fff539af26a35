package scheduler

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

var nodeAddrRe = regexp.MustCompile(`NodeAddr=((\d+\.){3}\d+)`)

// Slurm talks to the Slurm controller through the sinfo and scontrol
// binaries on the management host.
type Slurm struct {
	// run executes a command and returns its combined stdout. Overridden
	// in tests.
	run func(ctx context.Context, name string, args ...string) (string, error)
}

var _ Scheduler = (*Slurm)(nil)

// NewSlurm returns a Scheduler backed by the local Slurm installation.
func NewSlurm() *Slurm {
	return &Slurm{run: runCommand}
}

func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return string(out), nil
}

// NodeFeatures returns the feature-tag string recorded for the node.
func (s *Slurm) NodeFeatures(ctx context.Context, hostname string) (string, error) {
	out, err := s.run(ctx, "sinfo", "--Format=features:200", "--noheader", "--nodes="+hostname)
	if err != nil {
		return "", fmt.Errorf("querying features for %s: %w", hostname, err)
	}
	return strings.TrimSpace(out), nil
}

// NodeAddress returns the NodeAddr recorded for the node, or "" when
// Slurm has no address stored (a fresh node keeps NodeAddr equal to its
// hostname, which does not match an IPv4 literal).
func (s *Slurm) NodeAddress(ctx context.Context, hostname string) (string, error) {
	out, err := s.run(ctx, "scontrol", "show", "node", hostname)
	if err != nil {
		return "", fmt.Errorf("querying address for %s: %w", hostname, err)
	}
	m := nodeAddrRe.FindStringSubmatch(out)
	if m == nil {
		return "", nil
	}
	return m[1], nil
}

// SetNodeAddress records the node's address in the Slurm registry.
func (s *Slurm) SetNodeAddress(ctx context.Context, hostname, address string) error {
	if _, err := s.run(ctx, "scontrol", "update", "NodeName="+hostname, "NodeAddr="+address); err != nil {
		return fmt.Errorf("updating address for %s: %w", hostname, err)
	}
	return nil
}
