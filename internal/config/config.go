// Package config loads the static per-cluster configuration used when
// creating nodes: the nodespace record (region, compartment, VCN,
// availability-domain prefix) plus the bootstrap payload and SSH key
// material handed to every new instance.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default file locations on the cluster management host.
const (
	DefaultNodespacePath = "/etc/citc/startnode.yaml"
	DefaultBootstrapPath = "/home/slurm/bootstrap.sh"
	DefaultSSHKeysPath   = "/home/slurm/.ssh/authorized_keys"
)

// NodeSpace describes the space into which nodes are created. It is
// static for all nodes in a cluster and shared read-only.
type NodeSpace struct {
	Region        string `yaml:"region"`
	CompartmentID string `yaml:"compartment_id"`
	VcnID         string `yaml:"vcn_id"`
	ADRoot        string `yaml:"ad_root"`
}

// Load reads and parses the nodespace record from a YAML file.
func Load(path string) (*NodeSpace, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read nodespace file: %w", err)
	}

	var space NodeSpace
	if err := yaml.Unmarshal(data, &space); err != nil {
		return nil, fmt.Errorf("failed to unmarshal nodespace yaml: %w", err)
	}

	if err := space.Validate(); err != nil {
		return nil, fmt.Errorf("nodespace validation failed: %w", err)
	}

	return &space, nil
}

// Validate checks that every field required to launch an instance is set.
func (s *NodeSpace) Validate() error {
	var missing []string
	if s.Region == "" {
		missing = append(missing, "region")
	}
	if s.CompartmentID == "" {
		missing = append(missing, "compartment_id")
	}
	if s.VcnID == "" {
		missing = append(missing, "vcn_id")
	}
	if s.ADRoot == "" {
		missing = append(missing, "ad_root")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ReadBootstrap returns the raw bootstrap script handed to new instances.
func ReadBootstrap(path string) ([]byte, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bootstrap script: %w", err)
	}
	return data, nil
}

// ReadSSHKeys returns the authorized-keys material for new instances.
// The content is opaque to the controller; it is passed straight through
// to the provider's instance metadata.
func ReadSSHKeys(path string) (string, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read ssh keys: %w", err)
	}
	return string(data), nil
}
