// Volatus - Aircraft Position Tracking and Aggregation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/volatus

//go:build integration

package testinfra

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
)

// SkipIfNoDocker skips the test if Docker is not available.
// This allows tests to run gracefully in environments without Docker.
func SkipIfNoDocker(t *testing.T) {
	t.Helper()

	if !IsDockerAvailable() {
		t.Skip("Skipping test: Docker not available")
	}
}

// IsDockerAvailable checks if Docker daemon is running and accessible.
func IsDockerAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "docker", "info")
	return cmd.Run() == nil
}

// CleanupContainer is a helper for deferred container cleanup that logs errors.
func CleanupContainer(t *testing.T, ctx context.Context, container testcontainers.Container) {
	t.Helper()

	if container != nil {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	}
}

// ContainerInfo holds information about a running container for debugging.
type ContainerInfo struct {
	ID        string
	Host      string
	Ports     map[string]string
	State     string
	StartedAt string // ISO8601 timestamp from Docker API
}

// GetContainerInfo retrieves debugging information about a container.
func GetContainerInfo(ctx context.Context, container testcontainers.Container) (*ContainerInfo, error) {
	state, err := container.State(ctx)
	if err != nil {
		return nil, err
	}

	host, _ := container.Host(ctx)
	ports, _ := container.Ports(ctx)

	portMap := make(map[string]string)
	for port, bindings := range ports {
		if len(bindings) > 0 {
			portMap[string(port)] = bindings[0].HostPort
		}
	}

	return &ContainerInfo{
		ID:        container.GetContainerID()[:12],
		Host:      host,
		Ports:     portMap,
		State:     state.Status,
		StartedAt: state.StartedAt,
	}, nil
}
