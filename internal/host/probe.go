// Package host probes OS-level facts about the machine the container will
// run on. Probes are single-shot reads with no retry or recovery.
package host

import (
	"context"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/devctl/devctl/internal/gitx"
)

const gib = 1 << 30

// ptraceScopePath is the Yama LSM setting controlling cross-process
// debugging, relevant for debuggers running inside the container.
const ptraceScopePath = "/proc/sys/kernel/yama/ptrace_scope"

// diskProbePath is where container images and volumes end up on most
// docker installs.
const diskProbePath = "/var"

// SystemInfo is the snapshot of host facts collected before starting the
// container. Pointer fields are nil when the fact could not be probed.
type SystemInfo struct {
	PtraceScope   *int
	DiskFreeGB    *uint64
	MemTotalGB    uint64
	MemAvailGB    uint64
	DockerFound   bool
	DockerRunning bool
	DockerVersion string
	GitRepoRoot   string
}

// Collect gathers all host facts. Individual probe failures leave the
// corresponding field unset; they never abort collection.
func Collect(ctx context.Context, workDir string) SystemInfo {
	var info SystemInfo

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		info.MemTotalGB = vm.Total / gib
		info.MemAvailGB = vm.Available / gib
	}

	if usage, err := disk.UsageWithContext(ctx, diskProbePath); err == nil {
		free := usage.Free / gib
		info.DiskFreeGB = &free
	}

	if scope, ok := readPtraceScope(); ok {
		info.PtraceScope = &scope
	}

	info.DockerFound, info.DockerRunning, info.DockerVersion = probeDocker(ctx)

	if root, ok := gitx.RepoRoot(workDir); ok {
		info.GitRepoRoot = root
	}

	return info
}

func readPtraceScope() (int, bool) {
	data, err := os.ReadFile(ptraceScopePath)
	if err != nil {
		return 0, false
	}
	scope, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false
	}
	return scope, true
}

func probeDocker(ctx context.Context) (found, running bool, version string) {
	if _, err := exec.LookPath("docker"); err != nil {
		return false, false, ""
	}
	found = true

	out, err := exec.CommandContext(ctx, "docker", "--version").Output()
	if err == nil {
		version = strings.TrimSpace(string(out))
	}

	// `docker info` talks to the daemon; it fails when the daemon is down
	if err := exec.CommandContext(ctx, "docker", "info").Run(); err == nil {
		running = true
	}
	return found, running, version
}
