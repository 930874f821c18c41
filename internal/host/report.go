package host

import (
	"context"

	"github.com/devctl/devctl/pkg/logger"
)

// Advisory thresholds; below these the setup still proceeds with a warning.
const (
	minDiskFreeGB  = 10
	minMemAvailGB  = 2
	ptraceDisabled = 3
)

var ptraceLevels = map[int]string{
	0: "unrestricted",
	1: "restricted",
	2: "admin-only",
	3: "disabled",
}

func describePtrace(scope int) string {
	if desc, ok := ptraceLevels[scope]; ok {
		return desc
	}
	return "unknown"
}

// Report logs every collected fact and returns false only when the
// container runtime is unusable: docker missing or its daemon down.
// Everything else is advisory.
func Report(ctx context.Context, info SystemInfo) bool {
	log := logger.FromContext(ctx)
	ok := true

	if info.PtraceScope != nil {
		scope := *info.PtraceScope
		desc := describePtrace(scope)
		switch {
		case scope == 0:
			log.Info("ptrace_scope", "value", scope, "mode", desc)
		case scope == ptraceDisabled:
			log.Error("ptrace_scope disables in-container debugging", "value", scope, "mode", desc)
		default:
			log.Warn("ptrace_scope restricts in-container debugging", "value", scope, "mode", desc)
		}
	}

	switch {
	case !info.DockerFound:
		log.Error("docker not found")
		ok = false
	case !info.DockerRunning:
		log.Error("docker daemon not running")
		ok = false
	default:
		version := info.DockerVersion
		if version == "" {
			version = "available"
		}
		log.Info("docker", "version", version)
	}

	if info.DiskFreeGB != nil {
		if *info.DiskFreeGB < minDiskFreeGB {
			log.Warn("low disk space", "path", diskProbePath, "free_gb", *info.DiskFreeGB)
		} else {
			log.Info("disk", "path", diskProbePath, "free_gb", *info.DiskFreeGB)
		}
	}

	if info.MemAvailGB < minMemAvailGB {
		log.Warn("low available memory", "available_gb", info.MemAvailGB, "total_gb", info.MemTotalGB)
	} else {
		log.Info("memory", "available_gb", info.MemAvailGB, "total_gb", info.MemTotalGB)
	}

	if info.GitRepoRoot != "" {
		log.Info("git repository", "root", info.GitRepoRoot)
	} else {
		log.Warn("git repository not found")
	}

	return ok
}
