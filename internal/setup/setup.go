// Package setup orchestrates the host-side initialization pipeline: host
// validation, layered config validation and merge, and env file emission.
package setup

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"

	"github.com/devctl/devctl/internal/host"
	"github.com/devctl/devctl/pkg/config"
	"github.com/devctl/devctl/pkg/envfile"
	"github.com/devctl/devctl/pkg/logger"
)

// Config file names inside the devcontainer docker directory.
const (
	composeDefaultFile  = "docker-compose.default.yml"
	composeCustomFile   = "docker-compose.custom.yml"
	packagesDefaultFile = "packages.default.yml"
	packagesCustomFile  = "packages.custom.yml"
	packagesMergedFile  = "packages.yml"
	envFileName         = ".env"
)

// Options are the command-line inputs of the init pipeline.
type Options struct {
	// Dir is the .devcontainer directory.
	Dir string `validate:"required"`
	// Suffix distinguishes parallel container sets for the same user.
	Suffix string
}

type scaffoldFunc func(afero.Fs, string) (bool, error)

// Orchestrator runs the init pipeline end to end. All file access goes
// through the injected filesystem and all process state comes from the
// HostContext, so the pipeline runs unmodified under test.
type Orchestrator struct {
	fs       afero.Fs
	settings *config.Settings
	hostCtx  HostContext
	validate *validator.Validate
	probe    func(context.Context, string) host.SystemInfo
}

func New(fsys afero.Fs, settings *config.Settings, hostCtx HostContext) *Orchestrator {
	return &Orchestrator{
		fs:       fsys,
		settings: settings,
		hostCtx:  hostCtx,
		validate: validator.New(),
		probe:    host.Collect,
	}
}

// Execute runs the whole pipeline. Any error is fatal; the caller maps it
// to a non-zero exit code.
func (o *Orchestrator) Execute(ctx context.Context, opts Options) error {
	log := logger.FromContext(ctx)

	if err := o.validate.Struct(&opts); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	dockerDir := filepath.Join(opts.Dir, "docker")
	if ok, err := afero.DirExists(o.fs, dockerDir); err != nil || !ok {
		return fmt.Errorf("directory not found: %s", dockerDir)
	}

	log.Info("validating host system")
	info := o.probe(ctx, o.hostCtx.WorkDir)
	if !host.Report(ctx, info) {
		return fmt.Errorf("container runtime unavailable")
	}

	log.Info("validating docker configuration")
	if _, err := o.requireValid(ctx, filepath.Join(dockerDir, composeDefaultFile), config.ComposeDefault); err != nil {
		return err
	}
	if _, err := o.ensureCustom(ctx, filepath.Join(dockerDir, composeCustomFile), config.ComposeCustom, config.ScaffoldComposeCustom); err != nil {
		return err
	}

	log.Info("validating package configuration")
	defDoc, err := o.requireValid(ctx, filepath.Join(dockerDir, packagesDefaultFile), config.PackagesDefault)
	if err != nil {
		return err
	}
	customDoc, err := o.ensureCustom(ctx, filepath.Join(dockerDir, packagesCustomFile), config.PackagesCustom, config.ScaffoldPackagesCustom)
	if err != nil {
		return err
	}

	log.Info("merging package configurations")
	merged, err := config.MergePackages(defDoc, customDoc)
	if err != nil {
		return err
	}
	mergedPath := filepath.Join(dockerDir, packagesMergedFile)
	if err := config.WriteDocument(o.fs, mergedPath, merged); err != nil {
		return err
	}

	// compose mounts these from the host; they must exist even if empty
	o.ensureHomeFile(".netrc")
	o.ensureHomeFile(".gitconfig")

	log.Info("initializing environment")
	envPath := filepath.Join(dockerDir, envFileName)
	_ = o.fs.Remove(envPath)

	in := o.envInputs(mergedPath, info.GitRepoRoot, opts.Suffix)
	if err := envfile.Write(o.fs, envPath, envfile.Render(in)); err != nil {
		return err
	}
	log.Info("environment initialized", "uid", in.UID, "gid", in.GID)
	return nil
}

// requireValid loads and validates a required config file; any failure is
// fatal.
func (o *Orchestrator) requireValid(ctx context.Context, path string, variant config.Variant) (config.Document, error) {
	log := logger.FromContext(ctx)
	doc, err := config.LoadDocument(o.fs, path)
	if err != nil {
		return nil, err
	}
	res := variant.Validate(doc)
	for _, warning := range res.Warnings {
		log.Warn(warning, "file", filepath.Base(path))
	}
	if !res.Valid {
		return nil, fmt.Errorf("%s: %s", filepath.Base(path), res.Reason)
	}
	log.Info("valid", "file", filepath.Base(path))
	return doc, nil
}

// ensureCustom validates an existing override file or scaffolds a missing
// one. Unknown content only warns; structural failure of a present file is
// still fatal.
func (o *Orchestrator) ensureCustom(ctx context.Context, path string, variant config.Variant, scaffold scaffoldFunc) (config.Document, error) {
	log := logger.FromContext(ctx)
	exists, err := afero.Exists(o.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", path, err)
	}
	if exists {
		return o.requireValid(ctx, path, variant)
	}
	if _, err := scaffold(o.fs, path); err != nil {
		return nil, err
	}
	log.Info("created", "file", filepath.Base(path))
	return config.LoadDocument(o.fs, path)
}

func (o *Orchestrator) envInputs(mergedPath, gitRoot, suffix string) envfile.Inputs {
	imageName := o.settings.FallbackImageName
	imageTag := o.settings.FallbackImageTag
	if ref, ok := config.ReadImageRef(o.fs, mergedPath); ok {
		if ref.Name != "" {
			imageName = ref.Name
		}
		if ref.Tag != "" {
			imageTag = ref.Tag
		}
	}

	return envfile.Inputs{
		Environ:     o.hostCtx.Environ,
		User:        o.hostCtx.User(o.settings),
		UID:         o.hostCtx.UID,
		GID:         o.hostCtx.GID,
		Shell:       o.hostCtx.Shell(o.settings),
		Home:        o.hostCtx.Home,
		GitRoot:     gitRoot,
		ImageName:   imageName,
		ImageTag:    imageTag,
		BuildTarget: o.settings.BuildTarget,
		Suffix:      suffix,
	}
}

func (o *Orchestrator) ensureHomeFile(name string) {
	if o.hostCtx.Home == "" {
		return
	}
	path := filepath.Join(o.hostCtx.Home, name)
	if exists, err := afero.Exists(o.fs, path); err == nil && !exists {
		_ = afero.WriteFile(o.fs, path, nil, 0o600)
	}
}
