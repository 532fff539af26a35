package commands

import (
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clusterinthecloud/nodectl/internal/cloud"
	"github.com/clusterinthecloud/nodectl/internal/config"
	"github.com/clusterinthecloud/nodectl/internal/image"
	"github.com/clusterinthecloud/nodectl/internal/netutil"
	"github.com/clusterinthecloud/nodectl/internal/provisioning"
	"github.com/clusterinthecloud/nodectl/internal/scheduler"
)

func newLogger() logr.Logger {
	stdr.SetVerbosity(verbosity)
	return stdr.New(stdlog.New(os.Stderr, "", stdlog.LstdFlags))
}

type runtime struct {
	log   logr.Logger
	space *config.NodeSpace
	cloud cloud.Client
}

// buildRuntime wires the collaborators every command needs: logger,
// nodespace record, and the provider client.
func buildRuntime() (*runtime, error) {
	log := newLogger()

	space, err := config.Load(nodespacePath)
	if err != nil {
		return nil, err
	}

	client, err := cloud.NewRealClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create provider client: %w", err)
	}

	return &runtime{log: log, space: space, cloud: client}, nil
}

// buildProvisioner additionally loads the launch payload files that only
// the start path needs.
func buildProvisioner() (*provisioning.Provisioner, error) {
	rt, err := buildRuntime()
	if err != nil {
		return nil, err
	}

	bootstrap, err := config.ReadBootstrap(bootstrapPath)
	if err != nil {
		return nil, err
	}
	sshKeys, err := config.ReadSSHKeys(sshKeysPath)
	if err != nil {
		return nil, err
	}

	return provisioning.New(provisioning.Params{
		Log:       rt.log,
		Cloud:     rt.cloud,
		Scheduler: scheduler.NewSlurm(),
		Images:    image.DefaultCatalog(),
		Resolver:  netutil.SystemResolver(),
		Space:     rt.space,
		SSHKeys:   sshKeys,
		Bootstrap: bootstrap,
	}), nil
}

// serveMetrics exposes the Prometheus registry for the lifetime of the
// process when --metrics-addr is set.
func serveMetrics(log logr.Logger) {
	if metricsAddr == "" {
		return
	}
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		server := &http.Server{
			Addr:              metricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(err, "metrics server stopped")
		}
	}()
}
