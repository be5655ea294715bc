// Copyright (c) 2026 Cisco and/or its affiliates.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at:
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command ipam-planner subdivides a private IPv4 block into AWS IPAM pools and writes
// the Terraform variables for them.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/networkservicemesh/ipamplanner/pkg/ipam"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/planner"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/policy"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/flags"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/log"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/log/logruslogger"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/metrics"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/requestfile"
)

const metricsHeaderTimeout = 5 * time.Second

// Config is the command configuration
type Config struct {
	RequestFile string

	TopCIDR            string
	Regions            []string
	BusinessUnits      []string
	Environments       []string
	PrimaryRegion      string
	SkipBusinessUnits  bool
	SkipEnvironments   bool
	EnvPrefixTarget    int
	ReservedStrategy   ipam.ReservedStrategy
	ReservedPercentage int

	OutputDir       string
	PolicyFile      string
	DefaultPolicies bool
	MetricsTextfile string
	MetricsListenOn string
	Watch           bool
	LogLevel        string
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// .env is optional
	_ = godotenv.Load(".env")

	cfg := &Config{}
	flagSet := pflag.NewFlagSet("ipam-planner", pflag.ExitOnError)
	Flags(flagSet, cfg)

	populateFromEnv := flags.FromEnv(flags.EnvPrefix, flags.EnvReplacer, flagSet)
	if err := populateFromEnv(); err != nil {
		log.Default().Fatal(err)
	}
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		log.Default().Fatal(err)
	}

	logger, err := logruslogger.NewForOutput(ctx, os.Stderr, cfg.LogLevel, logrus.Fields{"name": "ipam-planner"})
	if err != nil {
		log.Default().Fatal(err)
	}
	ctx = log.WithLog(ctx, logger)

	if err := run(ctx, cfg, flagSet); err != nil {
		logger.Fatal(err)
	}
}

// Flags binds every command flag to cfg
func Flags(f *pflag.FlagSet, cfg *Config) {
	f.StringVarP(&cfg.RequestFile, flags.RequestKey, flags.RequestShortHand, "", flags.RequestUsageDefault)

	f.StringVarP(&cfg.TopCIDR, flags.TopCIDRKey, flags.TopCIDRShortHand, "", flags.TopCIDRUsageDefault)
	flags.KeySliceVarP(f, &cfg.Regions, flags.RegionsKey, flags.RegionsShortHand, nil, flags.RegionsUsageDefault)
	flags.KeySliceVarP(f, &cfg.BusinessUnits, flags.BusinessUnitsKey, flags.BusinessUnitsShortHand, nil, flags.BusinessUnitsUsageDefault)
	flags.KeySliceVarP(f, &cfg.Environments, flags.EnvironmentsKey, flags.EnvironmentsShortHand, nil, flags.EnvironmentsUsageDefault)
	f.StringVar(&cfg.PrimaryRegion, flags.PrimaryRegionKey, "", flags.PrimaryRegionUsageDefault)
	f.BoolVar(&cfg.SkipBusinessUnits, flags.SkipBusinessUnitsKey, false, flags.SkipBusinessUnitsUsageDefault)
	f.BoolVar(&cfg.SkipEnvironments, flags.SkipEnvironmentsKey, false, flags.SkipEnvironmentsUsageDefault)
	f.IntVar(&cfg.EnvPrefixTarget, flags.EnvPrefixTargetKey, ipam.DefaultEnvPrefixTarget, flags.EnvPrefixTargetUsageDefault)
	flags.StrategyVarP(f, &cfg.ReservedStrategy, flags.ReservedStrategyKey, "", ipam.StrategyHalf, flags.ReservedStrategyUsageDefault)
	f.IntVar(&cfg.ReservedPercentage, flags.ReservedPercentageKey, ipam.DefaultReservedPercentage, flags.ReservedPercentageUsageDefault)

	f.StringVarP(&cfg.OutputDir, flags.OutputDirKey, flags.OutputDirShortHand, flags.OutputDirDefault, flags.OutputDirUsageDefault)
	f.StringVarP(&cfg.PolicyFile, flags.PolicyFileKey, flags.PolicyFileShortHand, "", flags.PolicyFileUsageDefault)
	f.BoolVar(&cfg.DefaultPolicies, flags.DefaultPoliciesKey, true, flags.DefaultPoliciesUsageDefault)
	f.StringVar(&cfg.MetricsTextfile, flags.MetricsTextfileKey, "", flags.MetricsTextfileUsageDefault)
	f.StringVar(&cfg.MetricsListenOn, flags.MetricsListenOnKey, "", flags.MetricsListenOnUsageDefault)
	f.BoolVarP(&cfg.Watch, flags.WatchKey, flags.WatchShortHand, false, flags.WatchUsageDefault)
	f.StringVar(&cfg.LogLevel, flags.LogLevelKey, flags.LogLevelDefault, flags.LogLevelUsageDefault)
}

func run(ctx context.Context, cfg *Config, flagSet *pflag.FlagSet) error {
	logger := log.FromContext(ctx).WithField("cmd", "run")

	policies, err := loadPolicies(cfg)
	if err != nil {
		return err
	}
	m := metrics.New()
	p := planner.New(planner.WithPolicies(policies...), planner.WithMetrics(m))
	override := overrides(cfg, flagSet)

	if !cfg.Watch {
		req, err := buildRequest(cfg, override)
		if err != nil {
			return err
		}
		result, err := p.Calculate(ctx, req)
		if cfg.MetricsTextfile != "" {
			if mErr := m.WriteTextfile(cfg.MetricsTextfile); mErr != nil {
				logger.Warn(mErr.Error())
			}
		}
		if err != nil {
			return err
		}
		return writeResult(ctx, cfg.OutputDir, result, os.Stdout)
	}

	if cfg.RequestFile == "" {
		return errors.Errorf("--%s needs --%s", flags.WatchKey, flags.RequestKey)
	}
	if cfg.MetricsListenOn != "" {
		errCh := metrics.ListenAndServe(ctx, cfg.MetricsListenOn, metricsHeaderTimeout, m.Gatherer())
		go func() {
			for err := range errCh {
				logger.Error(err.Error())
			}
		}()
	}

	logger.Infof("watching %s", cfg.RequestFile)
	for result := range p.Watch(ctx, cfg.RequestFile, override) {
		if err := writeResult(ctx, cfg.OutputDir, result, os.Stdout); err != nil {
			logger.Error(err.Error())
		}
		if cfg.MetricsTextfile != "" {
			if err := m.WriteTextfile(cfg.MetricsTextfile); err != nil {
				logger.Warn(err.Error())
			}
		}
	}
	return nil
}

func loadPolicies(cfg *Config) ([]*policy.Policy, error) {
	var policies []*policy.Policy
	if cfg.DefaultPolicies {
		defaults, err := policy.Defaults()
		if err != nil {
			return nil, err
		}
		policies = append(policies, defaults...)
	}
	if cfg.PolicyFile != "" {
		p, err := policy.FromFile(cfg.PolicyFile)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, nil
}

// buildRequest loads the request file, if any, and applies the command line on top of it
func buildRequest(cfg *Config, override planner.Override) (*ipam.Request, error) {
	req := ipam.NewRequest("")
	if cfg.RequestFile != "" {
		loaded, err := requestfile.Load(cfg.RequestFile)
		if err != nil {
			return nil, err
		}
		req = *loaded
	}
	override(&req)
	if err := requestfile.Normalize(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// overrides returns the request changes made by flags that were set on the command line or in the environment
func overrides(cfg *Config, flagSet *pflag.FlagSet) planner.Override {
	return func(req *ipam.Request) {
		set := flagSet.Changed
		if set(flags.TopCIDRKey) {
			req.TopCIDR = cfg.TopCIDR
		}
		if set(flags.RegionsKey) {
			req.Regions = append([]string(nil), cfg.Regions...)
		}
		if set(flags.BusinessUnitsKey) {
			req.BusinessUnits = append([]string(nil), cfg.BusinessUnits...)
		}
		if set(flags.EnvironmentsKey) {
			req.Environments = append([]string(nil), cfg.Environments...)
		}
		if set(flags.PrimaryRegionKey) {
			req.PrimaryRegion = cfg.PrimaryRegion
		}
		if set(flags.SkipBusinessUnitsKey) {
			req.IncludeBusinessUnits = !cfg.SkipBusinessUnits
		}
		if set(flags.SkipEnvironmentsKey) {
			req.IncludeEnvironments = !cfg.SkipEnvironments
		}
		if set(flags.EnvPrefixTargetKey) {
			req.EnvPrefixTarget = ipam.ClampEnvPrefixTarget(cfg.EnvPrefixTarget)
		}
		if set(flags.ReservedStrategyKey) {
			req.ReservedStrategy = cfg.ReservedStrategy
		}
		if set(flags.ReservedPercentageKey) {
			req.ReservedPercentage = ipam.ClampPercentage(cfg.ReservedPercentage)
		}
	}
}
