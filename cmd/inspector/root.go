// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/inspector/base/logx"
	"cogentcore.org/inspector/inspector"
	"cogentcore.org/inspector/numeric"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys, which can also be set with INSPECTOR_<KEY>
// environment variables and in inspector.yaml.
const (
	cfgKeyState     = "state"
	cfgKeyLogLevel  = "log_level"
	cfgKeyPrecision = "precision"
	cfgKeyRefresh   = "refresh_interval"

	configFileName = "inspector"
	configFileType = "yaml"
	envPrefix      = "INSPECTOR"
)

// app holds the configuration shared by the commands.
type app struct {
	config *viper.Viper

	configFile string
	verbose    bool
	debug      bool
	quiet      bool
}

// loadConfig reads the configuration file, if any, and the environment.
// A missing configuration file is not an error.
func (a *app) loadConfig() error {
	v := a.config
	v.SetDefault(cfgKeyLogLevel, "warn")
	v.SetDefault(cfgKeyPrecision, numeric.DefaultPrecision)
	v.SetDefault(cfgKeyRefresh, inspector.DefaultRefreshInterval)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if a.configFile != "" {
		v.SetConfigFile(a.configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// setLogLevel sets the user log level from the flags,
// or else from the configuration.
func (a *app) setLogLevel() {
	if a.debug || a.verbose || a.quiet {
		logx.UserLevel = logx.LevelFromFlags(a.debug, a.verbose, a.quiet)
	} else {
		logx.UserLevel = logx.LevelFromString(a.config.GetString(cfgKeyLogLevel))
	}
	logx.SetDefaultLogger()
}

func newRootCmd() *cobra.Command {
	a := &app{config: viper.New()}
	cmd := &cobra.Command{
		Use:   "inspector",
		Short: "Inspector parses, evaluates and renders inspector properties",
		Long: `Inspector is a command line front end to the property inspector.
It parses annotations, evaluates expressions, formats numbers, and renders
YAML property documents as the entries the inspector would display.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}
			a.setLogLevel()
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default: ./inspector.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "show info messages")
	pf.BoolVar(&a.debug, "vv", false, "show debug messages")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "only show errors")

	cmd.AddCommand(newTokensCmd())
	cmd.AddCommand(newEvalCmd())
	cmd.AddCommand(newFormatCmd(a))
	cmd.AddCommand(newRenderCmd(a))
	return cmd
}
