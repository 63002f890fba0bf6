// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line into a partial config.
//
// Flags:
//
//	-a resource server address in format [host]:[port]
//	-base-url base URL used to resolve a relative asset URL
//	-asset-url location of the encrypted payload document
//	-request-timeout payload fetch timeout (e.g., "10s"); 0 means none
//	-target target element selector (#id or .class)
//	-surface-errors return reveal failures to the caller instead of only logging them
//	-sample-size bytes of an unparseable body kept for diagnostics
//	-shutdown-timeout resource server graceful shutdown timeout
//	-c/-config json file path with configs
//
// A fresh flag set is used on every call so the function can be invoked more
// than once per process.
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var baseURL, assetURL, target, jsonConfigPath string
	var requestTimeout, shutdownTimeout time.Duration
	var surfaceErrors bool
	var sampleSize int

	fs.Var(&serverAddress, "a", "Resource server address host:port")
	fs.StringVar(&baseURL, "base-url", "", "Base URL for relative asset URLs")
	fs.StringVar(&assetURL, "asset-url", "", "Encrypted payload document URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Payload fetch timeout (e.g., 10s)")
	fs.StringVar(&target, "target", "", "Target element selector (#id or .class)")
	fs.BoolVar(&surfaceErrors, "surface-errors", false, "Return reveal failures to the caller")
	fs.IntVar(&sampleSize, "sample-size", 0, "Diagnostic body sample size in bytes")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 5s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TargetSelector:       target,
			SurfaceErrors:        surfaceErrors,
			DiagnosticSampleSize: sampleSize,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			AssetURL:       assetURL,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			ShutdownTimeout: shutdownTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
