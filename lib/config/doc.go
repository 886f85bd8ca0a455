// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for hostenv.
//
// Configuration is loaded from a single file named by either the
// HOSTENV_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no ~/.config discovery and no automatic
// file search. Test bootstraps that must run without any file use
// [LoadOrDefault], which returns [Default] when HOSTENV_CONFIG is
// unset.
//
// Files ending in .json or .jsonc are parsed as JSON with comments and
// trailing commas; everything else is parsed as YAML.
//
// The file may contain environment-specific sections (development, ci)
// that override base values when [Config].Environment matches. The ci
// environment defaults to never waiting for a debugger to attach, so a
// stray DEBUG variable on a build agent cannot stall a pipeline.
//
// ${HOME} and ${VAR:-default} patterns are expanded in distro.root.
// No other environment variables override config values.
//
// This package depends on no other hostenv packages.
package config
