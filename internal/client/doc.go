// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It maps subcommands (list, get, create, update, delete, version) onto the
// users API adapter and prints results as indented JSON.
package client
