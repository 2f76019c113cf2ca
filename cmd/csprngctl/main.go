// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package main

import "github.com/hardenedrand/csprng/cmd/csprngctl/cmd"

func main() {
	cmd.Execute()
}
