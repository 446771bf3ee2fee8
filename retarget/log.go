// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package retarget

import "github.com/btcsuite/btclog"

// log is the package-level logger used throughout retarget. It is disabled
// by default so importing this package has no logging side effects until a
// caller wires one in with UseLogger, the same convention btcsuite packages
// follow.
var log = btclog.Disabled

// UseLogger sets the package-wide logger. This should be called before
// calling any other function provided by this package.
func UseLogger(logger btclog.Logger) {
	log = logger
}
