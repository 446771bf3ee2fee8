// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package powcheck

import "github.com/btcsuite/btclog"

// log is the package-level logger, disabled by default.
var log = btclog.Disabled

// UseLogger sets the package-wide logger used by powcheck.
func UseLogger(logger btclog.Logger) {
	log = logger
}
