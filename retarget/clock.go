// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package retarget

import "time"

// nowFunc returns the current wall-clock time as Unix seconds. MUE's
// stale-tip guard (§4.E) consults this; per §6 it must source time from the
// same clock the rest of consensus uses. Tests override it to pin a
// deterministic "now".
var nowFunc = func() int64 {
	return time.Now().Unix()
}
