// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build linux

package platform

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// EnableProfiling locks the calling goroutine to its thread, pins the
// process to CPU 0 and raises its scheduling priority. Each step is
// attempted; the failures are returned together. Raising the priority
// usually needs CAP_SYS_NICE.
func EnableProfiling() error {
	runtime.LockOSThread()

	var errs []error
	var set unix.CPUSet
	set.Set(0)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		errs = append(errs, fmt.Errorf("setting cpu affinity: %w", err))
	}
	if err := unix.Setpriority(unix.PRIO_PROCESS, 0, -20); err != nil {
		errs = append(errs, fmt.Errorf("raising priority: %w", err))
	}
	return errors.Join(errs...)
}

// DisableProfiling undoes the thread lock taken by EnableProfiling. The
// affinity and priority stay until the process exits.
func DisableProfiling() {
	runtime.UnlockOSThread()
}
