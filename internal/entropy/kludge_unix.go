// Copyright (c) 2024-2026 Hardened Rand Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build unix

package entropy

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// kludgeTailFiles are read in full if small, or tail-read if large,
// matching FBENT_ADD_FILE_TAIL's log-rotation-resistant behavior in
// otterylite_fallback_unix.h: these are appended-to over the process's
// lifetime, so their tails vary run to run even on an otherwise static
// system.
var kludgeTailFiles = []struct {
	path string
	tail int64
}{
	{"/var/log/messages", 16384},
	{"/var/log/syslog", 16384},
	{"/var/log/secure", 16384},
	{"/var/log/lastlog", 8192},
	{"/var/log/wtmp", 8192},
}

// kludgeWholeFiles are read in full (absorb folds the accumulator into a
// digest whenever it reaches accumulatorCap), matching the original's plain FBENT_ADD_FILE calls against
// one-shot kernel-exposed files: command line, mounts, loaded modules,
// and kernel version all vary by host and boot, not by file size.
var kludgeWholeFiles = []string{
	"/proc/cmdline",
	"/proc/modules",
	"/proc/mounts",
	"/proc/version",
	"/proc/self/cmdline",
	"/proc/self/stat",
	"/proc/self/statm",
	"/proc/diskstats",
	"/proc/interrupts",
	"/proc/loadavg",
	"/proc/locks",
	"/proc/meminfo",
	"/proc/stat",
	"/proc/uptime",
	"/proc/vmstat",
}

// platformAbsorbFiles reads the tail of each rotating log and the whole
// of each one-shot kernel file that exists on this host, absorbing
// whatever bytes and stat metadata it can get. Missing files (this isn't
// Linux, or a given path doesn't exist) are silently skipped, exactly as
// the original's open()-returns-negative-one case is.
func platformAbsorbFiles(a *accumulator) {
	for _, f := range kludgeTailFiles {
		absorbFileTail(a, f.path, f.tail)
	}
	for _, path := range kludgeWholeFiles {
		absorbFileTail(a, path, 0)
	}
}

func absorbFileTail(a *accumulator, path string, tail int64) {
	fh, err := os.Open(path)
	if err != nil {
		return
	}
	defer fh.Close()

	if fi, err := fh.Stat(); err == nil {
		a.absorbUint64(uint64(fi.Size()))
		a.absorbUint64(uint64(fi.ModTime().UnixNano()))
		if tail > 0 && fi.Size() > tail {
			if _, err := fh.Seek(-tail, io.SeekEnd); err != nil {
				return
			}
		}
	}

	buf := make([]byte, 1024)
	for {
		n, err := fh.Read(buf)
		if n > 0 {
			a.absorb(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

// platformAbsorbRusage mixes in RUSAGE_SELF and RUSAGE_CHILDREN counters
// (user/system time, page faults, context switches), matching the
// original's pair of getrusage() calls.
func platformAbsorbRusage(a *accumulator) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err == nil {
		a.absorbUint64(uint64(ru.Utime.Nano()))
		a.absorbUint64(uint64(ru.Stime.Nano()))
		a.absorbUint64(uint64(ru.Maxrss))
		a.absorbUint64(uint64(ru.Nvcsw))
		a.absorbUint64(uint64(ru.Nivcsw))
	}
	if err := unix.Getrusage(unix.RUSAGE_CHILDREN, &ru); err == nil {
		a.absorbUint64(uint64(ru.Utime.Nano()))
		a.absorbUint64(uint64(ru.Stime.Nano()))
	}
}
