//go:build unix || linux || darwin || freebsd || openbsd || netbsd

package procstat

import "golang.org/x/sys/unix"

// peakRSSBytes reads ru_maxrss from getrusage(RUSAGE_SELF). Linux reports
// ru_maxrss in kilobytes; Darwin reports it in bytes, so the conversion is
// platform-dependent and isolated to its own build-tagged file.
func peakRSSBytes() int64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return maxrssToBytes(ru.Maxrss)
}
