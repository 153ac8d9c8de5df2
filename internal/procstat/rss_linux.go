//go:build linux

package procstat

// Linux's getrusage reports ru_maxrss in kilobytes.
func maxrssToBytes(maxrss int64) int64 {
	return maxrss * 1024
}
