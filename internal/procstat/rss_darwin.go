//go:build darwin

package procstat

// Darwin's getrusage reports ru_maxrss in bytes already.
func maxrssToBytes(maxrss int64) int64 {
	return maxrss
}
