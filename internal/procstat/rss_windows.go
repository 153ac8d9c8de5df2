//go:build windows

package procstat

import "golang.org/x/sys/windows"

func peakRSSBytes() int64 {
	h := windows.CurrentProcess()
	var info windows.PROCESS_MEMORY_COUNTERS
	if err := windows.GetProcessMemoryInfo(h, &info); err != nil {
		return 0
	}
	return int64(info.PeakWorkingSetSize)
}
