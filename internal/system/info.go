package system

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

type Snapshot struct {
	Hostname   string
	OS         string
	Uptime     string
	CPUPercent float64
	MemTotal   uint64
	MemUsed    uint64
	MemPercent float64
	Goroutines int
	GoHeapMB   float64
}

// Parallelism reports the number of logical CPUs, falling back to the Go
// runtime when the probe fails. Never less than 1.
func Parallelism() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		n = runtime.NumCPU()
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Gather collects a host and process snapshot with an internal timeout of
// 4s. Probes degrade individually; a failed probe leaves its fields zeroed
// instead of failing the whole snapshot.
func Gather(ctx context.Context) (*Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, 4*time.Second)
	defer cancel()

	snap := &Snapshot{}

	if hi, err := host.InfoWithContext(ctx); err == nil {
		snap.Hostname = hi.Hostname
		snap.OS = hi.OS + " " + hi.Platform + " " + hi.PlatformVersion
		snap.Uptime = formatUptime(hi.Uptime)
	}

	if percs, err := cpu.PercentWithContext(ctx, 500*time.Millisecond, false); err == nil && len(percs) > 0 {
		snap.CPUPercent = percs[0]
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		snap.MemTotal = vm.Total
		snap.MemUsed = vm.Used
		snap.MemPercent = vm.UsedPercent
	}

	snap.Goroutines = runtime.NumGoroutine()
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	snap.GoHeapMB = float64(ms.Alloc) / 1024 / 1024

	return snap, nil
}

// MB converts bytes to megabytes.
func MB(b uint64) float64 { return float64(b) / 1024 / 1024 }

func formatUptime(seconds uint64) string {
	d := seconds / 86400
	h := (seconds % 86400) / 3600
	m := (seconds % 3600) / 60
	if d > 0 {
		return fmt.Sprintf("%dd %dh %dm", d, h, m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
