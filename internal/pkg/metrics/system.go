package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const collectInterval = 5 * time.Second

var (
	hostCPU = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "courierqueue_host_cpu_usage_percent",
		Help: "Host CPU usage percentage",
	})

	hostMemory = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "courierqueue_host_memory_used_bytes",
		Help: "Host memory in use",
	})

	heapAlloc = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "courierqueue_heap_alloc_bytes",
		Help: "Go heap allocation of the process",
	})

	dbConns = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "courierqueue_db_pool_connections",
		Help: "Connections of the postgres pool by state",
	}, []string{"state"})
)

// StartSystemMetricsCollector раз в несколько секунд снимает загрузку хоста
// и состояние пула соединений, пока не отменен ctx.
func StartSystemMetricsCollector(ctx context.Context, pool *pgxpool.Pool) {
	go func() {
		ticker := time.NewTicker(collectInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collectHost()
				if pool != nil {
					collectPool(pool.Stat())
				}
			}
		}
	}()
}

func collectHost() {
	if percent, err := cpu.Percent(time.Second, false); err == nil && len(percent) > 0 {
		hostCPU.Set(percent[0])
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		hostMemory.Set(float64(vm.Used))
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	heapAlloc.Set(float64(ms.HeapAlloc))
}

func collectPool(stat *pgxpool.Stat) {
	dbConns.WithLabelValues("acquired").Set(float64(stat.AcquiredConns()))
	dbConns.WithLabelValues("idle").Set(float64(stat.IdleConns()))
	dbConns.WithLabelValues("total").Set(float64(stat.TotalConns()))
}
