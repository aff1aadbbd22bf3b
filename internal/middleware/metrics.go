package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsBuilder configures the HTTP request duration summary
type MetricsBuilder struct {
	Namespace string
	Subsystem string
	Name      string
	Help      string
}

// Build registers the summary with reg and returns the middleware recording
// it. Requests are labelled by route pattern so path parameters do not
// multiply series.
func (m MetricsBuilder) Build(reg prometheus.Registerer) gin.HandlerFunc {
	vector := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: m.Namespace,
		Subsystem: m.Subsystem,
		Name:      m.Name,
		Help:      m.Help,
		Objectives: map[float64]float64{
			0.5:   0.01,
			0.75:  0.01,
			0.90:  0.01,
			0.99:  0.001,
			0.999: 0.0001,
		},
	}, []string{"pattern", "method", "status"})
	reg.MustRegister(vector)

	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			pattern := c.FullPath()
			if pattern == "" {
				pattern = "unknown"
			}
			vector.WithLabelValues(pattern, c.Request.Method, strconv.Itoa(c.Writer.Status())).
				Observe(time.Since(start).Seconds())
		}()
		c.Next()
	}
}
