// Package metrics defines the Prometheus metrics of the lookup flow.
package metrics
