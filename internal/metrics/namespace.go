// Package metrics holds the Prometheus collectors of the service.
package metrics

// Namespace prefixes every collector.
const Namespace = "skillmatch"
