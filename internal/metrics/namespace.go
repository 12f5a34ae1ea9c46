// Package metrics holds the Prometheus collectors of the burn chart services.
package metrics

const namespace = "burnchart"
