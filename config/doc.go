// Package config loads the runtime configuration of the graphpad binary.
//
// Sources, lowest priority first:
//
//  1. Default()                      built-in values
//  2. YAML file (Load's path)        unknown keys are rejected
//  3. GRAPHPAD_* environment         e.g. GRAPHPAD_STORAGE_DRIVER=memory
//
// The merged Config is validated with struct tags; every violation is
// reported in one ErrInvalidConfig error, fields named by their YAML path:
//
//	config: invalid configuration: storage.driver must be one of: sqlite memory; persist.breaker_failures must be at least 1
//
// Example file:
//
//	server:
//	  addr: ":8080"
//	  cors_origins: ["http://localhost:5173"]
//	log:
//	  level: debug
//	  development: true
//	storage:
//	  driver: sqlite
//	  path: data/graphpad.db
//	  key: graph-state-v1
//	history:
//	  limit: 100
//	metrics:
//	  enabled: true
//	  namespace: graphpad
//	persist:
//	  breaker_failures: 5
//	  breaker_timeout: 30s
package config
