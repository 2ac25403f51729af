// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import "database/sql"

type InfoResponse struct {
	Runtime  RuntimeInfo  `json:"runtime"`
	Process  ProcessInfo  `json:"process"`
	Database DatabaseInfo `json:"database"`
}

type RuntimeInfo struct {
	GoVersion     string   `json:"goVersion"`
	NumGoroutines int      `json:"numGoroutines"`
	Mem           MemStats `json:"mem"`
}

type MemStats struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"totalAlloc"`
	Sys        uint64 `json:"sys"`
	HeapAlloc  uint64 `json:"heapAlloc"`
}

type ProcessInfo struct {
	PID           int    `json:"pid"`
	UptimeSeconds int    `json:"uptimeSeconds"`
	Hostname      string `json:"hostname,omitempty"`
}

type DatabaseInfo struct {
	Status             string      `json:"status"`
	Error              *string     `json:"error,omitempty"`
	OpenConnections    int         `json:"openConnections,omitempty"`
	InUse              int         `json:"inUse,omitempty"`
	Idle               int         `json:"idle,omitempty"`
	MaxOpenConnections int         `json:"maxOpenConnections,omitempty"`
	DBStats            sql.DBStats `json:"dbStats,omitempty"`
	MigrationVersion   *uint       `json:"migrationVersion,omitempty"`
	MigrationDirty     *bool       `json:"migrationDirty,omitempty"`
	MigrationError     *string     `json:"migrationError,omitempty"`
	Pool               *PoolInfo   `json:"pool,omitempty"`
}

type PoolInfo struct {
	DBName          string `json:"dbName"`
	MaxOpenConns    int    `json:"maxOpenConns"`
	ConnMaxLifetime string `json:"connMaxLifetime"`
	ConnMaxIdleTime string `json:"connMaxIdleTime"`
	TotalConns      int    `json:"totalConns"`
	IdleConns       int    `json:"idleConns"`
	AcquiredConns   int    `json:"acquiredConns"`
	MaxConns        int    `json:"maxConns"`
}
