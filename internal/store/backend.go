// Package store persists the tab collection under a single key. A Backend
// is a small key/value document store; Gateway layers the JSON encoding and
// the never-fail load contract on top of it.
package store

import (
	"errors"
	"fmt"
	"path/filepath"
)

// StorageKey is the one namespace every backend stores the tabs under.
const StorageKey = "bar_inventory_tabs"

// ErrNotFound is returned by Backend.Read when nothing is stored under key.
var ErrNotFound = errors.New("store: key not found")

// Driver selects a Backend implementation.
type Driver string

const (
	DriverSQLite Driver = "sqlite"
	DriverFile   Driver = "file"
	DriverMemory Driver = "memory"
)

// Drivers lists the accepted driver names.
var Drivers = []Driver{DriverSQLite, DriverFile, DriverMemory}

// Backend reads and writes whole documents by key.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Delete(key string) error
	Close() error
	// Location describes where documents live, for messages and traces.
	Location() string
}

// Open constructs the backend for driver. path is the database file for
// sqlite and the directory for file; memory ignores it.
func Open(driver Driver, path string) (Backend, error) {
	switch driver {
	case DriverSQLite, "":
		if path == "" {
			path = DefaultSQLitePath
		}
		return NewSQLite(path)
	case DriverFile:
		if path == "" {
			path = filepath.Dir(DefaultSQLitePath)
		}
		return NewFile(path)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

// ValidDriver reports whether name is an accepted driver.
func ValidDriver(name string) bool {
	for _, d := range Drivers {
		if string(d) == name {
			return true
		}
	}
	return false
}
