package config

import (
	"fmt"
	"strings"
)

type Storage struct {
	Driver   StorageDriver `env:"STORAGE_DRIVER" envDefault:"BOLT"`
	BoltPath string        `env:"STORAGE_BOLT_PATH" envDefault:"kasirpos.db"`
	SeedDemo bool          `env:"STORAGE_SEED_DEMO" envDefault:"false"`
}

// StorageDriver selects the key-value backend holding the POS collections.
type StorageDriver uint8

const (
	StorageDriverBolt StorageDriver = iota
	StorageDriverPostgres
	StorageDriverMemory
)

// String returns the string representation of the storage driver.
func (d StorageDriver) String() string {
	return []string{"BOLT", "POSTGRES", "MEMORY"}[d]
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// It unmarshals the text to a storage driver.
func (d *StorageDriver) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "BOLT":
		*d = StorageDriverBolt
	case "POSTGRES":
		*d = StorageDriverPostgres
	case "MEMORY":
		*d = StorageDriverMemory
	default:
		return fmt.Errorf("unknown storage driver: %s", text)
	}
	return nil
}

func (d StorageDriver) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
