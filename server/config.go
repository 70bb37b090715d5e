package server

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// WorldConfig names one loaded world and its dimension (spec.md §6's
// "CLI/config: out of scope; the core consumes a spawn_pos : DVec3 and a
// list of (world_name, dimension) pairs").
type WorldConfig struct {
	Name      string `toml:"name"`
	Dimension uint8  `toml:"dimension"`
	Seed      int64  `toml:"seed"`
}

// Config is the TOML-backed configuration a cmd/kitemc entry point loads
// before constructing a Server; spec.md §1 puts config loading itself out
// of scope, so only the shape the core actually consumes is defined here.
type Config struct {
	ListenAddress string        `toml:"listen_address"`
	SpawnX        float64       `toml:"spawn_x"`
	SpawnY        float64       `toml:"spawn_y"`
	SpawnZ        float64       `toml:"spawn_z"`
	Worlds        []WorldConfig `toml:"worlds"`
	WorldDir      string        `toml:"world_dir"`
	PlayerDir     string        `toml:"player_dir"`
}

// DefaultConfig returns a single-world configuration suitable for a fresh
// server directory.
func DefaultConfig() Config {
	return Config{
		ListenAddress: "0.0.0.0:25565",
		SpawnY:        64,
		Worlds:        []WorldConfig{{Name: "world", Dimension: 0, Seed: 0}},
		WorldDir:      "worlds",
		PlayerDir:     "players",
	}
}

// LoadConfig reads and parses the TOML file at path. If the file does not
// exist, it is created with DefaultConfig's contents and that default is
// returned.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := DefaultConfig()
		if werr := writeConfig(path, cfg); werr != nil {
			return Config{}, werr
		}
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("server: parsing %s: %w", path, err)
	}
	return cfg, nil
}

func writeConfig(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
