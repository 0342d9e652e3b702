package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player  PlayerConfig           `json:"player"`
	Enemies map[string]EnemyConfig `json:"enemies"`
}

type PlayerConfig struct {
	ID     string     `json:"id"`
	Hitbox SizeConfig `json:"hitbox"`
	MaxHP  int        `json:"maxHP"`
}

type SizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type EnemyConfig struct {
	ID        string     `json:"id"`
	Hitbox    SizeConfig `json:"hitbox"`
	MoveSpeed float64    `json:"moveSpeed"`
	Color     string     `json:"color"`
}
