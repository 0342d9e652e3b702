package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Size        StageSizeConfig    `json:"size"`
	PlayerSpawn PositionConfig     `json:"playerSpawn"`
	Platforms   []RectConfig       `json:"platforms"`
	Decorations []RectConfig       `json:"decorations"`
	Goal        RectConfig         `json:"goal"`
	Enemies     []EnemySpawnConfig `json:"enemies"`
}

type StageSizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type RectConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type EnemySpawnConfig struct {
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Patrol float64 `json:"patrol"`
}
