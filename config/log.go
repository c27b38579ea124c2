package config

type Log struct {
	// debug / info / warn / error / dpanic / panic / fatal；設定檔變更時即時生效
	Level string `mapstructure:"LEVEL" json:"level" yaml:"level"`
	// json（預設）或 console
	Format string `mapstructure:"FORMAT" json:"format" yaml:"format"`
}
