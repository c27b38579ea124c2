package config

type Schedule struct {
	// YAML 檔案；空字串使用內建 shift / position 定義
	TaxonomyFile string `mapstructure:"TAXONOMY_FILE" json:"taxonomyFile" yaml:"taxonomyFile"`
	// 當天排班列表快取秒數，0 代表不快取
	CacheTTLSeconds int64 `mapstructure:"CACHE_TTL_SECONDS" json:"cacheTTLSeconds" yaml:"cacheTTLSeconds"`
	// 每個組織在一個週期內可執行的寫入次數，0 代表不限制
	MutationLimit       int    `mapstructure:"MUTATION_LIMIT" json:"mutationLimit" yaml:"mutationLimit"`
	MutationLimitPeriod string `mapstructure:"MUTATION_LIMIT_PERIOD" json:"mutationLimitPeriod" yaml:"mutationLimitPeriod"`
	// robfig/cron 六欄格式（含秒），空字串停用
	ReconcileCron string `mapstructure:"RECONCILE_CRON" json:"reconcileCron" yaml:"reconcileCron"`
	// reconcile 從今天起往後檢查的天數
	ReconcileDays int `mapstructure:"RECONCILE_DAYS" json:"reconcileDays" yaml:"reconcileDays"`
	// recurring 一次最多展開幾天
	MaxRecurrence int `mapstructure:"MAX_RECURRENCE" json:"maxRecurrence" yaml:"maxRecurrence"`
	// export 指令的預設輸出目錄
	ExportDir string `mapstructure:"EXPORT_DIR" json:"exportDir" yaml:"exportDir"`
}
