package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Data     DataConfig     `toml:"data"`
	Business BusinessConfig `toml:"business"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据配置
type DataConfig struct {
	DataDir string `toml:"data_dir"`
	// DBFile SQLite 数据库文件名，位于数据目录下
	DBFile string `toml:"db_file"`
}

// BusinessConfig 业务口径配置
type BusinessConfig struct {
	DefaultMonth string `toml:"default_month"`
	DefaultYear  int    `toml:"default_year"`
	// WorkingDaysDefault (月, 年) 在参考表中无匹配时的工作日回退值
	WorkingDaysDefault int `toml:"working_days_default"`
	// CollectionRatio 未提供回款金额时按销售额估算的比例
	CollectionRatio float64 `toml:"collection_ratio"`
	// BudgetFilterByYear 预算金额求和是否附加年份过滤
	BudgetFilterByYear bool `toml:"budget_filter_by_year"`
	// MoMCategories 环比视图类别白名单
	MoMCategories []string `toml:"mom_categories"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20262,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
			DBFile:  "salesboard.db",
		},
		Business: BusinessConfig{
			DefaultMonth:       "July",
			DefaultYear:        2025,
			WorkingDaysDefault: 27,
			CollectionRatio:    0.95,
			BudgetFilterByYear: false,
			MoMCategories:      nil, // 空表示用引擎内置白名单
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo 从 config.toml 加载配置并返回元信息
// 加载顺序：默认值 → config.toml → .env / 环境变量
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err == nil {
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, err
		}
	} else if !os.IsNotExist(err) {
		return nil, info, err
	}

	// .env 只补充未设置的环境变量，不覆盖已有的
	_ = godotenv.Load()
	applyEnvOverrides(config, &info)

	return config, info, nil
}

// applyEnvOverrides 环境变量覆盖（用于 E2E / 容器运行）
func applyEnvOverrides(config *AppConfig, info *LoadConfigInfo) {
	if v := os.Getenv("SALESBOARD_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			config.Server.Port = port
			info.PortSpecified = true
		}
	}
	if v := os.Getenv("SALESBOARD_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
	if v := os.Getenv("SALESBOARD_DB_FILE"); v != "" {
		config.Data.DBFile = v
	}
	if v := os.Getenv("SALESBOARD_COLLECTION_RATIO"); v != "" {
		if ratio, err := strconv.ParseFloat(v, 64); err == nil && ratio > 0 {
			config.Business.CollectionRatio = ratio
		}
	}
	if v := os.Getenv("SALESBOARD_MOM_CATEGORIES"); v != "" {
		parts := strings.Split(v, ",")
		cats := parts[:0]
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				cats = append(cats, p)
			}
		}
		if len(cats) > 0 {
			config.Business.MoMCategories = cats
		}
	}
}

// LoadConfig 从 config.toml 加载配置
// 配置文件位于可执行文件同目录下
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// SaveConfig 保存配置到 config.toml
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir 确保数据目录存在
// 数据目录位于可执行文件同目录下
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	// 创建子目录
	subdirs := []string{"uploads", "exports"}
	for _, subdir := range subdirs {
		path := filepath.Join(dataDir, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}

// GetDataPath 获取数据文件路径
func GetDataPath(config *AppConfig, subdir, filename string) string {
	exeDir, _ := GetExeDir()
	if exeDir == "" {
		exeDir = "."
	}
	return filepath.Join(exeDir, config.Data.DataDir, subdir, filename)
}

// DBPath 数据库文件完整路径
func DBPath(config *AppConfig) string {
	exeDir, _ := GetExeDir()
	if exeDir == "" {
		exeDir = "."
	}
	return filepath.Join(exeDir, config.Data.DataDir, config.Data.DBFile)
}
