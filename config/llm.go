package config

// LLMConfig 标签推荐模型配置（OpenAI 兼容接口）
type LLMConfig struct {
	APIKey  string `json:"api_key" yaml:"api_key"`
	BaseURL string `json:"base_url" yaml:"base_url"`
	Model   string `json:"model" yaml:"model"`
}
