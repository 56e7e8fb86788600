package openai

import "time"

const (
	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the default OpenAI model
	DefaultModel = "gpt-4o-mini"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// QwenBaseURL is the DashScope OpenAI-compatible endpoint
	QwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	// QwenModel is the default Qwen model
	QwenModel = "qwen-plus"

	// DeepSeekBaseURL is the DeepSeek API endpoint
	DeepSeekBaseURL = "https://api.deepseek.com/v1"

	// DeepSeekModel is the default DeepSeek model
	DeepSeekModel = "deepseek-chat"

	responseFormatJSON = "json_object"
)
