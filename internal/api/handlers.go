// internal/api/handlers.go
package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Corphon/DocSummarizerMCP/internal/errors"
	"github.com/Corphon/DocSummarizerMCP/internal/llm"
	"github.com/Corphon/DocSummarizerMCP/internal/models"
	"github.com/Corphon/DocSummarizerMCP/internal/services"
	"github.com/Corphon/DocSummarizerMCP/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 上传文件的大小上限
const maxUploadBytes = 10 << 20 // 10MB

// Handler 处理API请求
type Handler struct {
	SummaryService  *services.SummaryService  // 摘要引擎服务
	ConfigService   *services.ConfigService   // 配置服务
	StatsService    *services.StatsService    // 统计服务
	ProgressService *services.ProgressService // 任务进度服务
	Response        *ResponseHelper           // 响应助手
}

// NewHandler 创建API处理器
func NewHandler(
	summaryService *services.SummaryService,
	configService *services.ConfigService,
	statsService *services.StatsService,
	progressService *services.ProgressService,
) *Handler {
	return &Handler{
		SummaryService:  summaryService,
		ConfigService:   configService,
		StatsService:    statsService,
		ProgressService: progressService,
		Response:        NewResponseHelper(),
	}
}

// SummarizeRequest 摘要请求结构
type SummarizeRequest struct {
	Text          string   `json:"text" binding:"required"`
	SentenceCount int      `json:"sentence_count"`
	Methods       []string `json:"methods"` // 为空时运行全部本地方法
}

// SummarizeResponse 摘要响应结构
type SummarizeResponse struct {
	JobID   string                  `json:"job_id"`
	Results []*models.SummaryResult `json:"results"`
}

// APIResponse 标准API响应格式
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"` // 用于调试和追踪
}

// APIError 标准错误格式
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// 默认运行的本地方法集
var defaultMethods = []string{
	models.MethodCentrality,
	models.MethodEigenvector,
	models.MethodFrequency,
}

// ------------------------------------------------
// Summarize 同步执行摘要请求
// POST /api/summarize
func (h *Handler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.ValidationError(c, "请求格式无效", err.Error())
		return
	}

	methods, err := normalizeRequest(&req)
	if err != nil {
		h.Response.ValidationError(c, err.Error(), "")
		return
	}

	start := time.Now()
	results, err := h.SummaryService.SummarizeAll(c.Request.Context(), methods, req.Text, req.SentenceCount)
	if err != nil {
		utils.GetLogger().Error("摘要请求失败", map[string]interface{}{
			"methods": methods,
			"error":   err.Error(),
		})
		h.Response.InternalError(c, "摘要处理失败", err)
		return
	}

	for _, result := range results {
		h.StatsService.RecordRequest(result.Method, result.ProcessingTime)
	}
	utils.GetMetricsCollector().RecordDuration("api.summarize.duration_ms", time.Since(start))

	h.Response.Success(c, &SummarizeResponse{
		JobID:   uuid.NewString(),
		Results: results,
	})
}

// SummarizeAsync 创建异步摘要任务
// 各方法完成时通过 /ws/summarize/:id 推送完整结果
// POST /api/summarize/async
func (h *Handler) SummarizeAsync(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.ValidationError(c, "请求格式无效", err.Error())
		return
	}

	methods, err := normalizeRequest(&req)
	if err != nil {
		h.Response.ValidationError(c, err.Error(), "")
		return
	}

	jobID := uuid.NewString()
	tracker := h.ProgressService.CreateJob(jobID, methods)

	// 各方法独立计算，完成即推送；完整结果，不做部分流式
	// 后台计算与请求生命周期解耦：HTTP响应返回后请求上下文即被取消，
	// 不能把它传给还在跑的方法
	for _, method := range methods {
		go func(method string) {
			result, err := h.SummaryService.SummarizeByMethod(context.Background(), method, req.Text, req.SentenceCount)
			if err != nil {
				utils.GetLogger().Error("异步摘要方法失败", map[string]interface{}{
					"job_id": jobID,
					"method": method,
					"error":  err.Error(),
				})
				tracker.MethodFailed(method)
				return
			}
			h.StatsService.RecordRequest(result.Method, result.ProcessingTime)
			tracker.MethodCompleted(method, result)
		}(method)
	}

	// 任务完成后延迟清理，给晚连接的客户端留出窗口
	go func() {
		<-tracker.Done
		time.Sleep(5 * time.Minute)
		h.ProgressService.RemoveJob(jobID)
	}()

	h.Response.Success(c, gin.H{
		"job_id":  jobID,
		"methods": methods,
	})
}

// Upload 接收文本文件上传
// 只读取字节内容，不解析文件格式；返回 (content, display_name) 供渲染层使用
// POST /api/upload
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.Response.ValidationError(c, "缺少上传文件", err.Error())
		return
	}

	if fileHeader.Size > maxUploadBytes {
		h.Response.ValidationError(c, "文件过大", "上限10MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.Response.InternalError(c, "读取上传文件失败", err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		h.Response.InternalError(c, "读取上传文件失败", err)
		return
	}

	h.Response.Success(c, gin.H{
		"content":      string(content),
		"display_name": fileHeader.Filename,
	})
}

// GetProviders 列出可用的LLM提供者及其模型
// GET /api/providers
func (h *Handler) GetProviders(c *gin.Context) {
	names := llm.ListProviders()
	providers := make([]gin.H, 0, len(names))
	for _, name := range names {
		providers = append(providers, gin.H{
			"name":   name,
			"models": llm.GetSupportedModelsForProvider(name),
		})
	}

	cfg := h.ConfigService.GetCurrentConfig()
	h.Response.Success(c, gin.H{
		"providers": providers,
		"current":   cfg.LLMProvider,
	})
}

// GetSettings 获取当前LLM设置
// GET /api/settings
func (h *Handler) GetSettings(c *gin.Context) {
	cfg := h.ConfigService.GetCurrentConfig()

	// API密钥不回传，只标记是否已配置
	h.Response.Success(c, gin.H{
		"llm_provider":            cfg.LLMProvider,
		"default_model":           cfg.LLMConfig["default_model"],
		"api_key_configured":      cfg.LLMConfig["api_key"] != "",
		"abstractive_timeout_sec": cfg.AbstractiveTimeoutSec,
		"max_document_chars":      cfg.MaxDocumentChars,
	})
}

// UpdateSettingsRequest 更新设置的请求结构
type UpdateSettingsRequest struct {
	Provider     string `json:"provider" binding:"required"`
	APIKey       string `json:"api_key"`
	DefaultModel string `json:"default_model"`
	BaseURL      string `json:"base_url"`
}

// UpdateSettings 更新LLM设置
// PUT /api/settings
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.ValidationError(c, "请求格式无效", err.Error())
		return
	}

	configMap := map[string]string{
		"api_key": req.APIKey,
	}
	if req.DefaultModel != "" {
		configMap["default_model"] = req.DefaultModel
	}
	if req.BaseURL != "" {
		configMap["base_url"] = req.BaseURL
	}

	if err := h.ConfigService.UpdateLLMConfig(req.Provider, configMap); err != nil {
		h.Response.InternalError(c, "更新设置失败", err)
		return
	}

	h.Response.Success(c, nil, "设置已更新")
}

// GetStats 获取使用统计
// GET /api/stats
func (h *Handler) GetStats(c *gin.Context) {
	counters, histograms := utils.GetMetricsCollector().Snapshot()
	h.Response.Success(c, gin.H{
		"usage":      h.StatsService.GetStats(),
		"counters":   counters,
		"histograms": histograms,
	})
}

// Health 健康检查
// GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// normalizeRequest 校验并补全摘要请求的默认值
func normalizeRequest(req *SummarizeRequest) ([]string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, errors.NewValidationError("text 不能为空", nil)
	}
	if req.SentenceCount < 1 {
		req.SentenceCount = 3
	}

	methods := req.Methods
	if len(methods) == 0 {
		methods = defaultMethods
	}

	// 去重并保持首次出现的顺序，进度跟踪按方法名计数，
	// 重复项会让任务永远到不了完成态
	seen := make(map[string]bool, len(methods))
	deduped := make([]string, 0, len(methods))
	for _, method := range methods {
		switch method {
		case models.MethodCentrality, models.MethodEigenvector,
			models.MethodFrequency, models.MethodAbstractive:
		default:
			return nil, errors.NewValidationError("未知的摘要方法: "+method, nil)
		}
		if seen[method] {
			continue
		}
		seen[method] = true
		deduped = append(deduped, method)
	}
	return deduped, nil
}
