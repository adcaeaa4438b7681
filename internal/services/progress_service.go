// internal/services/progress_service.go
package services

import (
	"sync"
	"time"

	"github.com/Corphon/DocSummarizerMCP/internal/models"
)

// MethodUpdate 表示单个摘要方法的完成通知
// 只推送完整结果，不推送部分进度
type MethodUpdate struct {
	JobID  string                `json:"job_id"`
	Method string                `json:"method"`
	Status string                `json:"status"` // running, completed, failed
	Result *models.SummaryResult `json:"result,omitempty"`
}

// JobTracker 跟踪一次摘要请求中各方法的完成情况
type JobTracker struct {
	JobID       string
	Methods     []string
	StartTime   time.Time
	completed   map[string]bool
	history     []MethodUpdate // 已广播的通知，供晚到的订阅者回放
	subscribers map[chan MethodUpdate]bool
	Done        chan struct{}
	mutex       sync.Mutex
}

// ProgressService 管理所有任务跟踪器
type ProgressService struct {
	trackers map[string]*JobTracker
	mutex    sync.RWMutex
}

// NewProgressService 创建进度服务实例
func NewProgressService() *ProgressService {
	return &ProgressService{
		trackers: make(map[string]*JobTracker),
	}
}

// CreateJob 创建新的任务跟踪器
func (s *ProgressService) CreateJob(jobID string, methods []string) *JobTracker {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// 如果已存在，返回现有跟踪器
	if tracker, exists := s.trackers[jobID]; exists {
		return tracker
	}

	tracker := &JobTracker{
		JobID:       jobID,
		Methods:     methods,
		StartTime:   time.Now(),
		completed:   make(map[string]bool),
		subscribers: make(map[chan MethodUpdate]bool),
		Done:        make(chan struct{}),
	}

	s.trackers[jobID] = tracker
	return tracker
}

// GetJob 获取任务跟踪器
func (s *ProgressService) GetJob(jobID string) (*JobTracker, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	tracker, exists := s.trackers[jobID]
	return tracker, exists
}

// RemoveJob 移除任务跟踪器
func (s *ProgressService) RemoveJob(jobID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.trackers, jobID)
}

// Subscribe 订阅方法完成通知
// 订阅前已结束的方法会立即回放到通道里，晚连接的客户端不丢结果
// 每个方法至多结束一次，缓冲足够容纳全部历史，预填充不会阻塞
func (t *JobTracker) Subscribe() chan MethodUpdate {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	ch := make(chan MethodUpdate, len(t.Methods)+1)
	for _, update := range t.history {
		ch <- update
	}
	t.subscribers[ch] = true
	return ch
}

// Unsubscribe 取消订阅
func (t *JobTracker) Unsubscribe(ch chan MethodUpdate) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.subscribers[ch] {
		delete(t.subscribers, ch)
		close(ch)
	}
}

// MethodCompleted 记录一个方法完成并广播其完整结果
// 所有方法完成后关闭 Done
func (t *JobTracker) MethodCompleted(method string, result *models.SummaryResult) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.completed[method] {
		return
	}
	t.completed[method] = true

	update := MethodUpdate{
		JobID:  t.JobID,
		Method: method,
		Status: "completed",
		Result: result,
	}
	t.history = append(t.history, update)
	for ch := range t.subscribers {
		select {
		case ch <- update:
		default:
			// 订阅者跟不上就丢弃，不阻塞计算路径
		}
	}

	if len(t.completed) == len(t.Methods) {
		close(t.Done)
	}
}

// MethodFailed 记录一个方法失败并广播
func (t *JobTracker) MethodFailed(method string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.completed[method] {
		return
	}
	t.completed[method] = true

	update := MethodUpdate{
		JobID:  t.JobID,
		Method: method,
		Status: "failed",
	}
	t.history = append(t.history, update)
	for ch := range t.subscribers {
		select {
		case ch <- update:
		default:
		}
	}

	if len(t.completed) == len(t.Methods) {
		close(t.Done)
	}
}
