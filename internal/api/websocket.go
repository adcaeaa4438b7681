// internal/api/websocket.go
package api

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/Corphon/DocSummarizerMCP/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebSocket 升级器配置
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// 在生产环境中应该进行更严格的检查
		return true
	},
}

const (
	wsWriteTimeout = 10 * time.Second
	wsPingInterval = 30 * time.Second
	wsPongTimeout  = 60 * time.Second
)

// 当前活跃的 WebSocket 连接数
var activeConnections int64

// SummarizeWebSocket 推送异步摘要任务的方法级结果
// 客户端连接到 /ws/summarize/:id 后，每个方法一完成就收到一条
// 携带完整 SummaryResult 的消息；全部方法完成后连接关闭
// 只推送完整结果，不推送部分内容
func (h *Handler) SummarizeWebSocket(c *gin.Context) {
	jobID := c.Param("id")
	tracker, exists := h.ProgressService.GetJob(jobID)
	if !exists {
		h.Response.NotFound(c, "任务不存在或已过期")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.GetLogger().Error("WebSocket升级失败", map[string]interface{}{
			"job_id": jobID,
			"error":  err.Error(),
		})
		return
	}
	defer conn.Close()

	atomic.AddInt64(&activeConnections, 1)
	defer atomic.AddInt64(&activeConnections, -1)

	updates := tracker.Subscribe()
	defer tracker.Unsubscribe(updates)

	// 读循环只用于探测客户端断开
	clientGone := make(chan struct{})
	go func() {
		defer close(clientGone)
		conn.SetReadDeadline(time.Now().Add(wsPongTimeout))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsPongTimeout))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	pingTicker := time.NewTicker(wsPingInterval)
	defer pingTicker.Stop()

	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(update); err != nil {
				return
			}
		case <-tracker.Done:
			// 把剩余已入队的更新发完再关闭
			for {
				select {
				case update, ok := <-updates:
					if !ok {
						return
					}
					conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
					if err := conn.WriteJSON(update); err != nil {
						return
					}
				default:
					conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
					conn.WriteMessage(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseNormalClosure, "job completed"))
					return
				}
			}
		case <-pingTicker.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-clientGone:
			return
		}
	}
}

// GetWebSocketStatus 获取 WebSocket 连接状态（调试用）
func (h *Handler) GetWebSocketStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"active_connections": atomic.LoadInt64(&activeConnections),
		"timestamp":          time.Now().Format(time.RFC3339),
	})
}
