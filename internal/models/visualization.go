// internal/models/visualization.go
package models

// Visualization 表示供渲染层使用的可视化数据
type Visualization struct {
	Nodes    []SentenceNode `json:"nodes"`    // 句子关系图节点（上限25个）
	Clusters []TopicCluster `json:"clusters"` // 关键词主题簇（最多3个）
}

// SentenceNode 表示句子关系图中的一个节点
// Connections 只指向同样被可视化的节点，不覆盖全部句子
type SentenceNode struct {
	ID          int          `json:"id"`   // 原文中的句子索引
	Text        string       `json:"text"` // 截断到100字符的预览文本
	Score       float64      `json:"score"`
	Sentiment   float64      `json:"sentiment"` // 单句 comparative 情感分
	Connections []Connection `json:"connections"`
}

// Connection 表示两个可视化节点之间的一条边
type Connection struct {
	Target int     `json:"target"` // 目标节点的句子索引
	Weight float64 `json:"weight"` // 相似度权重，>0.1 才会出现
}

// TopicCluster 表示一组关键词及其命中的句子
// 各簇相互独立，句子可以同时属于多个簇
type TopicCluster struct {
	Keywords  []string `json:"keywords"`
	Sentences []int    `json:"sentences"` // 命中句子的索引
	Color     string   `json:"color"`
	CenterX   float64  `json:"center_x"` // 布局起始坐标，无语义
	CenterY   float64  `json:"center_y"`
}
