// internal/storage/file_cache.go
package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// FileCacheService 提供文件内存缓存功能
// 用于缓存解析后的情感词典等数据文件，文件被修改或条目过期后重新读取
type FileCacheService struct {
	cache      map[string]*FileCacheEntry
	mutex      sync.RWMutex
	maxSize    int           // 最大缓存条目数
	expiration time.Duration // 缓存过期时间
}

// FileCacheEntry 缓存条目
type FileCacheEntry struct {
	Data      interface{}
	CreatedAt time.Time
	LastRead  time.Time
	FileInfo  os.FileInfo // 用于检测文件是否被修改
}

// NewFileCacheService 创建文件缓存服务
func NewFileCacheService(maxSize int, expiration time.Duration) *FileCacheService {
	if maxSize <= 0 {
		maxSize = 100
	}

	if expiration <= 0 {
		expiration = 5 * time.Minute
	}

	return &FileCacheService{
		cache:      make(map[string]*FileCacheEntry),
		maxSize:    maxSize,
		expiration: expiration,
	}
}

// ReadLines 按行读取文件并缓存结果
func (s *FileCacheService) ReadLines(path string) ([]string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("获取文件绝对路径失败: %w", err)
	}

	// 检查缓存
	s.mutex.RLock()
	entry, exists := s.cache[absPath]
	s.mutex.RUnlock()

	if exists {
		fileInfo, err := os.Stat(absPath)
		if err == nil {
			isModified := fileInfo.ModTime().After(entry.FileInfo.ModTime()) ||
				fileInfo.Size() != entry.FileInfo.Size()
			isExpired := time.Since(entry.CreatedAt) > s.expiration

			if !isModified && !isExpired {
				s.mutex.Lock()
				entry.LastRead = time.Now()
				s.mutex.Unlock()

				if lines, ok := entry.Data.([]string); ok {
					return lines, nil
				}
			}
		}
	}

	// 缓存无效或不存在，读取文件
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("读取文件失败: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("扫描文件失败: %w", err)
	}

	fileInfo, err := os.Stat(absPath)
	if err != nil {
		// 不阻止操作，仅记录
		fmt.Printf("警告: 获取文件信息失败: %v\n", err)
	} else {
		s.mutex.Lock()
		s.cache[absPath] = &FileCacheEntry{
			Data:      lines,
			CreatedAt: time.Now(),
			LastRead:  time.Now(),
			FileInfo:  fileInfo,
		}

		// 如果缓存太大，清理最少使用的条目
		if len(s.cache) > s.maxSize {
			s.cleanupLRU(max(1, s.maxSize/5))
		}
		s.mutex.Unlock()
	}

	return lines, nil
}

// DeleteFromCache 从缓存中删除条目
func (s *FileCacheService) DeleteFromCache(path string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return
	}

	s.mutex.Lock()
	delete(s.cache, absPath)
	s.mutex.Unlock()
}

// ClearCache 清空缓存
func (s *FileCacheService) ClearCache() {
	s.mutex.Lock()
	s.cache = make(map[string]*FileCacheEntry)
	s.mutex.Unlock()
}

// 清理最少使用的条目
func (s *FileCacheService) cleanupLRU(count int) {
	type keyAge struct {
		key  string
		time time.Time
	}

	entries := make([]keyAge, 0, len(s.cache))
	for k, v := range s.cache {
		entries = append(entries, keyAge{k, v.LastRead})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].time.Before(entries[j].time)
	})

	maxToDelete := min(count, len(entries))
	for i := 0; i < maxToDelete; i++ {
		delete(s.cache, entries[i].key)
	}
}
