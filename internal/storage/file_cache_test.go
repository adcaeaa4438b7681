// internal/storage/file_cache_test.go
package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexicon.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("写入临时文件失败: %v", err)
	}
	return path
}

func TestReadLines(t *testing.T) {
	cache := NewFileCacheService(10, time.Minute)
	path := writeTempFile(t, "good\t3\nbad\t-3\n")

	lines, err := cache.ReadLines(path)
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	want := []string{"good\t3", "bad\t-3"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("行内容期望 %v，实际 %v", want, lines)
	}
}

func TestReadLinesCached(t *testing.T) {
	cache := NewFileCacheService(10, time.Minute)
	path := writeTempFile(t, "one\n")

	first, err := cache.ReadLines(path)
	if err != nil {
		t.Fatalf("首次读取失败: %v", err)
	}
	second, err := cache.ReadLines(path)
	if err != nil {
		t.Fatalf("缓存读取失败: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("缓存结果不一致: %v vs %v", first, second)
	}
}

func TestReadLinesDetectsModification(t *testing.T) {
	cache := NewFileCacheService(10, time.Minute)
	path := writeTempFile(t, "one\n")

	if _, err := cache.ReadLines(path); err != nil {
		t.Fatalf("首次读取失败: %v", err)
	}

	// 改写文件内容，大小变化应触发重新读取
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0644); err != nil {
		t.Fatalf("改写文件失败: %v", err)
	}

	lines, err := cache.ReadLines(path)
	if err != nil {
		t.Fatalf("二次读取失败: %v", err)
	}
	if len(lines) != 2 {
		t.Errorf("文件修改后应返回新内容，实际 %v", lines)
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	cache := NewFileCacheService(10, time.Minute)

	if _, err := cache.ReadLines(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("不存在的文件应返回错误")
	}
}

func TestDeleteFromCache(t *testing.T) {
	cache := NewFileCacheService(10, time.Minute)
	path := writeTempFile(t, "one\n")

	if _, err := cache.ReadLines(path); err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	cache.DeleteFromCache(path)

	// 删除缓存后文件已不存在则读取失败
	os.Remove(path)
	if _, err := cache.ReadLines(path); err == nil {
		t.Error("缓存删除且文件不存在时应返回错误")
	}
}
