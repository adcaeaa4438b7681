// internal/errors/errors_test.go
package errors

import (
	"errors"
	"testing"
)

func TestErrorCodes(t *testing.T) {
	cases := []struct {
		err      *AppError
		wantType ErrorType
		wantCode string
	}{
		{NewValidationError("入参无效", nil), ErrorTypeValidation, "VALIDATION_ERROR"},
		{NewTimeoutError("调用超时", nil), ErrorTypeTimeout, "TIMEOUT"},
		{NewUpstreamError("上游失败", nil), ErrorTypeUpstream, "UPSTREAM_ERROR"},
	}
	for _, c := range cases {
		if c.err.Type != c.wantType {
			t.Errorf("类型期望 %s，实际 %s", c.wantType, c.err.Type)
		}
		if c.err.Code != c.wantCode {
			t.Errorf("错误代码期望 %s，实际 %s", c.wantCode, c.err.Code)
		}
	}
}

func TestUnwrapChain(t *testing.T) {
	root := errors.New("connection refused")
	wrapped := NewUpstreamError("外部摘要服务调用失败", root)

	if !errors.Is(wrapped, root) {
		t.Error("错误链应能追溯到原始错误")
	}
	if wrapped.Error() != "外部摘要服务调用失败: connection refused" {
		t.Errorf("错误消息拼接错误: %s", wrapped.Error())
	}
}

func TestWrapPreservesType(t *testing.T) {
	inner := NewTimeoutError("调用超时", nil)
	wrapped := WrapError(inner, "方法 abstractive 失败", ErrorTypeError)

	var appErr *AppError
	if !errors.As(wrapped, &appErr) {
		t.Fatal("包装后应仍是 AppError")
	}
	// 已有类型不被外层覆盖
	if appErr.Type != ErrorTypeTimeout {
		t.Errorf("类型期望 %s，实际 %s", ErrorTypeTimeout, appErr.Type)
	}
	if appErr.Code != "TIMEOUT" {
		t.Errorf("代码期望 TIMEOUT，实际 %s", appErr.Code)
	}
}

func TestWrapNil(t *testing.T) {
	if WrapError(nil, "无事发生", ErrorTypeError) != nil {
		t.Error("包装 nil 应返回 nil")
	}
}
